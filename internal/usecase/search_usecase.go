package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"shopadmin/internal/admin"
	repo "shopadmin/internal/repository"
)

// SearchUsecase backs the panel's global search box. Each resource that
// declares globally-searchable attributes in the registry contributes hits.
type SearchUsecase struct {
	brandRepo    repo.BrandRepository
	productRepo  repo.ProductRepository
	customerRepo repo.CustomerRepository
	orderRepo    repo.OrderRepository
}

func NewSearchUsecase(
	brandRepo repo.BrandRepository,
	productRepo repo.ProductRepository,
	customerRepo repo.CustomerRepository,
	orderRepo repo.OrderRepository,
) *SearchUsecase {
	return &SearchUsecase{
		brandRepo:    brandRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
	}
}

type SearchHit struct {
	Resource string `json:"resource"`
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	URL      string `json:"url"`
}

const perResourceLimit = 10

func (u *SearchUsecase) Search(ctx context.Context, q string) ([]SearchHit, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return []SearchHit{}, NewHTTPError(http.StatusBadRequest, "q required")
	}
	if len(q) > 100 {
		return []SearchHit{}, NewHTTPError(http.StatusBadRequest, "q too long")
	}

	hits := []SearchHit{}
	for _, res := range admin.GloballySearchable() {
		found, err := u.searchResource(ctx, res, q)
		if err != nil {
			return []SearchHit{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		hits = append(hits, found...)
	}
	return hits, nil
}

func (u *SearchUsecase) searchResource(ctx context.Context, res admin.Resource, q string) ([]SearchHit, error) {
	var hits []SearchHit

	switch res.Segment {
	case "brands":
		brands, err := u.brandRepo.Search(ctx, q, perResourceLimit)
		if err != nil {
			return nil, err
		}
		for _, b := range brands {
			hits = append(hits, hit(res, b.ID, b.Name))
		}
	case "products":
		products, err := u.productRepo.Search(ctx, q, perResourceLimit)
		if err != nil {
			return nil, err
		}
		for _, p := range products {
			hits = append(hits, hit(res, p.ID, p.Name))
		}
	case "customers":
		customers, err := u.customerRepo.Search(ctx, q, perResourceLimit)
		if err != nil {
			return nil, err
		}
		for _, c := range customers {
			hits = append(hits, hit(res, c.ID, c.Name))
		}
	case "orders":
		orders, err := u.orderRepo.Search(ctx, q, perResourceLimit)
		if err != nil {
			return nil, err
		}
		for _, o := range orders {
			hits = append(hits, hit(res, o.ID, o.Number))
		}
	}

	return hits, nil
}

func hit(res admin.Resource, id int64, title string) SearchHit {
	return SearchHit{
		Resource: res.Name,
		ID:       id,
		Title:    title,
		URL:      fmt.Sprintf("/admin/%s/%d", res.Segment, id),
	}
}
