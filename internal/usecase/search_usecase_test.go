package usecase_test

import (
	"context"
	"testing"

	"shopadmin/internal/domain/model"
	"shopadmin/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newSearchFixture() (*BrandRepoMock, *ProductRepoMock, *CustomerRepoMock, *OrderRepoMock, *usecase.SearchUsecase) {
	brands := new(BrandRepoMock)
	products := new(ProductRepoMock)
	customers := new(CustomerRepoMock)
	orders := new(OrderRepoMock)
	return brands, products, customers, orders, usecase.NewSearchUsecase(brands, products, customers, orders)
}

func TestSearch_EmptyQuery(t *testing.T) {
	_, _, _, _, uc := newSearchFixture()

	_, err := uc.Search(context.Background(), "   ")
	assertErrContains(t, err, "q required")
}

func TestSearch_AggregatesAcrossResources(t *testing.T) {
	brands, products, customers, orders, uc := newSearchFixture()

	brands.On("Search", mock.Anything, "gam", 10).Return([]model.Brand{{ID: 1, Name: "Gamma"}}, nil)
	products.On("Search", mock.Anything, "gam", 10).Return([]model.Product{{ID: 2, Name: "Gamma Ray"}}, nil)
	customers.On("Search", mock.Anything, "gam", 10).Return([]model.Customer{}, nil)
	orders.On("Search", mock.Anything, "gam", 10).Return([]model.Order{}, nil)

	hits, err := uc.Search(context.Background(), "gam")
	assert.NoError(t, err)
	assert.Equal(t, 2, len(hits))

	byResource := map[string]usecase.SearchHit{}
	for _, h := range hits {
		byResource[h.Resource] = h
	}
	assert.Equal(t, "/admin/brands/1", byResource["brand"].URL)
	assert.Equal(t, "Gamma Ray", byResource["product"].Title)
}

func TestSearch_OrderHitsUseNumber(t *testing.T) {
	brands, products, customers, orders, uc := newSearchFixture()

	brands.On("Search", mock.Anything, "OR-", 10).Return([]model.Brand{}, nil)
	products.On("Search", mock.Anything, "OR-", 10).Return([]model.Product{}, nil)
	customers.On("Search", mock.Anything, "OR-", 10).Return([]model.Customer{}, nil)
	orders.On("Search", mock.Anything, "OR-", 10).Return([]model.Order{{ID: 3, Number: "OR-1234567"}}, nil)

	hits, err := uc.Search(context.Background(), "OR-")
	assert.NoError(t, err)
	if assert.Equal(t, 1, len(hits)) {
		assert.Equal(t, "order", hits[0].Resource)
		assert.Equal(t, "OR-1234567", hits[0].Title)
		assert.Equal(t, "/admin/orders/3", hits[0].URL)
	}
}
