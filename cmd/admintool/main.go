package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"shopadmin/internal/domain/model"
	"shopadmin/internal/infra/db"
	infraRepo "shopadmin/internal/infra/repository"
	repo "shopadmin/internal/repository"

	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
	"gorm.io/gorm"
)

// admintool prints resource tables straight from the database, for quick
// inspection without the HTTP panel.
func main() {
	var (
		resource = flag.String("resource", "products", "resource to list: brands, categories, products, customers, orders")
		limit    = flag.Int("limit", 20, "rows per page")
		page     = flag.Int("page", 1, "page number")
		q        = flag.String("q", "", "search term")
	)
	flag.Parse()

	_ = godotenv.Load()

	gormDB, err := db.Connect()
	if err != nil {
		log.Fatalf("failed to connect to Postgres: %v", err)
	}

	ctx := context.Background()

	switch *resource {
	case "brands":
		err = listBrands(ctx, gormDB, *page, *limit, *q)
	case "categories":
		err = listCategories(ctx, gormDB, *page, *limit, *q)
	case "products":
		err = listProducts(ctx, gormDB, *page, *limit, *q)
	case "customers":
		err = listCustomers(ctx, gormDB, *page, *limit, *q)
	case "orders":
		err = listOrders(ctx, gormDB, *page, *limit, *q)
	default:
		log.Fatalf("unknown resource %q", *resource)
	}
	if err != nil {
		log.Fatalf("list %s: %v", *resource, err)
	}
}

func listBrands(ctx context.Context, gormDB *gorm.DB, page, limit int, q string) error {
	brands, total, err := infraRepo.NewBrandGormRepository(gormDB).List(ctx, repo.BrandListQuery{Page: page, Limit: limit, Q: q})
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Slug", "Visible", "Created")
	for _, b := range brands {
		table.Append(
			fmt.Sprint(b.ID), b.Name, b.Slug,
			fmt.Sprint(b.IsVisible), b.CreatedAt.Format("2006-01-02"),
		)
	}
	if err := table.Render(); err != nil {
		return err
	}
	fmt.Printf("%d of %d\n", len(brands), total)
	return nil
}

func listCategories(ctx context.Context, gormDB *gorm.DB, page, limit int, q string) error {
	categories, total, err := infraRepo.NewCategoryGormRepository(gormDB).List(ctx, repo.CategoryListQuery{Page: page, Limit: limit, Q: q})
	if err != nil {
		return err
	}

	return renderCategories(os.Stdout, categories, total)
}

// Category carries no slug, so the table stays at three columns.
func renderCategories(w io.Writer, categories []model.Category, total int64) error {
	table := tablewriter.NewWriter(w)
	table.Header("ID", "Name", "Created")
	for _, c := range categories {
		table.Append(fmt.Sprint(c.ID), c.Name, c.CreatedAt.Format("2006-01-02"))
	}
	if err := table.Render(); err != nil {
		return err
	}
	fmt.Fprintf(w, "%d of %d\n", len(categories), total)
	return nil
}

func listProducts(ctx context.Context, gormDB *gorm.DB, page, limit int, q string) error {
	products, total, err := infraRepo.NewProductGormRepository(gormDB).List(ctx, repo.ProductListQuery{Page: page, Limit: limit, Q: q})
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "SKU", "Price", "Qty", "Type", "Visible")
	for _, p := range products {
		table.Append(
			fmt.Sprint(p.ID), p.Name, p.SKU,
			p.Price.StringFixed(2), fmt.Sprint(p.Quantity),
			string(p.Type), fmt.Sprint(p.IsVisible),
		)
	}
	if err := table.Render(); err != nil {
		return err
	}
	fmt.Printf("%d of %d\n", len(products), total)
	return nil
}

func listCustomers(ctx context.Context, gormDB *gorm.DB, page, limit int, q string) error {
	customers, total, err := infraRepo.NewCustomerGormRepository(gormDB).List(ctx, repo.CustomerListQuery{Page: page, Limit: limit, Q: q})
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Email", "City", "Created")
	for _, c := range customers {
		table.Append(fmt.Sprint(c.ID), c.Name, c.Email, c.City, c.CreatedAt.Format("2006-01-02"))
	}
	if err := table.Render(); err != nil {
		return err
	}
	fmt.Printf("%d of %d\n", len(customers), total)
	return nil
}

func listOrders(ctx context.Context, gormDB *gorm.DB, page, limit int, q string) error {
	orders, total, err := infraRepo.NewOrderGormRepository(gormDB).List(ctx, repo.OrderListQuery{Page: page, Limit: limit, Q: q})
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Number", "Customer", "Status", "Total", "Items", "Created")
	for _, o := range orders {
		customer := ""
		if o.Customer != nil {
			customer = o.Customer.Name
		}
		table.Append(
			fmt.Sprint(o.ID), o.Number, customer, string(o.Status),
			o.TotalPrice.StringFixed(2), fmt.Sprint(len(o.Items)),
			o.CreatedAt.Format("2006-01-02"),
		)
	}
	if err := table.Render(); err != nil {
		return err
	}
	fmt.Printf("%d of %d\n", len(orders), total)
	return nil
}
