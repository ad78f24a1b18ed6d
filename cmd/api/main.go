package main

import (
	"log"

	"shopadmin/internal/config"
	"shopadmin/internal/domain/model"
	"shopadmin/internal/handler"
	"shopadmin/internal/infra/db"
	infraRepo "shopadmin/internal/infra/repository"
	"shopadmin/internal/server"
	"shopadmin/internal/storage"
	"shopadmin/internal/usecase"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := config.Load()

	gormDB, err := db.Connect()
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	if err := gormDB.AutoMigrate(
		&model.Brand{},
		&model.Category{},
		&model.Product{},
		&model.Customer{},
		&model.Order{},
		&model.OrderItem{},
		&model.AuditLog{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	brandRepo := infraRepo.NewBrandGormRepository(gormDB)
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	customerRepo := infraRepo.NewCustomerGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	auditRepo := infraRepo.NewAuditLogGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	brandUC := usecase.NewBrandUsecase(brandRepo, productRepo, auditRepo)
	categoryUC := usecase.NewCategoryUsecase(categoryRepo, auditRepo)
	productUC := usecase.NewProductUsecase(productRepo, brandRepo, categoryRepo, auditRepo)
	customerUC := usecase.NewCustomerUsecase(customerRepo, auditRepo)
	orderUC := usecase.NewOrderUsecase(txManager, orderRepo, auditRepo)
	searchUC := usecase.NewSearchUsecase(brandRepo, productRepo, customerRepo, orderRepo)
	auditUC := usecase.NewAuditLogUsecase(auditRepo)

	store := storage.NewLocalStore(cfg.UploadDir)

	handlers := server.Handlers{
		Brand:    handler.NewBrandHandler(brandUC, productUC),
		Category: handler.NewCategoryHandler(categoryUC),
		Product:  handler.NewProductHandler(productUC, store),
		Customer: handler.NewCustomerHandler(customerUC),
		Order:    handler.NewOrderHandler(orderUC),
		Admin:    handler.NewAdminHandler(searchUC, auditUC),
	}

	if err := server.Start(":"+cfg.Port, handlers); err != nil {
		log.Fatalf("server: %v", err)
	}
}
