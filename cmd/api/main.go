package main

import (
	"log"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/joho/godotenv"
)

func main() {
	// .envは無くてもよい（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		log.Fatal(err)
	}
	if err := gormDB.AutoMigrate(model.AllModels()...); err != nil {
		log.Fatal(err)
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	roleRepo := infraRepo.NewRoleGormRepository(gormDB)
	userRoleRepo := infraRepo.NewUserRoleGormRepository(gormDB)
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	imageRepo := infraRepo.NewProductImageGormRepository(gormDB)
	variantRepo := infraRepo.NewProductVariantGormRepository(gormDB)
	sizeRepo := infraRepo.NewSizeGormRepository(gormDB)
	unitTypeRepo := infraRepo.NewUnitTypeGormRepository(gormDB)
	unitRepo := infraRepo.NewUnitGormRepository(gormDB)
	productUnitRepo := infraRepo.NewProductUnitGormRepository(gormDB)
	inventoryRepo := infraRepo.NewInventoryGormRepository(gormDB)
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	cartItemRepo := infraRepo.NewCartItemGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	paymentRepo := infraRepo.NewPaymentGormRepository(gormDB)
	shippingRepo := infraRepo.NewShippingGormRepository(gormDB)
	addressRepo := infraRepo.NewAddressGormRepository(gormDB)
	reviewRepo := infraRepo.NewReviewGormRepository(gormDB)
	propRepo := infraRepo.NewSitePropertyGormRepository(gormDB)
	auditRepo := infraRepo.NewAuditLogGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//Usecase生成
	userUC := usecase.NewUserUsecase(userRepo)
	roleUC := usecase.NewRoleUsecase(roleRepo, userRoleRepo)
	categoryUC := usecase.NewCategoryUsecase(categoryRepo)
	productUC := usecase.NewProductUsecase(productRepo, imageRepo)
	variantUC := usecase.NewVariantUsecase(variantRepo, sizeRepo)
	unitUC := usecase.NewUnitUsecase(unitTypeRepo, unitRepo, productUnitRepo)
	inventoryUC := usecase.NewInventoryUsecase(inventoryRepo, productRepo)
	cartUC := usecase.NewCartUsecase(cartRepo, cartItemRepo, userRepo, productRepo)
	orderUC := usecase.NewOrderUsecase(txManager, orderRepo, userRepo)
	paymentUC := usecase.NewPaymentUsecase(paymentRepo, orderRepo)
	shippingUC := usecase.NewShippingUsecase(shippingRepo, orderRepo)
	addressUC := usecase.NewAddressUsecase(addressRepo, userRepo)
	reviewUC := usecase.NewReviewUsecase(reviewRepo, productRepo, userRepo)
	propUC := usecase.NewSitePropertyUsecase(propRepo, auditRepo)

	//Handler生成
	h := server.Handlers{
		User:         handler.NewUserHandler(userUC),
		Role:         handler.NewRoleHandler(roleUC),
		Category:     handler.NewCategoryHandler(categoryUC),
		Product:      handler.NewProductHandler(productUC),
		Variant:      handler.NewVariantHandler(variantUC),
		Unit:         handler.NewUnitHandler(unitUC),
		Inventory:    handler.NewInventoryHandler(inventoryUC),
		Cart:         handler.NewCartHandler(cartUC),
		Order:        handler.NewOrderHandler(orderUC),
		Payment:      handler.NewPaymentHandler(paymentUC),
		Shipping:     handler.NewShippingHandler(shippingUC),
		Address:      handler.NewAddressHandler(addressUC),
		Review:       handler.NewReviewHandler(reviewUC),
		SiteProperty: handler.NewSitePropertyHandler(propUC),
	}

	//Server起動
	e := server.New(cfg, h)

	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}
	if err := server.Start(e, addr); err != nil {
		log.Fatal(err)
	}
}
