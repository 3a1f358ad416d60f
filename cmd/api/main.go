package main

import (
	"context"
	"log"

	"shopcart/internal/cart"
	"shopcart/internal/config"
	"shopcart/internal/domain/model"
	"shopcart/internal/handler"
	"shopcart/internal/infra/db"
	infraRepo "shopcart/internal/infra/repository"
	repo "shopcart/internal/repository"
	"shopcart/internal/server"
	"shopcart/internal/usecase"

	"github.com/joho/godotenv"
)

func main() {
	// .envは無くても動く（環境変数だけでも可）
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	cfg := config.Load()

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.ProductRecord{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	//Repository（GORM実装）生成
	productRepo := infraRepo.NewProductRecordGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)

	//プロセス常駐のカート（1ショッパー分）
	store := cart.NewStore()

	//Usecase生成
	cartUC := usecase.NewCartUsecase(store, productRepo)
	orderUC := usecase.NewOrderUsecase(orderRepo)

	//起動時に注文履歴と永続ミラーをダンプ
	dumpOrders(orderUC)
	dumpProductRecords(productRepo)

	//Handler生成
	cartH := handler.NewCartHandler(cartUC)
	orderH := handler.NewOrderHandler(orderUC)

	//Server起動
	e := server.New(cfg.PublicDir, cartH, orderH)
	if err := server.Start(e, cfg.Addr()); err != nil {
		log.Fatalf("server: %v", err)
	}
}

// 既存の注文をログに出す
func dumpOrders(uc *usecase.OrderUsecase) {
	orders, err := uc.ListOrders(context.Background())
	if err != nil {
		log.Printf("fetch orders: %v", err)
		return
	}

	log.Printf("orders: %d", len(orders))
	for _, o := range orders {
		log.Printf("order %d (%s): %d item(s)", o.OrderID, o.CustomerCareNumber, len(o.Items))
	}
}

// 前回プロセスの永続ミラーに残っている商品をログに出す
func dumpProductRecords(products repo.ProductRecordRepository) {
	recs, err := products.List(context.Background())
	if err != nil {
		log.Printf("fetch product records: %v", err)
		return
	}

	log.Printf("product records: %d", len(recs))
	for _, r := range recs {
		log.Printf("product %s: price=%v quantity=%d", r.Name, r.Price, r.Quantity)
	}
}
