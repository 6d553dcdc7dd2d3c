package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/AHMEDNABIB/react-reasturant-server/configs"
	"github.com/AHMEDNABIB/react-reasturant-server/middlewares"
	"github.com/AHMEDNABIB/react-reasturant-server/repository"
	"github.com/AHMEDNABIB/react-reasturant-server/routes"
	"github.com/AHMEDNABIB/react-reasturant-server/services"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, err := configs.ConnectMongo(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("connect mongo failed: %v", err)
	}
	db := client.Database(cfg.DBName)

	// Repositories
	users := repository.NewUserRepository(db)
	menu := repository.NewMenuRepository(db)
	reviews := repository.NewReviewRepository(db)
	carts := repository.NewCartRepository(db)
	payments := repository.NewPaymentRepository(db)

	if err := users.EnsureIndexes(ctx); err != nil {
		log.Fatalf("create indexes failed: %v", err)
	}
	if err := configs.SeedAdmin(ctx, users, cfg.AdminEmail); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}

	checkout := services.NewPaymentService(
		services.NewStripeIntents(cfg.StripeSecretKey),
		payments,
		carts,
		repository.NewTxRunner(client),
	)

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, routes.Deps{
		Cfg:      cfg,
		Users:    users,
		Menu:     menu,
		Reviews:  reviews,
		Carts:    carts,
		Payments: payments,
		Checkout: checkout,
	})

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("restaurant server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
