package main

import (
	"context"
	"log"
	"time"

	"github.com/Mathumitha-create/BeautyHub-Backend/internal/api"
	"github.com/Mathumitha-create/BeautyHub-Backend/internal/auth"
	"github.com/Mathumitha-create/BeautyHub-Backend/internal/config"
	"github.com/Mathumitha-create/BeautyHub-Backend/internal/service"
	"github.com/Mathumitha-create/BeautyHub-Backend/internal/store"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	st, err := store.Open(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("MongoDB connection error: %v", err)
	}
	defer st.Close(context.Background())
	log.Println("Connected to MongoDB")

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	server := api.NewServer(api.Deps{
		Users:     st.Users,
		Products:  st.Products,
		Tokens:    tokens,
		Carts:     service.NewCartService(st.Carts, st.Products),
		Wishlists: service.NewWishlistService(st.Wishlists, st.Products),
		Orders:    service.NewOrderService(st.Orders, st.Carts, st.Products),
	})

	r := server.Router(cfg.ClientOrigin)
	log.Printf("Server is running on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
