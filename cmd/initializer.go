package main

import (
	"log"
	"net/http"

	"satuBack/internal/config"
	"satuBack/internal/handlers"
	"satuBack/internal/repositories"
	"satuBack/internal/services"
	"satuBack/utils"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger
	cfg      config.Config
	tokens   *utils.Manager

	userRepo    *repositories.UserRepository
	catalogRepo *repositories.CatalogRepository

	searchHandler   *handlers.SearchHandler
	productHandler  *handlers.ProductHandler
	categoryHandler *handlers.CategoryHandler
	userHandler     *handlers.UserHandler
}

func initializeApp(cfg config.Config, catalogRepo *repositories.CatalogRepository, tokens *utils.Manager, errorLog, infoLog *log.Logger) *application {
	// Repositories
	userRepo := repositories.NewUserRepository()

	// Services
	searchService := &services.SearchService{CatalogRepo: catalogRepo}
	productService := &services.ProductService{CatalogRepo: catalogRepo}
	categoryService := &services.CategoryService{CatalogRepo: catalogRepo}
	userService := &services.UserService{UserRepo: userRepo, Tokens: tokens}

	// Handlers
	searchHandler := &handlers.SearchHandler{Service: searchService}
	productHandler := &handlers.ProductHandler{Service: productService}
	categoryHandler := &handlers.CategoryHandler{Service: categoryService}
	userHandler := &handlers.UserHandler{Service: userService}

	return &application{
		errorLog:        errorLog,
		infoLog:         infoLog,
		cfg:             cfg,
		tokens:          tokens,
		userRepo:        userRepo,
		catalogRepo:     catalogRepo,
		searchHandler:   searchHandler,
		productHandler:  productHandler,
		categoryHandler: categoryHandler,
		userHandler:     userHandler,
	}
}

func addSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cross-Origin-Opener-Policy", "same-origin")
		w.Header().Set("Cross-Origin-Resource-Policy", "same-origin")
		next.ServeHTTP(w, r)
	})
}
