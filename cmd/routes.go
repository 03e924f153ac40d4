package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("user"))

	mux := pat.New()

	// Search
	mux.Get("/products/search", standardMiddleware.ThenFunc(app.searchHandler.Search))

	// Products
	mux.Get("/products/category/:category", standardMiddleware.ThenFunc(app.productHandler.GetProductsByCategory))
	mux.Get("/product/:id", standardMiddleware.ThenFunc(app.productHandler.GetProductByID))

	// Taxonomy
	mux.Get("/category", standardMiddleware.ThenFunc(app.categoryHandler.GetCategories))
	mux.Get("/category/:category/subcategories", standardMiddleware.ThenFunc(app.categoryHandler.GetSubcategories))
	mux.Get("/brands", standardMiddleware.ThenFunc(app.categoryHandler.GetBrands))

	// Users
	mux.Post("/user/sign_up", standardMiddleware.ThenFunc(app.userHandler.SignUp))
	mux.Post("/user/sign_in", standardMiddleware.ThenFunc(app.userHandler.SignIn))
	mux.Get("/user/profile", authMiddleware.ThenFunc(app.userHandler.GetProfile))
	mux.Put("/user/profile", authMiddleware.ThenFunc(app.userHandler.UpdateProfile))

	return mux
}
