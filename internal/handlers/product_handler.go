package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"satuBack/internal/models"
	"satuBack/internal/services"
)

type ProductHandler struct {
	Service *services.ProductService
}

func (h *ProductHandler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	id := getParam(r, "id")
	if id == "" {
		http.Error(w, "product id is required", http.StatusBadRequest)
		return
	}

	product, err := h.Service.GetProductByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(product)
}

func (h *ProductHandler) GetProductsByCategory(w http.ResponseWriter, r *http.Request) {
	category := getParam(r, "category")
	if category == "" {
		http.Error(w, "category is required", http.StatusBadRequest)
		return
	}

	page := parseIntParam(r.URL.Query().Get("page"), 1)
	limit := parseIntParam(r.URL.Query().Get("limit"), 20)

	response, err := h.Service.GetProductsByCategory(r.Context(), category, page, limit)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidPage), errors.Is(err, models.ErrInvalidLimit):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, models.ErrCategoryNotFound):
			http.Error(w, "category not found", http.StatusNotFound)
		default:
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(response)
}
