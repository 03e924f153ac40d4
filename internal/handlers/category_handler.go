package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"satuBack/internal/models"
	"satuBack/internal/services"
)

type CategoryHandler struct {
	Service *services.CategoryService
}

func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories := h.Service.GetCategories(r.Context())

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(categories)
}

func (h *CategoryHandler) GetSubcategories(w http.ResponseWriter, r *http.Request) {
	category := getParam(r, "category")

	subcategories, err := h.Service.GetSubcategories(r.Context(), category)
	if err != nil {
		if errors.Is(err, models.ErrCategoryNotFound) {
			http.Error(w, "category not found", http.StatusNotFound)
			return
		}
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(subcategories)
}

func (h *CategoryHandler) GetBrands(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.Service.GetBrands(r.Context()))
}
