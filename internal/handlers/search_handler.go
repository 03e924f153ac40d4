package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"satuBack/internal/models"
	"satuBack/internal/services"
)

// SearchHandler exposes the product search endpoint.
type SearchHandler struct {
	Service *services.SearchService
}

// Search runs the full pipeline for GET /products/search. Pagination
// parameters are strict; everything else is parsed leniently and malformed
// values simply do not filter.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	if h.Service == nil {
		http.Error(w, "service unavailable", http.StatusInternalServerError)
		return
	}

	q := r.URL.Query()
	req := models.SearchRequest{
		Query:       strings.TrimSpace(q.Get("query")),
		Category:    strings.TrimSpace(q.Get("category")),
		Subcategory: strings.TrimSpace(q.Get("subcategory")),
		PriceMin:    parseFloatParam(q.Get("priceMin")),
		PriceMax:    parseFloatParam(q.Get("priceMax")),
		Conditions:  parseListParam(q.Get("conditions")),
		Brands:      parseListParam(q.Get("brands")),
		Location:    strings.TrimSpace(q.Get("location")),
		SortBy:      strings.TrimSpace(q.Get("sortBy")),
		Page:        parseIntParam(q.Get("page"), 1),
		Limit:       parseIntParam(q.Get("limit"), 20),
	}
	if req.Query == "" {
		req.Query = strings.TrimSpace(q.Get("q"))
	}

	response, err := h.Service.Search(r.Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrInvalidPage) || errors.Is(err, models.ErrInvalidLimit) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(response)
}
