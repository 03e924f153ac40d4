package services

import (
	"context"
	"sort"
	"strings"

	"satuBack/internal/models"
	"satuBack/internal/repositories"
)

const (
	// MaxLimit is the largest allowed page size.
	MaxLimit = 100

	maxSuggestions = 5
)

// SearchService runs the product search pipeline: filter, sort, facets,
// pagination, suggestions. Every call recomputes over the injected catalog
// snapshot; no state is kept between requests.
type SearchService struct {
	CatalogRepo *repositories.CatalogRepository
}

// Search returns products filtered by the provided criteria. The page/limit
// values must already carry their defaults; invalid ones are rejected before
// any filtering work.
func (s *SearchService) Search(ctx context.Context, req models.SearchRequest) (models.SearchResponse, error) {
	if req.Page < 1 {
		return models.SearchResponse{}, models.ErrInvalidPage
	}
	if req.Limit < 1 || req.Limit > MaxLimit {
		return models.SearchResponse{}, models.ErrInvalidLimit
	}

	query := strings.ToLower(strings.TrimSpace(req.Query))

	catalog := s.CatalogRepo.Snapshot(ctx)
	filtered := filterProducts(catalog, req, query)
	sorted := sortProducts(filtered, req.SortBy, query)

	resp := models.SearchResponse{
		Products:   paginate(sorted, req.Page, req.Limit),
		TotalCount: len(filtered),
		Page:       req.Page,
		Limit:      req.Limit,
		Facets:     buildFacets(filtered),
	}

	// Suggestions exist only for a textual query; an empty query leaves the
	// field absent entirely.
	if query != "" {
		suggestions := collectSuggestions(catalog, query)
		resp.Suggestions = &suggestions
	}

	return resp, nil
}

// filterProducts narrows the catalog with AND semantics across filter kinds
// and OR semantics inside the multi-valued ones. Catalog order is preserved
// and the input slice is never mutated.
func filterProducts(catalog []models.Product, req models.SearchRequest, query string) []models.Product {
	filtered := make([]models.Product, 0)
	for _, p := range catalog {
		if p.Status != models.StatusActive {
			continue
		}
		if query != "" && !matchesQuery(p, query) {
			continue
		}
		if req.Category != "" && p.Category != req.Category {
			continue
		}
		if req.Subcategory != "" && p.Subcategory != req.Subcategory {
			continue
		}
		if req.PriceMin != nil && p.Price < *req.PriceMin {
			continue
		}
		if req.PriceMax != nil && p.Price > *req.PriceMax {
			continue
		}
		if len(req.Conditions) > 0 && !containsString(req.Conditions, p.Condition) {
			continue
		}
		if len(req.Brands) > 0 && !containsString(req.Brands, p.Brand) {
			continue
		}
		// City match is exact and case-sensitive, unlike the text query.
		if req.Location != "" && p.Location.City != req.Location {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// matchesQuery reports whether the lower-cased query occurs in the title,
// the description or any string-valued spec. Numeric and boolean specs never
// match text.
func matchesQuery(p models.Product, query string) bool {
	if strings.Contains(strings.ToLower(p.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), query) {
		return true
	}
	for _, v := range p.Specs {
		if v.Kind == models.SpecString && strings.Contains(strings.ToLower(v.Str), query) {
			return true
		}
	}
	return false
}

// relevanceScore is the per-item ranking heuristic. Scores are independent
// between items; there is no normalization.
func relevanceScore(p models.Product, query string) int {
	score := 0

	title := strings.ToLower(p.Title)
	if strings.Contains(title, query) {
		score += 100
		if title == query {
			score += 50
		}
		if strings.HasPrefix(title, query) {
			score += 25
		}
	}
	if strings.Contains(strings.ToLower(p.Description), query) {
		score += 50
	}
	for _, v := range p.Specs {
		if v.Kind == models.SpecString && strings.Contains(strings.ToLower(v.Str), query) {
			score += 10
		}
	}
	if strings.Contains(strings.ToLower(p.Brand), query) {
		score += 30
	}
	return score
}

type scoredProduct struct {
	product models.Product
	score   int
}

// sortProducts orders the filtered set by the requested mode. The sort is
// stable in every mode: equal keys keep their catalog order. Unknown modes
// fall back to relevance, and relevance without a query degrades to newest.
func sortProducts(filtered []models.Product, sortBy, query string) []models.Product {
	sorted := append([]models.Product(nil), filtered...)

	switch sortBy {
	case models.SortPriceLow:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price < sorted[j].Price
		})
	case models.SortPriceHigh:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price > sorted[j].Price
		})
	case models.SortNewest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		})
	case models.SortOldest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		})
	default:
		if query == "" {
			return sortProducts(filtered, models.SortNewest, query)
		}
		entries := make([]scoredProduct, 0, len(sorted))
		for _, p := range sorted {
			entries = append(entries, scoredProduct{product: p, score: relevanceScore(p, query)})
		}
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].score > entries[j].score
		})
		for i, e := range entries {
			sorted[i] = e.product
		}
	}
	return sorted
}

// paginate slices one page out of the sorted set. An out-of-range page is an
// empty page, not an error.
func paginate(sorted []models.Product, page, limit int) []models.Product {
	total := len(sorted)
	start := (page - 1) * limit
	if start >= total {
		return []models.Product{}
	}
	end := start + limit
	if end > total {
		end = total
	}
	return sorted[start:end]
}

// priceBands are the fixed facet intervals, lower-inclusive/upper-exclusive,
// with the last band unbounded above.
var priceBands = []struct {
	label string
	from  float64
	to    float64
	open  bool
}{
	{label: "0-10000", from: 0, to: 10000},
	{label: "10000-25000", from: 10000, to: 25000},
	{label: "25000-50000", from: 25000, to: 50000},
	{label: "50000-100000", from: 50000, to: 100000},
	{label: "100000+", from: 100000, open: true},
}

// buildFacets aggregates grouped counts over the filtered, pre-pagination
// set. Entries appear in discovery order; bands without products are left
// out, so an empty filtered set produces four empty groups.
func buildFacets(filtered []models.Product) models.Facets {
	categories := newFacetGroup()
	brands := newFacetGroup()
	conditions := newFacetGroup()
	for _, p := range filtered {
		categories.add(p.Category)
		brands.add(p.Brand)
		conditions.add(p.Condition)
	}

	ranges := make([]models.PriceBandCount, 0, len(priceBands))
	for _, band := range priceBands {
		count := 0
		for _, p := range filtered {
			if p.Price < band.from {
				continue
			}
			if !band.open && p.Price >= band.to {
				continue
			}
			count++
		}
		if count == 0 {
			continue
		}
		entry := models.PriceBandCount{Label: band.label, From: band.from, Count: count}
		if !band.open {
			to := band.to
			entry.To = &to
		}
		ranges = append(ranges, entry)
	}

	return models.Facets{
		Categories:  categories.list(),
		Brands:      brands.list(),
		Conditions:  conditions.list(),
		PriceRanges: ranges,
	}
}

// facetGroup counts values while remembering first-seen order so the output
// stays deterministic for identical input.
type facetGroup struct {
	order  []string
	counts map[string]int
}

func newFacetGroup() *facetGroup {
	return &facetGroup{counts: make(map[string]int)}
}

func (g *facetGroup) add(value string) {
	if _, ok := g.counts[value]; !ok {
		g.order = append(g.order, value)
	}
	g.counts[value]++
}

func (g *facetGroup) list() []models.FacetCount {
	result := make([]models.FacetCount, 0, len(g.order))
	for _, value := range g.order {
		result = append(result, models.FacetCount{Value: value, Count: g.counts[value]})
	}
	return result
}

// collectSuggestions walks the active catalog once and picks up to five
// distinct titles and brands containing the query, in the order encountered.
// Filters other than the status rule are deliberately ignored here: the
// point is recovery from a search that matched little or nothing.
func collectSuggestions(catalog []models.Product, query string) []string {
	seen := make(map[string]struct{}, maxSuggestions)
	suggestions := make([]string, 0, maxSuggestions)
	for _, p := range catalog {
		if p.Status != models.StatusActive {
			continue
		}
		for _, candidate := range [2]string{p.Title, p.Brand} {
			if len(suggestions) == maxSuggestions {
				return suggestions
			}
			if !strings.Contains(strings.ToLower(candidate), query) {
				continue
			}
			if _, ok := seen[candidate]; ok {
				continue
			}
			seen[candidate] = struct{}{}
			suggestions = append(suggestions, candidate)
		}
	}
	return suggestions
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
