package models

// Sort modes accepted by the search endpoint.
const (
	SortRelevance = "relevance"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortNewest    = "newest"
	SortOldest    = "oldest"
)

// SearchRequest describes filters for the product search endpoint. Zero
// values mean "not supplied"; price bounds are pointers so that an absent
// bound and a zero bound stay distinguishable.
type SearchRequest struct {
	Query       string   `json:"query"`
	Category    string   `json:"category,omitempty"`
	Subcategory string   `json:"subcategory,omitempty"`
	PriceMin    *float64 `json:"price_min,omitempty"`
	PriceMax    *float64 `json:"price_max,omitempty"`
	Conditions  []string `json:"conditions,omitempty"`
	Brands      []string `json:"brands,omitempty"`
	Location    string   `json:"location,omitempty"`
	SortBy      string   `json:"sort_by,omitempty"`
	Page        int      `json:"page"`
	Limit       int      `json:"limit"`
}

// SearchResponse is the paginated search result envelope. TotalCount and
// Facets always describe the filtered set before the page slice was taken.
// Suggestions is a pointer so the field is absent for an empty query but
// still serializes as [] when a query produced no suggestions.
type SearchResponse struct {
	Products    []Product `json:"products"`
	TotalCount  int       `json:"total_count"`
	Page        int       `json:"page"`
	Limit       int       `json:"limit"`
	Facets      Facets    `json:"facets"`
	Suggestions *[]string `json:"suggestions,omitempty"`
}

type Facets struct {
	Categories  []FacetCount     `json:"categories"`
	Brands      []FacetCount     `json:"brands"`
	Conditions  []FacetCount     `json:"conditions"`
	PriceRanges []PriceBandCount `json:"price_ranges"`
}

type FacetCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// PriceBandCount counts products in a half-open price interval [From, To).
// The last band is unbounded above and carries To == nil.
type PriceBandCount struct {
	Label string   `json:"label"`
	From  float64  `json:"from"`
	To    *float64 `json:"to,omitempty"`
	Count int      `json:"count"`
}
