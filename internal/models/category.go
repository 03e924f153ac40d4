package models

// Category is one node of the fixed storefront taxonomy together with the
// number of active products currently listed under it.
type Category struct {
	Name          string   `json:"name"`
	Subcategories []string `json:"subcategories"`
	ProductCount  int      `json:"product_count"`
}
