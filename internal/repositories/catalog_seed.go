package repositories

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"satuBack/internal/models"
)

// Fixed storefront taxonomy. Order matters: it is the order categories are
// reported in by the taxonomy endpoint.
var taxonomy = []struct {
	Name          string
	Subcategories []string
}{
	{"electronics", []string{"laptops", "phones", "tablets", "monitors"}},
	{"appliances", []string{"refrigerators", "washing machines", "vacuum cleaners"}},
	{"furniture", []string{"sofas", "tables", "wardrobes"}},
	{"sport", []string{"bicycles", "treadmills", "dumbbells"}},
}

var supportedBrands = []string{
	"Dell", "Apple", "Samsung", "HP", "Lenovo", "LG", "Bosch", "Philips", "Ikea", "Giant",
}

var cities = []models.Location{
	{City: "Almaty", Region: "Almaty Region", Country: "Kazakhstan"},
	{City: "Astana", Region: "Akmola Region", Country: "Kazakhstan"},
	{City: "Shymkent", Region: "Turkistan Region", Country: "Kazakhstan"},
	{City: "Karaganda", Region: "Karaganda Region", Country: "Kazakhstan"},
}

var conditions = []string{models.ConditionNew, models.ConditionUsed, models.ConditionRefurbished}

var colors = []string{"black", "silver", "white", "gray", "blue"}

// CategoryNames returns the taxonomy in its fixed order.
func CategoryNames() []string {
	names := make([]string, 0, len(taxonomy))
	for _, c := range taxonomy {
		names = append(names, c.Name)
	}
	return names
}

// SubcategoriesOf returns the subcategories of one category, or nil when the
// category is not part of the taxonomy.
func SubcategoriesOf(category string) []string {
	for _, c := range taxonomy {
		if c.Name == category {
			return c.Subcategories
		}
	}
	return nil
}

// Brands returns the supported-brand set in its fixed order.
func Brands() []string {
	return supportedBrands
}

// SeedCatalog builds the mock catalog the storefront runs on. The generator
// is driven by a seeded source so the same seed and size always produce the
// same dataset (IDs aside, which are fresh UUIDs).
func SeedCatalog(seed int64, size int) []models.Product {
	rng := rand.New(rand.NewSource(seed))
	now := time.Now().UTC()

	products := make([]models.Product, 0, size)
	for i := 0; i < size; i++ {
		cat := taxonomy[rng.Intn(len(taxonomy))]
		sub := cat.Subcategories[rng.Intn(len(cat.Subcategories))]
		brand := supportedBrands[rng.Intn(len(supportedBrands))]
		model := fmt.Sprintf("%s %d", brand, 100+rng.Intn(900))

		// Prices land across all facet bands, 2 000 .. 400 000.
		price := float64(2000 + rng.Intn(398001))

		status := models.StatusActive
		switch rng.Intn(10) {
		case 0:
			status = models.StatusSold
		case 1:
			status = models.StatusInactive
		}

		specs := map[string]models.SpecValue{
			"color":          models.StringSpec(colors[rng.Intn(len(colors))]),
			"weight_kg":      models.NumberSpec(float64(1+rng.Intn(40)) + 0.5),
			"under_warranty": models.BoolSpec(rng.Intn(2) == 0),
		}
		if cat.Name == "electronics" {
			specs["ram_gb"] = models.NumberSpec(float64(int(4) << rng.Intn(4)))
			specs["model"] = models.StringSpec(model)
		}

		products = append(products, models.Product{
			ID:          uuid.NewString(),
			Title:       fmt.Sprintf("%s %s", model, sub),
			Description: fmt.Sprintf("%s %s by %s in good shape, pickup in person or delivery", cat.Name, sub, brand),
			Price:       price,
			Condition:   conditions[rng.Intn(len(conditions))],
			Status:      status,
			Category:    cat.Name,
			Subcategory: sub,
			Brand:       brand,
			Specs:       specs,
			Location:    cities[rng.Intn(len(cities))],
			SellerID:    1 + rng.Intn(50),
			CreatedAt:   now.Add(-time.Duration(rng.Intn(90*24)) * time.Hour),
		})
	}
	return products
}
