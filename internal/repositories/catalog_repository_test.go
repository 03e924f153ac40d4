package repositories

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"satuBack/internal/models"
)

func fixtureCatalog() []models.Product {
	created := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	return []models.Product{
		{ID: "c1", Title: "Dell 400 laptops", Price: 120000, Status: models.StatusActive,
			Category: "electronics", Subcategory: "laptops", Brand: "Dell", CreatedAt: created},
		{ID: "c2", Title: "Ikea sofa", Price: 80000, Status: models.StatusActive,
			Category: "furniture", Subcategory: "sofas", Brand: "Ikea", CreatedAt: created},
		{ID: "c3", Title: "Samsung 210 phones", Price: 9000, Status: models.StatusSold,
			Category: "electronics", Subcategory: "phones", Brand: "Samsung", CreatedAt: created},
	}
}

func TestCatalogRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewCatalogRepository(fixtureCatalog())

	t.Run("snapshot keeps insertion order", func(t *testing.T) {
		snapshot := repo.Snapshot(ctx)
		if len(snapshot) != 3 {
			t.Fatalf("expected 3 products, got %d", len(snapshot))
		}
		if snapshot[0].ID != "c1" || snapshot[2].ID != "c3" {
			t.Fatalf("order changed: %s ... %s", snapshot[0].ID, snapshot[2].ID)
		}
	})

	t.Run("lookup by id", func(t *testing.T) {
		p, err := repo.GetProductByID(ctx, "c2")
		if err != nil {
			t.Fatal(err)
		}
		if p.Title != "Ikea sofa" {
			t.Fatalf("wrong product: %+v", p)
		}

		if _, err := repo.GetProductByID(ctx, "missing"); !errors.Is(err, models.ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("category listing is active only", func(t *testing.T) {
		electronics := repo.GetProductsByCategory(ctx, "electronics")
		if len(electronics) != 1 || electronics[0].ID != "c1" {
			t.Fatalf("expected just c1, got %+v", electronics)
		}
		if got := repo.GetProductsByCategory(ctx, "nonexistent"); len(got) != 0 {
			t.Fatalf("expected nothing, got %+v", got)
		}
	})

	if repo.Size() != 3 {
		t.Fatalf("expected size 3, got %d", repo.Size())
	}
}

func TestSeedCatalog(t *testing.T) {
	products := SeedCatalog(42, 500)

	if len(products) != 500 {
		t.Fatalf("expected 500 products, got %d", len(products))
	}

	statuses := make(map[string]int)
	seenIDs := make(map[string]bool)
	for _, p := range products {
		if seenIDs[p.ID] {
			t.Fatalf("duplicate id %s", p.ID)
		}
		seenIDs[p.ID] = true

		statuses[p.Status]++
		if p.Price < 2000 || p.Price > 400000 {
			t.Fatalf("price %f out of range", p.Price)
		}
		if SubcategoriesOf(p.Category) == nil {
			t.Fatalf("product %s has unknown category %q", p.ID, p.Category)
		}
		if len(p.Specs) == 0 {
			t.Fatalf("product %s has no specs", p.ID)
		}
	}

	// Roughly a tenth each of sold and inactive listings.
	for _, status := range []string{models.StatusSold, models.StatusInactive} {
		if statuses[status] == 0 {
			t.Fatalf("expected some %s listings", status)
		}
	}
	if statuses[models.StatusActive] < 300 {
		t.Fatalf("expected a mostly active catalog, got %d active", statuses[models.StatusActive])
	}

	t.Run("same seed gives the same dataset", func(t *testing.T) {
		a := SeedCatalog(7, 50)
		b := SeedCatalog(7, 50)
		for i := range a {
			// IDs are fresh UUIDs and timestamps are anchored to the wall
			// clock; everything else must match.
			a[i].ID, b[i].ID = "", ""
			a[i].CreatedAt, b[i].CreatedAt = time.Time{}, time.Time{}
		}
		if !reflect.DeepEqual(a, b) {
			t.Fatal("two runs with the same seed diverged")
		}
	})
}

func TestTaxonomy(t *testing.T) {
	names := CategoryNames()
	want := []string{"electronics", "appliances", "furniture", "sport"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("expected %v, got %v", want, names)
	}

	if subs := SubcategoriesOf("sport"); !reflect.DeepEqual(subs, []string{"bicycles", "treadmills", "dumbbells"}) {
		t.Fatalf("unexpected sport subcategories: %v", subs)
	}
	if SubcategoriesOf("groceries") != nil {
		t.Fatal("unknown category must return nil")
	}

	if brands := Brands(); len(brands) != 10 || brands[0] != "Dell" {
		t.Fatalf("unexpected brands: %v", brands)
	}
}
