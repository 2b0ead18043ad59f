package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/layensweets/site/internal/domain"
)

func TestSaveProductNewAndEdit(t *testing.T) {
	uc := &CatalogUC{Data: testRepo(t, testCatalog())}
	ctx := context.Background()

	p := &domain.Product{Name: "Citron Vert", Price: 3, Category: domain.CategoryMacaron, Available: true}
	if err := uc.SaveProduct(ctx, p); err != nil {
		t.Fatal(err)
	}
	if p.ID == "" {
		t.Fatal("new product should get an id assigned")
	}
	products := uc.Data.Products(ctx)
	if len(products) != len(testCatalog())+1 {
		t.Fatalf("expected append, got %d products", len(products))
	}

	p.Price = 3.5
	if err := uc.SaveProduct(ctx, p); err != nil {
		t.Fatal(err)
	}
	products = uc.Data.Products(ctx)
	if len(products) != len(testCatalog())+1 {
		t.Fatal("edit must replace in place, not append")
	}
	for _, got := range products {
		if got.ID == p.ID && got.Price != 3.5 {
			t.Errorf("edit not persisted: %+v", got)
		}
	}
}

func TestSaveProductValidation(t *testing.T) {
	uc := &CatalogUC{Data: testRepo(t, nil)}
	ctx := context.Background()

	if err := uc.SaveProduct(ctx, &domain.Product{Name: "", Category: domain.CategoryCake}); err == nil {
		t.Error("empty name must be rejected")
	}
	if err := uc.SaveProduct(ctx, &domain.Product{Name: "X", Price: -1, Category: domain.CategoryCake}); err == nil {
		t.Error("negative price must be rejected")
	}
	if err := uc.SaveProduct(ctx, &domain.Product{Name: "X", Category: "Tart"}); err == nil {
		t.Error("unknown category must be rejected")
	}

	// The dressage flag is cleared outside the Sable category.
	p := &domain.Product{Name: "Choco", Price: 5, Category: domain.CategoryCake, SableDressage: true}
	if err := uc.SaveProduct(ctx, p); err != nil {
		t.Fatal(err)
	}
	if p.SableDressage {
		t.Error("dressage flag should be cleared for non-sable products")
	}
}

func TestDeleteProduct(t *testing.T) {
	uc := &CatalogUC{Data: testRepo(t, testCatalog())}
	ctx := context.Background()

	if err := uc.DeleteProduct(ctx, "m1"); err != nil {
		t.Fatal(err)
	}
	for _, p := range uc.Data.Products(ctx) {
		if p.ID == "m1" {
			t.Error("deleted product still present")
		}
	}
	if err := uc.DeleteProduct(ctx, "m1"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("second delete: got %v, want ErrNotFound", err)
	}
}

func TestSaveAndDeleteRecipe(t *testing.T) {
	uc := &CatalogUC{Data: testRepo(t, nil)}
	ctx := context.Background()

	rec := &domain.Recipe{Title: "Le Fraisage", Content: "..."}
	if err := uc.SaveRecipe(ctx, rec); err != nil {
		t.Fatal(err)
	}
	if rec.ID == "" {
		t.Fatal("new recipe should get an id assigned")
	}

	rec.Content = "updated"
	if err := uc.SaveRecipe(ctx, rec); err != nil {
		t.Fatal(err)
	}
	recipes := uc.Data.Recipes(ctx)
	found := 0
	for _, r := range recipes {
		if r.ID == rec.ID {
			found++
			if r.Content != "updated" {
				t.Errorf("recipe edit not persisted: %+v", r)
			}
		}
	}
	if found != 1 {
		t.Fatalf("expected exactly one copy of the recipe, found %d", found)
	}

	if err := uc.DeleteRecipe(ctx, rec.ID); err != nil {
		t.Fatal(err)
	}
	if err := uc.DeleteRecipe(ctx, rec.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("second delete: got %v, want ErrNotFound", err)
	}
}

func TestUpdateContentOverwritesWholesale(t *testing.T) {
	uc := &CatalogUC{Data: testRepo(t, nil)}
	ctx := context.Background()

	c := domain.DefaultContent()
	c.HeroTitle = "Nouvelle Saison"
	c.ChefQuote = ""
	if err := uc.UpdateContent(ctx, c); err != nil {
		t.Fatal(err)
	}
	got := uc.Data.Content(ctx)
	if got.HeroTitle != "Nouvelle Saison" || got.ChefQuote != "" {
		t.Errorf("content not overwritten wholesale: %+v", got)
	}
}
