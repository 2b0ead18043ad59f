package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/layensweets/site/internal/adapters/repo/sitedata"
	"github.com/layensweets/site/internal/domain"
)

// CatalogUC holds the admin synchronization flows: load the full collection,
// replace in place (or append for a new entity), write the whole collection
// back. Last write wins; concurrent admin sessions can clobber each other and
// that is a documented limitation, not something this layer papers over.
type CatalogUC struct {
	Data *sitedata.Repository
}

func (uc *CatalogUC) SaveProduct(ctx context.Context, p *domain.Product) error {
	if p == nil {
		return errors.New("product nil")
	}
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return errors.New("product name required")
	}
	if p.Price < 0 {
		return errors.New("product price negative")
	}
	if !p.Category.Valid() {
		return errors.New("unknown category")
	}
	// The dressage flag only means something on a Sable.
	if p.Category != domain.CategorySable {
		p.SableDressage = false
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	products := uc.Data.Products(ctx)
	replaced := false
	for i := range products {
		if products[i].ID == p.ID {
			products[i] = *p
			replaced = true
			break
		}
	}
	if !replaced {
		products = append(products, *p)
	}
	return uc.Data.ReplaceProducts(ctx, products)
}

func (uc *CatalogUC) DeleteProduct(ctx context.Context, id string) error {
	products := uc.Data.Products(ctx)
	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(products) {
		return domain.ErrNotFound
	}
	return uc.Data.ReplaceProducts(ctx, kept)
}

func (uc *CatalogUC) SaveRecipe(ctx context.Context, rec *domain.Recipe) error {
	if rec == nil {
		return errors.New("recipe nil")
	}
	rec.Title = strings.TrimSpace(rec.Title)
	if rec.Title == "" {
		return errors.New("recipe title required")
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	recipes := uc.Data.Recipes(ctx)
	replaced := false
	for i := range recipes {
		if recipes[i].ID == rec.ID {
			recipes[i] = *rec
			replaced = true
			break
		}
	}
	if !replaced {
		recipes = append(recipes, *rec)
	}
	return uc.Data.ReplaceRecipes(ctx, recipes)
}

func (uc *CatalogUC) DeleteRecipe(ctx context.Context, id string) error {
	recipes := uc.Data.Recipes(ctx)
	kept := recipes[:0]
	for _, r := range recipes {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(recipes) {
		return domain.ErrNotFound
	}
	return uc.Data.ReplaceRecipes(ctx, kept)
}

// UpdateContent overwrites the singleton site-content record wholesale.
func (uc *CatalogUC) UpdateContent(ctx context.Context, c domain.SiteContent) error {
	return uc.Data.ReplaceContent(ctx, c)
}
