package services

import (
	"context"

	"github.com/Soham964/AGRO/internal/client/api"
	"github.com/Soham964/AGRO/internal/client/models"
)

// Catalog exposes the product listing. It holds no state; errors propagate
// to the caller.
type Catalog interface {
	List(ctx context.Context, query api.ProductQuery) (*models.ProductPage, error)
	Get(ctx context.Context, id int64) (*models.Product, error)
	Categories(ctx context.Context) ([]models.CategoryOption, error)
	Search(ctx context.Context, q, category, sort string) ([]models.Product, error)
}

type catalog struct {
	gateway api.Gateway
}

func NewCatalog(gateway api.Gateway) Catalog {
	return &catalog{gateway: gateway}
}

func (c *catalog) List(ctx context.Context, query api.ProductQuery) (*models.ProductPage, error) {
	return c.gateway.Products(ctx, query)
}

func (c *catalog) Get(ctx context.Context, id int64) (*models.Product, error) {
	return c.gateway.Product(ctx, id)
}

func (c *catalog) Categories(ctx context.Context) ([]models.CategoryOption, error) {
	return c.gateway.ProductCategories(ctx)
}

func (c *catalog) Search(ctx context.Context, q, category, sort string) ([]models.Product, error) {
	return c.gateway.SearchProducts(ctx, q, category, sort)
}
