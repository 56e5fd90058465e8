package repository

import (
	"context"

	"github.com/vibast-solutions/ms-go-vps-showcase/app/entity"
)

// CatalogRepository is a read-only view over a catalog built at startup.
type CatalogRepository struct {
	catalog *entity.Catalog
}

func NewCatalogRepository(c *entity.Catalog) *CatalogRepository {
	return &CatalogRepository{catalog: c}
}

func (r *CatalogRepository) Catalog() *entity.Catalog {
	return r.catalog
}

func (r *CatalogRepository) ListGroups(ctx context.Context) ([]*entity.PlanGroup, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	items := make([]*entity.PlanGroup, 0, len(r.catalog.Groups))
	for i := range r.catalog.Groups {
		items = append(items, &r.catalog.Groups[i])
	}
	return items, nil
}

func (r *CatalogRepository) FindGroupByID(ctx context.Context, id string) (*entity.PlanGroup, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	group, ok := r.catalog.Group(id)
	if !ok {
		return nil, nil
	}
	return group, nil
}
