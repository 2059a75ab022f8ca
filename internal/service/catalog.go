package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"storefront/internal/entity"
)

// ErrUnknownProduct is returned when a product ID does not resolve to a
// catalog entry.
var ErrUnknownProduct = errors.New("unknown product")

// CatalogService provides the admin-facing catalog operations. Mutations
// address products by surrogate ID, never by displayed row number, so a
// sorted display can never desynchronize from the record being changed.
type CatalogService struct {
	store CatalogStore
}

// NewCatalogService creates a new instance of CatalogService.
func NewCatalogService(store CatalogStore) *CatalogService {
	return &CatalogService{store: store}
}

// LoadCatalog reads the authoritative catalog. Surrogate IDs are stable for
// the lifetime of the returned value.
func (s *CatalogService) LoadCatalog(ctx context.Context) (*entity.Catalog, error) {
	catalog, err := s.store.Load(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error loading catalog")
		return nil, err
	}
	return catalog, nil
}

// AddProduct appends a product and persists the catalog. Duplicate names are
// legal.
func (s *CatalogService) AddProduct(ctx context.Context, catalog *entity.Catalog, p *entity.Product) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	catalog.Add(p)
	if err := s.store.Save(ctx, catalog); err != nil {
		logger.Error().Err(err).Msgf("Error saving catalog after adding %s", p.Name)
		return err
	}
	logger.Info().Str("product", p.Name).Msg("Product added")
	return nil
}

// RemoveProduct deletes the product with the given ID and persists the
// catalog.
func (s *CatalogService) RemoveProduct(ctx context.Context, catalog *entity.Catalog, id uuid.UUID) error {
	i, err := s.indexOf(catalog, id)
	if err != nil {
		return err
	}
	if err := catalog.RemoveAt(i); err != nil {
		return err
	}
	if err := s.store.Save(ctx, catalog); err != nil {
		logger.Error().Err(err).Msg("Error saving catalog after removal")
		return err
	}
	logger.Info().Str("id", id.String()).Msg("Product removed")
	return nil
}

// ReplaceProduct overwrites the catalog entry matching updated.ID in place
// and persists the catalog.
func (s *CatalogService) ReplaceProduct(ctx context.Context, catalog *entity.Catalog, updated *entity.Product) error {
	i, err := s.indexOf(catalog, updated.ID)
	if err != nil {
		return err
	}
	if err := catalog.ReplaceAt(i, updated); err != nil {
		return err
	}
	if err := s.store.Save(ctx, catalog); err != nil {
		logger.Error().Err(err).Msgf("Error saving catalog after editing %s", updated.Name)
		return err
	}
	logger.Info().Str("product", updated.Name).Msg("Product updated")
	return nil
}

func (s *CatalogService) indexOf(catalog *entity.Catalog, id uuid.UUID) (int, error) {
	for i, p := range catalog.Products() {
		if p.ID == id {
			return i, nil
		}
	}
	return 0, ErrUnknownProduct
}
