package repository

import (
	"context"
	"fmt"
	"sync/atomic"

	"career-compass/internal/domain/catalog"
	"career-compass/internal/domain/normalize"
	"career-compass/internal/domain/similarity"
)

// snapshot bundles everything derived from one catalog load. Swapped
// atomically on reload so in-flight requests keep a consistent view.
type snapshot struct {
	store      *catalog.Store
	normalizer *normalize.Normalizer
	model      *similarity.Model
}

// CatalogProvider owns the current catalog snapshot. Readers never block;
// Reload builds a full replacement before publishing it.
type CatalogProvider struct {
	repo *CatalogRepository
	cur  atomic.Pointer[snapshot]
}

func NewCatalogProvider(repo *CatalogRepository) *CatalogProvider {
	return &CatalogProvider{repo: repo}
}

// NewStaticProvider wraps an already-built store, for tests and for the
// one-shot CLI tools that have no database behind them.
func NewStaticProvider(store *catalog.Store) *CatalogProvider {
	p := &CatalogProvider{}
	p.publish(store)
	return p
}

func (p *CatalogProvider) Reload(ctx context.Context) error {
	if p == nil || p.repo == nil {
		return fmt.Errorf("nil catalog repository")
	}
	store, err := p.repo.Load(ctx)
	if err != nil {
		return err
	}
	p.publish(store)
	return nil
}

func (p *CatalogProvider) publish(store *catalog.Store) {
	corpus := map[string]string{}
	for _, c := range store.Careers() {
		corpus[c.Name] = c.Description
	}
	p.cur.Store(&snapshot{
		store:      store,
		normalizer: normalize.New(store),
		model:      similarity.Fit(corpus),
	})
}

func (p *CatalogProvider) Store() *catalog.Store {
	if s := p.cur.Load(); s != nil {
		return s.store
	}
	return nil
}

func (p *CatalogProvider) Normalizer() *normalize.Normalizer {
	if s := p.cur.Load(); s != nil {
		return s.normalizer
	}
	return nil
}

func (p *CatalogProvider) Model() *similarity.Model {
	if s := p.cur.Load(); s != nil {
		return s.model
	}
	return nil
}
