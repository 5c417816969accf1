package cart

import (
	"context"

	"github.com/google/uuid"
	"github.com/sheetshop/storefront/internal/shop/catalog"
	"github.com/sheetshop/storefront/internal/shop/model"
	logx "github.com/sheetshop/storefront/pkg/logger"
)

// Session binds a cart to one shopper session, its catalog and an optional
// repository. Every successful mutation snapshots the entry IDs.
type Session struct {
	id      string
	catalog *catalog.Catalog
	cart    *Cart
	repo    model.CartRepository
}

// NewSession starts an empty session. repo may be nil, in which case the cart
// lives only as long as the Session value.
func NewSession(id string, cat *catalog.Catalog, repo model.CartRepository) *Session {
	return &Session{id: id, catalog: cat, cart: New(), repo: repo}
}

func (s *Session) ID() string { return s.id }
func (s *Session) Cart() *Cart { return s.cart }
func (s *Session) Catalog() *catalog.Catalog { return s.catalog }

func (s *Session) Add(ctx context.Context, index int) error {
	return s.mutate(ctx, func() error { return s.cart.Add(s.catalog, index) })
}

func (s *Session) AddByID(ctx context.Context, id uuid.UUID) error {
	return s.mutate(ctx, func() error { return s.cart.AddByID(s.catalog, id) })
}

func (s *Session) Remove(ctx context.Context, position int) error {
	return s.mutate(ctx, func() error { return s.cart.Remove(position) })
}

// mutate applies fn and persists the result. A failed save rolls the cart
// back so memory and the stored snapshot never disagree.
func (s *Session) mutate(ctx context.Context, fn func() error) error {
	before := s.cart.Entries()
	if err := fn(); err != nil {
		return err
	}
	if err := s.persist(ctx); err != nil {
		logx.Error().Err(err).Str("session", s.id).Msg("failed to save cart; rolled back")
		s.cart.entries = before
		return err
	}
	return nil
}

// Restore replaces the cart with the stored entries. IDs that no longer
// resolve against the catalog are dropped and the count is returned.
func (s *Session) Restore(ctx context.Context) (dropped int, err error) {
	if s.repo == nil {
		return 0, nil
	}
	ids, err := s.repo.Load(ctx, s.id)
	if err != nil {
		return 0, err
	}

	restored := New()
	for _, id := range ids {
		p, ok := s.catalog.ByID(id)
		if !ok {
			dropped++
			continue
		}
		restored.entries = append(restored.entries, p)
	}
	s.cart = restored

	if dropped > 0 {
		logx.Warn().Str("session", s.id).Int("dropped", dropped).Msg("cart entries no longer in catalog")
	}
	logx.Debug().Str("session", s.id).Int("entries", restored.Count()).Msg("cart restored")
	return dropped, nil
}

// Forget deletes the stored snapshot. The in-memory cart is left as is.
func (s *Session) Forget(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}
	return s.repo.Delete(ctx, s.id)
}

func (s *Session) persist(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}
	return s.repo.Save(ctx, s.id, s.cart.IDs())
}
