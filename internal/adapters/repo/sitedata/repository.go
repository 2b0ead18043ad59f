// Package sitedata is the typed repository over the key-value store. Reads
// decode at this boundary and never fail: a missing key, an unreachable store
// or a malformed document all resolve to the bundled defaults, logged only.
// Writes replace the whole document and fail loudly.
package sitedata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/layensweets/site/internal/adapters/store"
	"github.com/layensweets/site/internal/domain"
)

type cached struct {
	seq uint64
	raw []byte
}

type Repository struct {
	kv store.KV

	mu      sync.Mutex
	nextSeq uint64
	// Last document that decoded cleanly, per key. Sequence numbers keep a
	// slow stale read from overwriting the result of a later one.
	lastGood map[string]cached
}

func New(kv store.KV) *Repository {
	return &Repository{kv: kv, lastGood: map[string]cached{}}
}

// read fetches and decodes the document at key into out. It reports false
// when the caller should fall back to defaults.
func (r *Repository) read(ctx context.Context, key string, out any) bool {
	r.mu.Lock()
	r.nextSeq++
	seq := r.nextSeq
	r.mu.Unlock()

	raw, err := r.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			log.Warn().Err(err).Str("key", key).Msg("store read failed, serving fallback")
		}
		return r.readCached(key, out)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		log.Error().Err(err).Str("key", key).Int("bytes", len(raw)).Msg("stored document is malformed, serving fallback")
		return r.readCached(key, out)
	}
	r.apply(key, seq, raw)
	return true
}

// apply records raw as the last-good document for key unless a later fetch
// already did.
func (r *Repository) apply(key string, seq uint64, raw []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.lastGood[key]; ok && prev.seq >= seq {
		return
	}
	r.lastGood[key] = cached{seq: seq, raw: raw}
}

func (r *Repository) readCached(key string, out any) bool {
	r.mu.Lock()
	c, ok := r.lastGood[key]
	r.mu.Unlock()
	if !ok {
		return false
	}
	return json.Unmarshal(c.raw, out) == nil
}

// write marshals v and replaces the document at key. Unlike reads, failures
// surface: admin edits must not silently vanish.
func (r *Repository) write(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := r.kv.Put(ctx, key, raw); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	r.mu.Lock()
	r.nextSeq++
	seq := r.nextSeq
	r.mu.Unlock()
	r.apply(key, seq, raw)
	return nil
}

func (r *Repository) Products(ctx context.Context) []domain.Product {
	var out []domain.Product
	if !r.read(ctx, store.KeyProducts, &out) {
		return domain.DefaultProducts()
	}
	if out == nil {
		out = []domain.Product{}
	}
	return out
}

func (r *Repository) ReplaceProducts(ctx context.Context, products []domain.Product) error {
	return r.write(ctx, store.KeyProducts, products)
}

func (r *Repository) Orders(ctx context.Context) []domain.Order {
	var out []domain.Order
	if !r.read(ctx, store.KeyOrders, &out) || out == nil {
		return []domain.Order{}
	}
	return out
}

func (r *Repository) ReplaceOrders(ctx context.Context, orders []domain.Order) error {
	return r.write(ctx, store.KeyOrders, orders)
}

func (r *Repository) Recipes(ctx context.Context) []domain.Recipe {
	var out []domain.Recipe
	if !r.read(ctx, store.KeyRecipes, &out) {
		return domain.DefaultRecipes()
	}
	if out == nil {
		out = []domain.Recipe{}
	}
	return out
}

func (r *Repository) ReplaceRecipes(ctx context.Context, recipes []domain.Recipe) error {
	return r.write(ctx, store.KeyRecipes, recipes)
}

func (r *Repository) Content(ctx context.Context) domain.SiteContent {
	var out domain.SiteContent
	if !r.read(ctx, store.KeyContent, &out) {
		return domain.DefaultContent()
	}
	return out
}

func (r *Repository) ReplaceContent(ctx context.Context, content domain.SiteContent) error {
	return r.write(ctx, store.KeyContent, content)
}
