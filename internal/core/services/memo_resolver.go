package services

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/erp_fx_service/internal/core/domain"
	portssvc "github.com/SscSPs/erp_fx_service/internal/core/ports/services"
	"golang.org/x/sync/singleflight"
)

// memoResolver caches resolutions for the lifetime of one projection so every line in a
// document sees the same rate for a pair, and concurrent lines share one store lookup.
type memoResolver struct {
	next  portssvc.RateResolverSvc
	group singleflight.Group

	mu    sync.Mutex
	cache map[string]memoEntry
}

type memoEntry struct {
	resolution *domain.RateResolution
	err        error
}

func newMemoResolver(next portssvc.RateResolverSvc) *memoResolver {
	return &memoResolver{
		next:  next,
		cache: make(map[string]memoEntry),
	}
}

var _ portssvc.RateResolverSvc = (*memoResolver)(nil)

func (m *memoResolver) ResolveRate(ctx context.Context, fromCode, toCode string, asOf *time.Time) (*domain.RateResolution, error) {
	key := memoKey(fromCode, toCode, asOf)

	m.mu.Lock()
	entry, ok := m.cache[key]
	m.mu.Unlock()
	if ok {
		return entry.copyResolution(), entry.err
	}

	v, _, _ := m.group.Do(key, func() (any, error) {
		m.mu.Lock()
		cached, ok := m.cache[key]
		m.mu.Unlock()
		if ok {
			return cached, nil
		}
		resolution, err := m.next.ResolveRate(ctx, fromCode, toCode, asOf)
		e := memoEntry{resolution: resolution, err: err}
		m.mu.Lock()
		m.cache[key] = e
		m.mu.Unlock()
		return e, nil
	})
	entry = v.(memoEntry)
	return entry.copyResolution(), entry.err
}

func (e memoEntry) copyResolution() *domain.RateResolution {
	if e.resolution == nil {
		return nil
	}
	r := *e.resolution
	return &r
}

func memoKey(fromCode, toCode string, asOf *time.Time) string {
	at := "now"
	if asOf != nil {
		at = asOf.UTC().Format(time.RFC3339Nano)
	}
	return fromCode + "/" + toCode + "@" + at
}
