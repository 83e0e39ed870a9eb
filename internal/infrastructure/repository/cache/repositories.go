package cache

import (
	"context"
	"strconv"

	"github.com/footlink/transfer-market/internal/domain/lookup"
	basecache "github.com/footlink/transfer-market/internal/platform/cache"
)

// LookupRegistry caches the static reference tables in front of the
// database-backed registry. Rows only change via seed migrations, so a
// TTL cache with singleflight loading is safe here.
type LookupRegistry struct {
	next  lookup.Registry
	cache *basecache.Store
}

func NewLookupRegistry(next lookup.Registry, cache *basecache.Store) *LookupRegistry {
	return &LookupRegistry{next: next, cache: cache}
}

func (r *LookupRegistry) Positions(ctx context.Context) ([]lookup.Position, error) {
	v, err := r.cache.GetOrLoad(ctx, "lookup:positions", func(ctx context.Context) (any, error) {
		items, err := r.next.Positions(ctx)
		if err != nil {
			return nil, err
		}
		return append([]lookup.Position(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]lookup.Position)
	return append([]lookup.Position(nil), items...), nil
}

func (r *LookupRegistry) PositionByID(ctx context.Context, id int) (lookup.Position, bool, error) {
	key := "lookup:position:" + strconv.Itoa(id)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.PositionByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return cachedPosition{value: item, exists: exists}, nil
	})
	if err != nil {
		return lookup.Position{}, false, err
	}

	cached, _ := v.(cachedPosition)
	return cached.value, cached.exists, nil
}

type cachedPosition struct {
	value  lookup.Position
	exists bool
}

func (r *LookupRegistry) Feet(ctx context.Context) ([]lookup.Foot, error) {
	v, err := r.cache.GetOrLoad(ctx, "lookup:feet", func(ctx context.Context) (any, error) {
		items, err := r.next.Feet(ctx)
		if err != nil {
			return nil, err
		}
		return append([]lookup.Foot(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]lookup.Foot)
	return append([]lookup.Foot(nil), items...), nil
}

func (r *LookupRegistry) FootByID(ctx context.Context, id int) (lookup.Foot, bool, error) {
	key := "lookup:foot:" + strconv.Itoa(id)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.FootByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return cachedFoot{value: item, exists: exists}, nil
	})
	if err != nil {
		return lookup.Foot{}, false, err
	}

	cached, _ := v.(cachedFoot)
	return cached.value, cached.exists, nil
}

type cachedFoot struct {
	value  lookup.Foot
	exists bool
}

func (r *LookupRegistry) StatusIDByName(ctx context.Context, name string) (int, bool, error) {
	key := "lookup:status:name:" + name
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		id, exists, err := r.next.StatusIDByName(ctx, name)
		if err != nil {
			return nil, err
		}
		return cachedStatusID{value: id, exists: exists}, nil
	})
	if err != nil {
		return 0, false, err
	}

	cached, _ := v.(cachedStatusID)
	return cached.value, cached.exists, nil
}

type cachedStatusID struct {
	value  int
	exists bool
}

func (r *LookupRegistry) StatusNameByID(ctx context.Context, id int) (string, bool, error) {
	key := "lookup:status:id:" + strconv.Itoa(id)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		name, exists, err := r.next.StatusNameByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return cachedStatusName{value: name, exists: exists}, nil
	})
	if err != nil {
		return "", false, err
	}

	cached, _ := v.(cachedStatusName)
	return cached.value, cached.exists, nil
}

type cachedStatusName struct {
	value  string
	exists bool
}
