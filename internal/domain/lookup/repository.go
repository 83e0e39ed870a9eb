package lookup

import "context"

// Registry exposes the static reference tables. Implementations are
// read-mostly; the cache decorator wraps them for hot lookups.
type Registry interface {
	Positions(ctx context.Context) ([]Position, error)
	PositionByID(ctx context.Context, id int) (Position, bool, error)
	Feet(ctx context.Context) ([]Foot, error)
	FootByID(ctx context.Context, id int) (Foot, bool, error)
	StatusIDByName(ctx context.Context, name string) (int, bool, error)
	StatusNameByID(ctx context.Context, id int) (string, bool, error)
}
