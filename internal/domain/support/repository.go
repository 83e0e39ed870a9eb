package support

import "context"

type Repository interface {
	GetByID(ctx context.Context, id int64) (Problem, bool, error)
	ListByRequester(ctx context.Context, requesterID string) ([]Problem, error)
	Create(ctx context.Context, p *Problem) error
	MarkSolved(ctx context.Context, id int64) (bool, error)
}
