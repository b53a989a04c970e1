package breeding

import "context"

type Repository interface {
	Create(ctx context.Context, e Event) error
	GetByID(ctx context.Context, id string) (Event, error)
	ListByBreeder(ctx context.Context, breederID string, filter ListFilter) ([]Event, error)
}

type ListFilter struct {
	Skip  int
	Limit int
}
