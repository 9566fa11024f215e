package catalogsvc

import (
	"context"
	"errors"

	"booklending/model"
)

type Repo interface {
	List(ctx context.Context, limit int64) ([]model.Book, error)
	ByID(ctx context.Context, id int64) (*model.Book, error)
}

type Service interface {
	List(ctx context.Context, limit int64) ([]model.Book, error)
	Detail(ctx context.Context, id int64) (*model.Book, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) List(ctx context.Context, limit int64) ([]model.Book, error) {
	if limit <= 0 {
		return nil, errors.New("limit must be > 0")
	}
	return s.r.List(ctx, limit)
}

// Detail returns nil, nil for an unknown id; absence is not an error.
func (s *service) Detail(ctx context.Context, id int64) (*model.Book, error) {
	return s.r.ByID(ctx, id)
}
