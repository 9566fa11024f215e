// service/catalog/catalog_service_test.go
package catalogsvc_test

import (
	"context"
	"testing"

	"booklending/model"
	catalogsvc "booklending/service/catalog"
)

type repoMock struct {
	listFn func(ctx context.Context, limit int64) ([]model.Book, error)
	byIDFn func(ctx context.Context, id int64) (*model.Book, error)
}

func (m *repoMock) List(ctx context.Context, limit int64) ([]model.Book, error) {
	return m.listFn(ctx, limit)
}
func (m *repoMock) ByID(ctx context.Context, id int64) (*model.Book, error) {
	return m.byIDFn(ctx, id)
}

func TestList_LimitValidation(t *testing.T) {
	called := false
	s := catalogsvc.New(&repoMock{
		listFn: func(ctx context.Context, limit int64) ([]model.Book, error) {
			called = true
			return nil, nil
		},
	})
	if _, err := s.List(context.Background(), 0); err == nil {
		t.Fatal("expected error for limit 0")
	}
	if _, err := s.List(context.Background(), -5); err == nil {
		t.Fatal("expected error for negative limit")
	}
	if called {
		t.Fatal("repo must not be reached with an invalid limit")
	}
}

func TestList_PassesLimitThrough(t *testing.T) {
	m := &repoMock{
		listFn: func(ctx context.Context, limit int64) ([]model.Book, error) {
			if limit != 3 {
				t.Fatalf("got limit=%d; want 3", limit)
			}
			return []model.Book{{ID: 1, Title: "Atomic Habits", Location: "Shelf A1"}}, nil
		},
	}
	s := catalogsvc.New(m)
	rows, err := s.List(context.Background(), 3)
	if err != nil || len(rows) != 1 {
		t.Fatalf("got rows=%v err=%v; want one row, nil", rows, err)
	}
}

func TestDetail_Absent(t *testing.T) {
	m := &repoMock{
		byIDFn: func(ctx context.Context, id int64) (*model.Book, error) { return nil, nil },
	}
	s := catalogsvc.New(m)
	row, err := s.Detail(context.Background(), 99)
	if err != nil {
		t.Fatalf("Detail error: %v", err)
	}
	if row != nil {
		t.Fatalf("got %v; want nil for a missing id", row)
	}
}
