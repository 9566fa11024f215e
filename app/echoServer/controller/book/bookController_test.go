package book

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"booklending/model"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type svcMock struct {
	listFn   func(ctx context.Context, limit int64) ([]model.Book, error)
	detailFn func(ctx context.Context, id int64) (*model.Book, error)
}

func (m *svcMock) List(ctx context.Context, limit int64) ([]model.Book, error) {
	return m.listFn(ctx, limit)
}
func (m *svcMock) Detail(ctx context.Context, id int64) (*model.Book, error) {
	return m.detailFn(ctx, id)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestList_DefaultLimit(t *testing.T) {
	h := &Controller{
		Svc: &svcMock{
			listFn: func(ctx context.Context, limit int64) ([]model.Book, error) {
				require.Equal(t, int64(defaultListLimit), limit)
				return []model.Book{{ID: 1, Title: "Atomic Habits", Location: "Shelf A1"}}, nil
			},
		},
		Log: testLogger(),
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/books", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.List(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Atomic Habits")
}

func TestList_InvalidLimit(t *testing.T) {
	h := &Controller{Svc: &svcMock{}, Log: testLogger()}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/books?limit=0", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.List(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDetail_NotFound(t *testing.T) {
	h := &Controller{
		Svc: &svcMock{
			detailFn: func(ctx context.Context, id int64) (*model.Book, error) { return nil, nil },
		},
		Log: testLogger(),
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/books/999", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/books/:id")
	c.SetParamNames("id")
	c.SetParamValues("999")

	require.NoError(t, h.Detail(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDetail_InvalidID(t *testing.T) {
	h := &Controller{Svc: &svcMock{}, Log: testLogger()}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/books/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/books/:id")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, h.Detail(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
