package book

import (
	"log/slog"
	"net/http"
	"strconv"

	catalogsvc "booklending/service/catalog"

	"github.com/labstack/echo/v4"
)

const defaultListLimit = 50

type Controller struct {
	Svc catalogsvc.Service
	Log *slog.Logger
}

// GET /v1/books?limit=N
func (h *Controller) List(c echo.Context) error {
	limit := int64(defaultListLimit)
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid limit"})
		}
		limit = n
	}

	rows, err := h.Svc.List(c.Request().Context(), limit)
	if err != nil {
		h.Log.Error("book list error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /v1/books/:id
func (h *Controller) Detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	row, err := h.Svc.Detail(c.Request().Context(), id)
	if err != nil {
		h.Log.Error("book detail error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if row == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": row})
}
