package loan

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"booklending/app/echoServer/jwtx"
	identitysvc "booklending/service/identity"
	ledgersvc "booklending/service/ledger"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc      ledgersvc.Service
	Identity identitysvc.Service
	Log      *slog.Logger
}

// POST /v1/books/:id/loan
func (h *Controller) Checkout(c echo.Context) error {
	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}

	bookID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || bookID <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid book id"})
	}

	// Token may outlive the member row; confirm before touching the ledger.
	u, err := h.Identity.ByID(c.Request().Context(), uid)
	if err != nil {
		h.Log.Error("member lookup failed", "err", err, "user_id", uid)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if u == nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unknown member"})
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	loanID, err := h.Svc.Checkout(c.Request().Context(), uid, bookID, today)
	if err != nil {
		switch ledgersvc.Code(err) {
		case ledgersvc.ErrBookNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "book not found"})
		case ledgersvc.ErrUserNotFound:
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unknown member"})
		default:
			h.Log.Error("checkout failed", "err", err, "user_id", uid, "book_id", bookID)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"loan_id":  loanID,
		"due_date": ledgersvc.DueDate(today).Format("2006-01-02"),
	})
}

// GET /v1/loans
func (h *Controller) MyLoans(c echo.Context) error {
	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}

	rows, err := h.Svc.ListForUser(c.Request().Context(), uid)
	if err != nil {
		h.Log.Error("loan list error", "err", err, "user_id", uid)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}
