package auth

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"booklending/model"
	identitysvc "booklending/service/identity"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type svcMock struct {
	signupFn func(ctx context.Context, req model.SignupReq) (*model.User, error)
	loginFn  func(ctx context.Context, req model.LoginReq) (*model.User, string, error)
	byIDFn   func(ctx context.Context, id int64) (*model.User, error)
}

var _ identitysvc.Service = (*svcMock)(nil)

func (m *svcMock) Signup(ctx context.Context, req model.SignupReq) (*model.User, error) {
	return m.signupFn(ctx, req)
}
func (m *svcMock) Login(ctx context.Context, req model.LoginReq) (*model.User, string, error) {
	return m.loginFn(ctx, req)
}
func (m *svcMock) ByID(ctx context.Context, id int64) (*model.User, error) {
	return m.byIDFn(ctx, id)
}

func newController(s identitysvc.Service) *Controller {
	return &Controller{
		Svc: s,
		V:   validator.New(),
		Log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func postJSON(e *echo.Echo, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSignup_Created(t *testing.T) {
	ct := newController(&svcMock{
		signupFn: func(ctx context.Context, req model.SignupReq) (*model.User, error) {
			return &model.User{ID: 1, Name: req.Name, Email: req.Email}, nil
		},
	})

	e := echo.New()
	c, rec := postJSON(e, "/v1/users/signup",
		`{"name":"Ada","email":"a@x.com","password":"supersecret"}`)

	require.NoError(t, ct.Signup(c))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Contains(t, rec.Body.String(), `"a@x.com"`)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	ct := newController(&svcMock{
		signupFn: func(ctx context.Context, req model.SignupReq) (*model.User, error) {
			return nil, identitysvc.Err(identitysvc.ErrEmailTaken)
		},
	})

	e := echo.New()
	c, _ := postJSON(e, "/v1/users/signup",
		`{"name":"Ada","email":"a@x.com","password":"supersecret"}`)

	err := ct.Signup(c)
	require.Error(t, err)
	he := &echo.HTTPError{}
	require.ErrorAs(t, err, &he)
	require.Equal(t, http.StatusConflict, he.Code)
}

func TestSignup_InvalidBody(t *testing.T) {
	ct := newController(&svcMock{})

	e := echo.New()
	c, _ := postJSON(e, "/v1/users/signup", `{"email":"not-an-email"}`)

	err := ct.Signup(c)
	require.Error(t, err)
	he := &echo.HTTPError{}
	require.ErrorAs(t, err, &he)
	require.Equal(t, http.StatusBadRequest, he.Code)
}

func TestLogin_OK(t *testing.T) {
	ct := newController(&svcMock{
		loginFn: func(ctx context.Context, req model.LoginReq) (*model.User, string, error) {
			return &model.User{ID: 1, Email: req.Email}, "tok123", nil
		},
	})

	e := echo.New()
	c, rec := postJSON(e, "/v1/users/login",
		`{"email":"a@x.com","password":"supersecret"}`)

	require.NoError(t, ct.Login(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "tok123")
}

func TestLogin_Unauthorized(t *testing.T) {
	ct := newController(&svcMock{
		loginFn: func(ctx context.Context, req model.LoginReq) (*model.User, string, error) {
			return nil, "", identitysvc.Err(identitysvc.ErrInvalidCreds)
		},
	})

	e := echo.New()
	c, _ := postJSON(e, "/v1/users/login",
		`{"email":"a@x.com","password":"wrong"}`)

	err := ct.Login(c)
	require.Error(t, err)
	he := &echo.HTTPError{}
	require.ErrorAs(t, err, &he)
	require.Equal(t, http.StatusUnauthorized, he.Code)
}
