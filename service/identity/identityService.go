package identity

import (
	"context"
	"errors"
	"strings"

	"booklending/model"
	userrepo "booklending/repository/user"
	"booklending/util/hash"
	jwtutil "booklending/util/jwt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// errors used by controllers

type ErrCode string

const (
	ErrEmailTaken   ErrCode = "EMAIL_TAKEN"
	ErrInvalidCreds ErrCode = "INVALID_CREDS"
	ErrBadInput     ErrCode = "BAD_INPUT"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }

// Err builds a coded error for the given code.
func Err(c ErrCode) error { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

type Service interface {
	// Signup creates a member; duplicate email is detected through
	// the store's unique constraint, never a pre-check.
	Signup(ctx context.Context, req model.SignupReq) (*model.User, error)

	// Login verifies email+password and returns the member with a
	// signed session token. Unknown email and wrong password are
	// indistinguishable to the caller.
	Login(ctx context.Context, req model.LoginReq) (*model.User, string, error)

	// ByID returns nil, nil when the id has no matching member.
	ByID(ctx context.Context, id int64) (*model.User, error)
}

type service struct {
	ur     userrepo.Repo
	secret string
}

func New(ur userrepo.Repo, secret string) Service { return &service{ur: ur, secret: secret} }

func (s *service) Signup(ctx context.Context, req model.SignupReq) (*model.User, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" || email == "" || len(req.Password) < 6 {
		return nil, Err(ErrBadInput)
	}

	hashed, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		Name:         name,
		Email:        email,
		Address:      req.Address,
		PasswordHash: hashed,
	}

	if err := s.ur.Create(ctx, u); err != nil {
		if isUniqueViolation(err) {
			return nil, Err(ErrEmailTaken)
		}
		return nil, err
	}
	return u, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func (s *service) Login(ctx context.Context, req model.LoginReq) (*model.User, string, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return nil, "", Err(ErrBadInput)
	}

	u, err := s.ur.ByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if u == nil || !hash.Check(u.PasswordHash, req.Password) {
		return nil, "", Err(ErrInvalidCreds)
	}

	token, err := jwtutil.Issue(s.secret, u.ID, 24)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *service) ByID(ctx context.Context, id int64) (*model.User, error) {
	return s.ur.ByID(ctx, id)
}
