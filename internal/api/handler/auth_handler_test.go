package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/userhub/account-api/internal/api/middleware"
	"github.com/userhub/account-api/internal/core/domain"
	"github.com/userhub/account-api/internal/core/ports"
)

type stubSessionService struct {
	registerFn     func(ctx context.Context, in ports.RegisterInput) (*domain.Account, error)
	loginFn        func(ctx context.Context, in ports.LoginInput) (*domain.Account, *domain.SessionToken, error)
	logoutFn       func(ctx context.Context, plaintext string) error
	authenticateFn func(ctx context.Context, plaintext string) (*domain.Account, error)
}

func (s *stubSessionService) Register(ctx context.Context, in ports.RegisterInput) (*domain.Account, error) {
	return s.registerFn(ctx, in)
}

func (s *stubSessionService) Login(ctx context.Context, in ports.LoginInput) (*domain.Account, *domain.SessionToken, error) {
	return s.loginFn(ctx, in)
}

func (s *stubSessionService) Logout(ctx context.Context, plaintext string) error {
	return s.logoutFn(ctx, plaintext)
}

func (s *stubSessionService) Authenticate(ctx context.Context, plaintext string) (*domain.Account, error) {
	return s.authenticateFn(ctx, plaintext)
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := echo.New()
	stub := &stubSessionService{
		registerFn: func(_ context.Context, in ports.RegisterInput) (*domain.Account, error) {
			if in.Name != "Alice" || in.Email != "alice@example.com" || in.Password != "correcthorse" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Account{ID: "1", Name: in.Name, Email: in.Email, PasswordHash: "bcrypt-digest"}, nil
		},
	}
	h := NewAuthHandler(stub)

	body := strings.NewReader(`{"name":"Alice","email":"alice@example.com","password":"correcthorse"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data envelope, got %v", resp)
	}
	if data["name"] != "Alice" || data["email"] != "alice@example.com" {
		t.Fatalf("unexpected account payload: %+v", data)
	}
	// The hash must never be serialized, under any key.
	if strings.Contains(rec.Body.String(), "bcrypt-digest") || strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("password material leaked: %s", rec.Body.String())
	}
}

func TestAuthHandler_Register_PropagatesValidationError(t *testing.T) {
	e := echo.New()
	verr := domain.NewValidationError()
	verr.Add("email", "The email field is required.")
	stub := &stubSessionService{
		registerFn: func(context.Context, ports.RegisterInput) (*domain.Account, error) {
			return nil, verr
		},
	}
	h := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Register(c)
	var got *domain.ValidationError
	if !errors.As(err, &got) {
		t.Fatalf("expected ValidationError to propagate, got %v", err)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	e := echo.New()
	stub := &stubSessionService{
		registerFn: func(context.Context, ports.RegisterInput) (*domain.Account, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader("not-json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = h.Register(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := echo.New()
	stub := &stubSessionService{
		loginFn: func(_ context.Context, in ports.LoginInput) (*domain.Account, *domain.SessionToken, error) {
			if in.Email != "alice@example.com" || in.Password != "correcthorse" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Account{ID: "1", Name: "Alice", Email: in.Email},
				&domain.SessionToken{Plaintext: "tok-123", AccountID: "1"}, nil
		},
	}
	h := NewAuthHandler(stub)

	body := strings.NewReader(`{"email":"alice@example.com","password":"correcthorse"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["status_code"] != float64(200) {
		t.Fatalf("expected status_code 200, got %v", resp["status_code"])
	}
	if resp["access_token"] != "tok-123" {
		t.Fatalf("expected access_token, got %v", resp["access_token"])
	}
	if resp["token_type"] != "Bearer" {
		t.Fatalf("expected Bearer token_type, got %v", resp["token_type"])
	}
	data, ok := resp["data"].(map[string]any)
	if !ok || data["email"] != "alice@example.com" {
		t.Fatalf("unexpected account payload: %+v", resp["data"])
	}
}

func TestAuthHandler_Login_PropagatesUnauthenticated(t *testing.T) {
	e := echo.New()
	stub := &stubSessionService{
		loginFn: func(context.Context, ports.LoginInput) (*domain.Account, *domain.SessionToken, error) {
			return nil, nil, domain.ErrUnauthenticated
		},
	}
	h := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"email":"a@b.co","password":"x"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated to propagate, got %v", err)
	}
}

func TestAuthHandler_Logout_Success(t *testing.T) {
	e := echo.New()
	revoked := ""
	stub := &stubSessionService{
		logoutFn: func(_ context.Context, plaintext string) error {
			revoked = plaintext
			return nil
		},
	}
	h := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.CtxAccountKey, &domain.Account{ID: "1"})
	c.Set(middleware.CtxTokenKey, "tok-123")

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if revoked != "tok-123" {
		t.Fatalf("expected presented token to be revoked, got %q", revoked)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Logged out successfully" {
		t.Fatalf("unexpected message: %q", resp["message"])
	}
}

func TestAuthHandler_Logout_NoContextToken(t *testing.T) {
	e := echo.New()
	stub := &stubSessionService{
		logoutFn: func(context.Context, string) error {
			t.Fatalf("should not be called")
			return nil
		},
	}
	h := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Logout(c); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestAuthHandler_Profile(t *testing.T) {
	e := echo.New()
	h := NewAuthHandler(&stubSessionService{})

	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.CtxAccountKey, &domain.Account{
		ID: "1", Name: "Alice", Email: "alice@example.com", PasswordHash: "bcrypt-digest",
	})

	if err := h.Profile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "1" || resp["name"] != "Alice" || resp["email"] != "alice@example.com" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if strings.Contains(rec.Body.String(), "bcrypt-digest") {
		t.Fatalf("password hash leaked: %s", rec.Body.String())
	}
}
