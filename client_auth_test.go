package clubadmin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/easyvoley/clubadmin/session"
)

const loginBody = `{"token":"tok-login","user":{"id":"u1","name":"Ana","email":"ana@club.test","role":"administrador"}}`

func authStub(t *testing.T) http.Handler {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode login body: %v", err)
		}
		if req.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"msg":"Credenciales inválidas"}`))
			return
		}
		_, _ = w.Write([]byte(loginBody))
	})
	mux.HandleFunc("POST /auth/register", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(loginBody))
	})
	mux.HandleFunc("GET /users/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-login" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"msg":"Token no válido"}`))
			return
		}
		_, _ = w.Write([]byte(`{"id":"u1","name":"Ana","email":"ana@club.test","role":"administrador"}`))
	})
	return mux
}

func TestLoginEstablishesSession(t *testing.T) {
	c := newTestClient(t, authStub(t))

	if err := c.Login(context.Background(), "ana@club.test", "secret"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	if c.Session().State() != session.StateAuthenticated {
		t.Fatalf("state = %v", c.Session().State())
	}
	if c.Session().Token() != "tok-login" {
		t.Errorf("token = %q", c.Session().Token())
	}

	user, ok := c.CurrentUser()
	if !ok {
		t.Fatal("CurrentUser returned false")
	}
	if user.Role != RoleAdministrator {
		t.Errorf("role = %v, want RoleAdministrator", user.Role)
	}
	if !c.Can("users.view") || !c.Can("configuration.edit") {
		t.Error("administrator permissions missing")
	}
	if got := c.Metrics().Value(MetricLoginSuccess); got != 1 {
		t.Errorf("login success counter = %d", got)
	}
}

func TestLoginRejectedCredentials(t *testing.T) {
	c := newTestClient(t, authStub(t))

	err := c.Login(context.Background(), "ana@club.test", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("got %v, want ErrInvalidCredentials", err)
	}
	if c.Session().State() != session.StateUnauthenticated {
		t.Errorf("state = %v, login failure must not touch the session", c.Session().State())
	}
	if got := c.Metrics().Value(MetricLoginFailure); got != 1 {
		t.Errorf("login failure counter = %d", got)
	}
	if got := c.Metrics().Value(MetricForcedLogout); got != 0 {
		t.Errorf("forced logout counter = %d, a login 401 is not an expiry", got)
	}
}

func TestLoginEmptyInput(t *testing.T) {
	c := newTestClient(t, authStub(t))

	if err := c.Login(context.Background(), "", "secret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("empty email: got %v", err)
	}
	if err := c.Login(context.Background(), "ana@club.test", ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("empty password: got %v", err)
	}
}

func TestRegisterEstablishesSession(t *testing.T) {
	c := newTestClient(t, authStub(t))

	if err := c.Register(context.Background(), "Ana", "ana@club.test", "secret"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if c.Session().State() != session.StateAuthenticated {
		t.Errorf("state = %v", c.Session().State())
	}
}

func TestLogout(t *testing.T) {
	c := newTestClient(t, authStub(t))

	if err := c.Login(context.Background(), "ana@club.test", "secret"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := c.Logout(context.Background()); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if c.Session().State() != session.StateUnauthenticated {
		t.Errorf("state = %v", c.Session().State())
	}
	if got := c.Metrics().Value(MetricLogout); got != 1 {
		t.Errorf("logout counter = %d", got)
	}

	// Logging out twice is a no-op, not an error.
	if err := c.Logout(context.Background()); err != nil {
		t.Fatalf("second Logout: %v", err)
	}
	if got := c.Metrics().Value(MetricLogout); got != 1 {
		t.Errorf("logout counter after no-op = %d", got)
	}
}

func TestRestoreRoundTrip(t *testing.T) {
	storage := session.NewMemoryStorage()
	stub := authStub(t)

	first := newTestClient(t, stub, func(b *Builder) { b.WithStorage(storage) })
	if err := first.Login(context.Background(), "ana@club.test", "secret"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	// A fresh client over the same storage picks the session back up.
	second := newTestClient(t, stub, func(b *Builder) { b.WithStorage(storage) })
	if err := second.Restore(context.Background()); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	if second.Session().State() != session.StateAuthenticated {
		t.Fatalf("state = %v", second.Session().State())
	}
	user, ok := second.CurrentUser()
	if !ok || user.Email != "ana@club.test" || user.Role != RoleAdministrator {
		t.Errorf("restored user = %+v ok=%v", user, ok)
	}
	if got := second.Metrics().Value(MetricRestoreSuccess); got != 1 {
		t.Errorf("restore success counter = %d", got)
	}
}

func TestRestoreNoStoredSession(t *testing.T) {
	c := newTestClient(t, authStub(t))

	err := c.Restore(context.Background())
	if !errors.Is(err, ErrNoStoredSession) {
		t.Fatalf("got %v, want ErrNoStoredSession", err)
	}
	if c.Session().State() != session.StateUnauthenticated {
		t.Errorf("state = %v", c.Session().State())
	}
}

func TestRestoreRejectedByServer(t *testing.T) {
	storage := session.NewMemoryStorage()
	if err := storage.Write(context.Background(), "tok-stale", encodeTestIdentity(t)); err != nil {
		t.Fatalf("seed storage: %v", err)
	}

	hookCalls := 0
	c := newTestClient(t, authStub(t), func(b *Builder) {
		b.WithStorage(storage).WithOnSessionExpired(func() { hookCalls++ })
	})

	err := c.Restore(context.Background())
	if !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("got %v, want ErrSessionExpired", err)
	}
	if c.Session().State() != session.StateUnauthenticated {
		t.Errorf("state = %v", c.Session().State())
	}
	if hookCalls != 1 {
		t.Errorf("hook fired %d times, want 1", hookCalls)
	}
	if _, _, err := storage.Read(context.Background()); !errors.Is(err, session.ErrNoSession) {
		t.Errorf("storage not cleared: %v", err)
	}
}

func TestRestoreExpiredTokenPreCheck(t *testing.T) {
	expired := signedTestToken(t, time.Now().Add(-time.Hour))

	storage := session.NewMemoryStorage()
	if err := storage.Write(context.Background(), expired, encodeTestIdentity(t)); err != nil {
		t.Fatalf("seed storage: %v", err)
	}

	// The server would answer, but the pre-check must short-circuit first.
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	t.Cleanup(srv.Close)

	c, err := New().
		WithBaseURL(srv.URL).
		WithStorage(storage).
		WithMetricsEnabled(true).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	t.Cleanup(c.Close)

	err = c.Restore(context.Background())
	if !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("got %v, want ErrSessionExpired", err)
	}
	if calls != 0 {
		t.Errorf("server reached %d times, pre-check should have skipped the round trip", calls)
	}
	if c.Session().State() != session.StateUnauthenticated {
		t.Errorf("state = %v", c.Session().State())
	}
	if got := c.Metrics().Value(MetricRestoreFailure); got != 1 {
		t.Errorf("restore failure counter = %d", got)
	}
}

func TestRestoreOpaqueTokenGoesRemote(t *testing.T) {
	storage := session.NewMemoryStorage()
	if err := storage.Write(context.Background(), "tok-login", encodeTestIdentity(t)); err != nil {
		t.Fatalf("seed storage: %v", err)
	}

	c := newTestClient(t, authStub(t), func(b *Builder) { b.WithStorage(storage) })
	if err := c.Restore(context.Background()); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if c.Session().State() != session.StateAuthenticated {
		t.Errorf("state = %v", c.Session().State())
	}
}

func encodeTestIdentity(t *testing.T) []byte {
	t.Helper()
	blob, err := session.Encode(&session.Identity{
		ID: "u1", Name: "Ana", Email: "ana@club.test", Role: "administrator",
	})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	return blob
}

func signedTestToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
	signed, err := tok.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}
