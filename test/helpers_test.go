package test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	clubadmin "github.com/easyvoley/clubadmin"
	"github.com/easyvoley/clubadmin/session"
)

const (
	adminEmail    = "admin@club.test"
	adminPassword = "admin123"
)

// clubAPI is an in-memory stand-in for the club back-office API: bearer
// auth, the real wire shapes, and enough resource state for end-to-end
// flows. Tokens can be revoked to simulate server-side expiry.
type clubAPI struct {
	mu      sync.Mutex
	mux     *http.ServeMux
	tokens  map[string]bool
	players map[string]map[string]any
	nextID  int
}

func newClubAPI() *clubAPI {
	api := &clubAPI{
		tokens:  make(map[string]bool),
		players: make(map[string]map[string]any),
		nextID:  1,
	}

	adminUser := map[string]string{
		"id": "u1", "name": "Admin", "email": adminEmail, "role": "administrador",
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil ||
			body.Email != adminEmail || body.Password != adminPassword {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"msg": "Credenciales inválidas"})
			return
		}
		api.mu.Lock()
		token := "token-" + strconv.Itoa(api.nextID)
		api.nextID++
		api.tokens[token] = true
		api.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]any{"token": token, "user": adminUser})
	})
	mux.HandleFunc("GET /users/me", api.authed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, adminUser)
	}))
	mux.HandleFunc("GET /players", api.authed(func(w http.ResponseWriter, r *http.Request) {
		api.mu.Lock()
		out := make([]map[string]any, 0, len(api.players))
		for _, p := range api.players {
			out = append(out, p)
		}
		api.mu.Unlock()
		writeJSON(w, http.StatusOK, out)
	}))
	mux.HandleFunc("POST /players", api.authed(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"msg": "Datos inválidos"})
			return
		}
		api.mu.Lock()
		id := "p" + strconv.Itoa(api.nextID)
		api.nextID++
		req["_id"] = id
		req["fullName"] = fmt.Sprintf("%v %v", req["firstName"], req["lastName"])
		api.players[id] = req
		api.mu.Unlock()
		writeJSON(w, http.StatusCreated, req)
	}))
	mux.HandleFunc("DELETE /players/{id}", api.authed(func(w http.ResponseWriter, r *http.Request) {
		api.mu.Lock()
		defer api.mu.Unlock()
		id := r.PathValue("id")
		if _, ok := api.players[id]; !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"msg": "Jugador no encontrado"})
			return
		}
		delete(api.players, id)
		w.WriteHeader(http.StatusNoContent)
	}))

	api.mux = mux
	return api
}

func (a *clubAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.mux.ServeHTTP(w, r)
}

func (a *clubAPI) authed(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const bearer = "Bearer "
		auth := r.Header.Get("Authorization")
		a.mu.Lock()
		valid := len(auth) > len(bearer) && a.tokens[auth[len(bearer):]]
		a.mu.Unlock()
		if !valid {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"msg": "Token no válido"})
			return
		}
		next(w, r)
	}
}

// revokeAll invalidates every issued token, so the next authenticated
// request answers 401.
func (a *clubAPI) revokeAll() {
	a.mu.Lock()
	defer a.mu.Unlock()
	for token := range a.tokens {
		delete(a.tokens, token)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func newIntegrationClient(t *testing.T, api *clubAPI, storage session.Storage, opts ...func(*clubadmin.Builder)) *clubadmin.Client {
	t.Helper()

	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	b := clubadmin.New().
		WithBaseURL(srv.URL).
		WithHTTPClient(srv.Client()).
		WithMetricsEnabled(true)
	if storage != nil {
		b.WithStorage(storage)
	}
	for _, opt := range opts {
		opt(b)
	}

	client, err := b.Build()
	require.NoError(t, err, "build client")
	t.Cleanup(client.Close)
	return client
}
