// Command clubadmin-smoke runs a login / read / logout pass against a club
// API and prints per-step timings. With no -api-url it starts an in-process
// stub API, so the binary doubles as a wiring check for the client itself.
//
// The session is persisted in Redis; without -redis-addr (or REDIS_ADDR) a
// miniredis instance is started, so no external service is needed.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	clubadmin "github.com/easyvoley/clubadmin"
)

func main() {
	var (
		apiURL    = flag.String("api-url", "", "club API base URL; if empty, an in-process stub is used")
		email     = flag.String("email", "admin@club.test", "login email")
		password  = flag.String("password", "admin123", "login password")
		redisAddr = flag.String("redis-addr", "", "redis address; if empty, REDIS_ADDR env or miniredis is used")
		prefix    = flag.String("prefix", "clubadmin-smoke", "redis session key prefix")
		verbose   = flag.Bool("v", false, "log every request")
	)
	flag.Parse()

	ctx := context.Background()

	baseURL := *apiURL
	if baseURL == "" {
		srv := httptest.NewServer(stubAPI(*email, *password))
		defer srv.Close()
		baseURL = srv.URL
		fmt.Printf("using in-process stub API at %s\n", baseURL)
	}

	addr := *redisAddr
	if addr == "" {
		addr = os.Getenv("REDIS_ADDR")
	}

	var cleanup func()
	var rdb redis.UniversalClient
	if addr == "" {
		mr, err := miniredis.Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to start miniredis: %v\n", err)
			os.Exit(1)
		}
		rdb = redis.NewUniversalClient(&redis.UniversalOptions{Addrs: []string{mr.Addr()}})
		cleanup = func() {
			_ = rdb.Close()
			mr.Close()
		}
		fmt.Printf("using miniredis at %s\n", mr.Addr())
	} else {
		rdb = redis.NewUniversalClient(&redis.UniversalOptions{Addrs: []string{addr}})
		cleanup = func() { _ = rdb.Close() }
		fmt.Printf("using redis at %s\n", addr)
	}
	defer cleanup()

	cfg := clubadmin.DefaultConfig()
	cfg.API.BaseURL = baseURL
	cfg.Session.Backend = clubadmin.BackendRedis
	cfg.Session.RedisPrefix = *prefix
	cfg.Metrics.Enabled = true
	cfg.Metrics.EnableLatencyHistograms = true

	logger := logrus.New()
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	client, err := clubadmin.New().
		WithConfig(cfg).
		WithRedis(rdb).
		WithLogger(logger).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "build client: %v\n", err)
		os.Exit(1)
	}
	defer client.Close()

	step("login", func() error {
		return client.Login(ctx, *email, *password)
	})

	user, _ := client.CurrentUser()
	fmt.Printf("  authenticated as %s (%s)\n", user.Email, user.RawRole)
	fmt.Printf("  permissions: %d\n", len(client.Permissions()))

	step("list categories", func() error {
		cats, err := client.Categories().List(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("  %d categories\n", len(cats))
		return nil
	})

	step("list players", func() error {
		players, err := client.Players().List(ctx, clubadmin.PlayerFilter{})
		if err != nil {
			return err
		}
		fmt.Printf("  %d players\n", len(players))
		return nil
	})

	step("debtors (local)", func() error {
		report, err := client.LocalDebtors(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("  %d debtors owing %.2f over %d months\n",
			report.Summary.TotalDebtors, report.Summary.TotalOwed, report.Summary.MonthsChecked)
		return nil
	})

	step("logout", func() error {
		return client.Logout(ctx)
	})

	snap := client.MetricsSnapshot()
	fmt.Printf("requests ok=%d failed=%d unauthorized=%d\n",
		snap.Counters[clubadmin.MetricRequestSuccess],
		snap.Counters[clubadmin.MetricRequestFailure],
		snap.Counters[clubadmin.MetricRequestUnauthorized])
}

func step(name string, fn func() error) {
	start := time.Now()
	err := fn()
	elapsed := time.Since(start).Round(time.Millisecond)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: FAILED after %s: %v\n", name, elapsed, err)
		os.Exit(1)
	}
	fmt.Printf("%s: ok (%s)\n", name, elapsed)
}

// stubAPI is a tiny in-memory club API: one admin account, two categories,
// a short roster, and a partial payment history so the debtor computation
// has something to find.
func stubAPI(email, password string) http.Handler {
	const token = "smoke-token"
	now := time.Now()

	user := map[string]string{
		"id": "u1", "name": "Admin", "email": email, "role": "administrador",
	}
	categories := []map[string]any{
		{"_id": "c1", "name": "Infantil", "gender": "femenino", "cuota": 25.0},
		{"_id": "c2", "name": "Cadete", "gender": "masculino", "cuota": 30.0},
	}
	players := []map[string]any{
		{"_id": "p1", "firstName": "Ana", "lastName": "García", "fullName": "Ana García",
			"email": "ana@club.test", "category": map[string]any{"_id": "c1", "name": "Infantil", "cuota": 25.0}},
		{"_id": "p2", "firstName": "Luis", "lastName": "Pérez", "fullName": "Luis Pérez",
			"email": "luis@club.test", "category": map[string]any{"_id": "c2", "name": "Cadete", "cuota": 30.0}},
	}
	payments := []map[string]any{
		{"_id": "pay1", "playerId": "p1", "month": int(now.Month()), "year": now.Year(),
			"amount": 25.0, "paymentMethod": "efectivo", "categoryId": "c1"},
	}

	authorized := func(r *http.Request) bool {
		return r.Header.Get("Authorization") == "Bearer "+token
	}
	writeJSON := func(w http.ResponseWriter, status int, v any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil ||
			body.Email != email || body.Password != password {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"msg": "Credenciales inválidas"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"token": token, "user": user})
	})
	mux.HandleFunc("GET /users/me", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(r) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"msg": "Token no válido"})
			return
		}
		writeJSON(w, http.StatusOK, user)
	})
	mux.HandleFunc("GET /categories", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(r) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"msg": "Token no válido"})
			return
		}
		writeJSON(w, http.StatusOK, categories)
	})
	mux.HandleFunc("GET /players", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(r) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"msg": "Token no válido"})
			return
		}
		writeJSON(w, http.StatusOK, players)
	})
	mux.HandleFunc("GET /payments", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(r) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"msg": "Token no válido"})
			return
		}
		writeJSON(w, http.StatusOK, payments)
	})
	return mux
}
