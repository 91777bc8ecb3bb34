package clubadmin

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/easyvoley/clubadmin/internal/audit"
	"github.com/easyvoley/clubadmin/internal/token"
	"github.com/easyvoley/clubadmin/session"
)

// LoginRequest is the /auth/login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the /auth/register payload.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authResponse is what login and register return.
type authResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Login authenticates with email and password and establishes the session.
// A rejected pair surfaces [ErrInvalidCredentials]; the session state does
// not change on failure.
func (c *Client) Login(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return fmt.Errorf("%w: email and password are required", ErrInvalidCredentials)
	}

	var resp authResponse
	err := c.doSessionless(ctx, http.MethodPost, "/auth/login", LoginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		c.metrics.Inc(MetricLoginFailure)
		c.emitAudit(ctx, audit.EventLogin, false, err.Error(), nil)
		if apiErr := AsAPIError(err); apiErr != nil &&
			(apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusBadRequest) {
			return fmt.Errorf("%w: %s", ErrInvalidCredentials, apiErr.Message)
		}
		return err
	}

	return c.establish(ctx, audit.EventLogin, resp)
}

// Register creates an account and establishes the session, matching the
// API's register-then-auto-login behavior.
func (c *Client) Register(ctx context.Context, name, email, password string) error {
	var resp authResponse
	err := c.doSessionless(ctx, http.MethodPost, "/auth/register", RegisterRequest{Name: name, Email: email, Password: password}, &resp)
	if err != nil {
		c.metrics.Inc(MetricLoginFailure)
		c.emitAudit(ctx, audit.EventRegister, false, err.Error(), nil)
		return err
	}

	return c.establish(ctx, audit.EventRegister, resp)
}

func (c *Client) establish(ctx context.Context, eventType string, resp authResponse) error {
	if resp.Token == "" {
		return fmt.Errorf("%w: empty token in auth response", ErrRequestFailed)
	}

	if err := c.sessions.Establish(ctx, resp.Token, identityFor(resp.User)); err != nil {
		return err
	}

	c.metrics.Inc(MetricLoginSuccess)
	c.emitAudit(ctx, eventType, true, "", nil)
	if c.logger != nil {
		c.logger.WithField("user", resp.User.Email).Info("session established")
	}
	return nil
}

// Logout drops the session and clears storage. Safe to call without a
// session.
func (c *Client) Logout(ctx context.Context) error {
	dropped, err := c.sessions.Clear(ctx)
	if dropped {
		c.metrics.Inc(MetricLogout)
		c.emitAudit(ctx, audit.EventLogout, true, "", nil)
	}
	return err
}

// Restore revalidates a persisted session against /users/me. On success the
// client is Authenticated with the identity the API confirmed; on any
// failure storage is cleared and the client ends Unauthenticated.
// [ErrNoStoredSession] means there was nothing to restore.
func (c *Client) Restore(ctx context.Context) error {
	storedToken, _, err := c.sessions.BeginRestore(ctx)
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			return ErrNoStoredSession
		}
		c.metrics.Inc(MetricRestoreFailure)
		c.emitAudit(ctx, audit.EventRestoreFailed, false, err.Error(), nil)
		return err
	}

	if c.config.Token.PreCheckExpiry {
		if err := token.CheckNotExpired(storedToken, time.Now()); err != nil {
			c.failRestore(ctx, "stored token expired")
			return fmt.Errorf("%w: stored token expired", ErrSessionExpired)
		}
	}

	var user User
	if err := c.do(ctx, http.MethodGet, "/users/me", nil, &user); err != nil {
		// A 401 already cleared the session through the gateway; anything
		// else still has to abort the restore.
		if c.sessions.State() == session.StateRestoring {
			c.failRestore(ctx, err.Error())
		} else {
			c.metrics.Inc(MetricRestoreFailure)
			c.emitAudit(ctx, audit.EventRestoreFailed, false, err.Error(), nil)
		}
		return err
	}

	if err := c.sessions.CompleteRestore(ctx, identityFor(user)); err != nil {
		return err
	}

	c.metrics.Inc(MetricRestoreSuccess)
	c.emitAudit(ctx, audit.EventRestore, true, "", nil)
	if c.logger != nil {
		c.logger.WithField("user", user.Email).Info("session restored")
	}
	return nil
}

func (c *Client) failRestore(ctx context.Context, reason string) {
	if err := c.sessions.AbortRestore(ctx); err != nil && c.logger != nil {
		c.logger.WithError(err).Warn("aborting session restore")
	}
	c.metrics.Inc(MetricRestoreFailure)
	c.emitAudit(ctx, audit.EventRestoreFailed, false, reason, nil)
}

// identityFor normalizes an API user into the persisted identity. Known
// roles persist under their canonical name so permission checks do not
// depend on which alias the server sent.
func identityFor(u User) session.Identity {
	role := u.Role.String()
	if role == "" {
		role = u.RawRole
	}
	return session.Identity{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  role,
	}
}
