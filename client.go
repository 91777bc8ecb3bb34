package clubadmin

import (
	"net/http"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/easyvoley/clubadmin/internal/audit"
	"github.com/easyvoley/clubadmin/permission"
	"github.com/easyvoley/clubadmin/session"
)

// Client is the back-office API client. It owns the session state machine
// (single writer), the gateway, the local permission evaluator, and the
// typed resource facades. A Client is safe for concurrent use; concurrent
// requests are independent and last-write-wins, mirroring the API's own
// semantics.
type Client struct {
	config     Config
	baseURL    string
	httpClient *http.Client

	sessions  *session.Manager
	evaluator *permission.Evaluator
	metrics   *Metrics
	audit     *audit.Dispatcher
	logger    *logrus.Logger

	onSessionExpired func()
	closed           atomic.Bool
}

// Session returns the read-only view of the session state machine. Only the
// Client itself transitions it.
func (c *Client) Session() session.Reader {
	return c.sessions
}

// Metrics returns the client's metric registry for exporters.
func (c *Client) Metrics() *Metrics {
	return c.metrics
}

// Evaluator returns the permission evaluator backing Can and
// CanAccessRoute.
func (c *Client) Evaluator() *permission.Evaluator {
	return c.evaluator
}

// MetricsSnapshot copies the current counters and histograms. Exporters
// under metrics/export consume this.
func (c *Client) MetricsSnapshot() MetricsSnapshot {
	return c.metrics.Snapshot()
}

// AuditDropped reports how many audit events were dropped to backpressure.
func (c *Client) AuditDropped() uint64 {
	return c.audit.Dropped()
}

// CurrentUser returns the authenticated identity, or false when the client
// holds no confirmed session.
func (c *Client) CurrentUser() (User, bool) {
	if c.sessions.State() != session.StateAuthenticated {
		return User{}, false
	}
	id, ok := c.sessions.Identity()
	if !ok {
		return User{}, false
	}
	return User{
		ID:      id.ID,
		Name:    id.Name,
		Email:   id.Email,
		Role:    ParseRole(id.Role),
		RawRole: id.Role,
	}, true
}

// CurrentRole returns the authenticated role, [RoleUnknown] when absent.
func (c *Client) CurrentRole() Role {
	user, ok := c.CurrentUser()
	if !ok {
		return RoleUnknown
	}
	return user.Role
}

// Can reports whether the current user holds the named permission. False
// with no session, an unknown role, or an unknown permission.
func (c *Client) Can(permissionName string) bool {
	return c.evaluator.Allowed(c.CurrentRole().String(), permissionName)
}

// CanAccessRoute reports whether the current user may view path. Unbound
// paths are open even without a session.
func (c *Client) CanAccessRoute(path string) bool {
	return c.evaluator.CanAccessRoute(c.CurrentRole().String(), path)
}

// Permissions returns every permission name the current user holds.
func (c *Client) Permissions() []string {
	return c.evaluator.PermissionsFor(c.CurrentRole().String())
}

// Close releases the audit dispatcher and marks the client closed. The
// session and its storage are left as they are: closing is not a logout.
func (c *Client) Close() {
	if c.closed.Swap(true) {
		return
	}
	c.audit.Close()
}

// Resource facades. Stateless; cheap to call repeatedly.

func (c *Client) Users() *UsersClient                 { return &UsersClient{gw: c} }
func (c *Client) Players() *PlayersClient             { return &PlayersClient{gw: c} }
func (c *Client) Categories() *CategoriesClient       { return &CategoriesClient{gw: c} }
func (c *Client) Payments() *PaymentsClient           { return &PaymentsClient{gw: c} }
func (c *Client) Families() *FamiliesClient           { return &FamiliesClient{gw: c} }
func (c *Client) Assignments() *AssignmentsClient     { return &AssignmentsClient{gw: c} }
func (c *Client) Configuration() *ConfigurationClient { return &ConfigurationClient{gw: c} }
func (c *Client) Stats() *StatsClient                 { return &StatsClient{gw: c} }
