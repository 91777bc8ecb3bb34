package permission

import (
	"errors"
	"sync"
)

// RouteTable binds navigable paths to the permission required to view
// them. Paths without a binding are open to any caller; bound paths fail
// closed through the evaluator.
type RouteTable struct {
	mu     sync.RWMutex
	routes map[string]string
	frozen bool
}

// NewRouteTable creates an empty [RouteTable].
func NewRouteTable() *RouteTable {
	return &RouteTable{
		routes: make(map[string]string),
	}
}

// Bind requires the named permission to access path. Must be called
// before [RouteTable.Freeze].
func (rt *RouteTable) Bind(path, permissionName string) error {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	if rt.frozen {
		return errors.New("route table frozen")
	}

	if path == "" {
		return errors.New("route path empty")
	}
	if permissionName == "" {
		return errors.New("route permission empty")
	}
	if _, exists := rt.routes[path]; exists {
		return errors.New("route already bound: " + path)
	}

	rt.routes[path] = permissionName
	return nil
}

// Required returns the permission bound to path, or false when the path
// has no binding.
func (rt *RouteTable) Required(path string) (string, bool) {
	rt.mu.RLock()
	defer rt.mu.RUnlock()

	perm, ok := rt.routes[path]
	return perm, ok
}

// Freeze prevents further bindings.
func (rt *RouteTable) Freeze() {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	rt.frozen = true
}

// Count returns the number of bound routes.
func (rt *RouteTable) Count() int {
	rt.mu.RLock()
	defer rt.mu.RUnlock()
	return len(rt.routes)
}
