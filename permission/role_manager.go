package permission

import (
	"errors"
	"sync"
)

// RoleManager composes per-role permission masks from registered
// capability names. Instances are configured during initialization,
// frozen, and then treated as immutable.
type RoleManager struct {
	registry *Registry

	mu     sync.RWMutex
	roles  map[string]*Mask64
	frozen bool
}

// NewRoleManager creates a [RoleManager] bound to the given registry.
func NewRoleManager(registry *Registry) *RoleManager {
	return &RoleManager{
		registry: registry,
		roles:    make(map[string]*Mask64),
	}
}

// RegisterRole grants the named role every permission in permissionNames.
// All names must already exist in the registry. Must be called before
// [RoleManager.Freeze].
func (rm *RoleManager) RegisterRole(roleName string, permissionNames []string) error {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	if rm.frozen {
		return errors.New("role manager frozen")
	}

	if roleName == "" {
		return errors.New("role name empty")
	}

	if _, exists := rm.roles[roleName]; exists {
		return errors.New("role already registered: " + roleName)
	}

	mask := new(Mask64)
	for _, perm := range permissionNames {
		bit, ok := rm.registry.Bit(perm)
		if !ok {
			return errors.New("permission not registered: " + perm)
		}
		mask.Set(bit)
	}

	rm.roles[roleName] = mask
	return nil
}

// Grant adds a single permission to an already registered role. Used by
// table builders before Freeze; fails once frozen.
func (rm *RoleManager) Grant(roleName, permissionName string) error {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	if rm.frozen {
		return errors.New("role manager frozen")
	}

	mask, ok := rm.roles[roleName]
	if !ok {
		mask = new(Mask64)
		rm.roles[roleName] = mask
	}

	bit, ok := rm.registry.Bit(permissionName)
	if !ok {
		return errors.New("permission not registered: " + permissionName)
	}

	mask.Set(bit)
	return nil
}

// Mask returns the permission mask for the named role, or false when the
// role is unknown. Unknown roles therefore hold no permissions.
func (rm *RoleManager) Mask(roleName string) (*Mask64, bool) {
	rm.mu.RLock()
	defer rm.mu.RUnlock()

	mask, ok := rm.roles[roleName]
	return mask, ok
}

// Freeze prevents further role registration.
func (rm *RoleManager) Freeze() {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	rm.frozen = true
}

// Count returns the number of registered roles.
func (rm *RoleManager) Count() int {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	return len(rm.roles)
}
