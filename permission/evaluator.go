package permission

// Evaluator answers authorization queries against a frozen registry, role
// manager, and route table. Every method is a pure read: no method errors,
// panics, or mutates state, and all of them fail closed for anything the
// tables do not know about.
type Evaluator struct {
	registry *Registry
	roles    *RoleManager
	routes   *RouteTable
}

// NewEvaluator creates an [Evaluator] over the given frozen tables.
func NewEvaluator(registry *Registry, roles *RoleManager, routes *RouteTable) *Evaluator {
	return &Evaluator{
		registry: registry,
		roles:    roles,
		routes:   routes,
	}
}

// Allowed reports whether the named role may exercise the named
// permission. False when the role is empty or unknown, when the
// permission is unregistered, or when the role's mask lacks the bit.
func (e *Evaluator) Allowed(roleName, permissionName string) bool {
	if e == nil || roleName == "" {
		return false
	}

	bit, ok := e.registry.Bit(permissionName)
	if !ok {
		return false
	}

	mask, ok := e.roles.Mask(roleName)
	if !ok {
		return false
	}

	return mask.Has(bit)
}

// PermissionsFor returns every permission name the role holds, in bit
// order. Empty (never nil) for unknown or empty roles.
func (e *Evaluator) PermissionsFor(roleName string) []string {
	out := []string{}
	if e == nil || roleName == "" {
		return out
	}

	mask, ok := e.roles.Mask(roleName)
	if !ok {
		return out
	}

	for bit := 0; bit < e.registry.Count(); bit++ {
		if !mask.Has(bit) {
			continue
		}
		if name, ok := e.registry.Name(bit); ok {
			out = append(out, name)
		}
	}
	return out
}

// CanAccessRoute reports whether the named role may view path. Unbound
// paths are open to everyone, including anonymous callers (empty role);
// bound paths defer to [Evaluator.Allowed].
func (e *Evaluator) CanAccessRoute(roleName, path string) bool {
	if e == nil {
		return false
	}

	required, ok := e.routes.Required(path)
	if !ok {
		return true
	}

	return e.Allowed(roleName, required)
}

// Registry exposes the underlying registry for read-only introspection.
func (e *Evaluator) Registry() *Registry {
	return e.registry
}

// Routes exposes the underlying route table for read-only introspection.
func (e *Evaluator) Routes() *RouteTable {
	return e.routes
}
