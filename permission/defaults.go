package permission

// Canonical role names. Role strings arriving from the API are
// normalized to these before evaluation; legacy Spanish aliases are
// handled by the caller, not here.
const (
	RoleAdministrator = "administrator"
	RoleTreasurer     = "treasurer"
	RoleCollector     = "collector"
)

// Club back-office capability names. Grouped by resource; the grant
// table below assigns them to roles.
const (
	PermUsersView   = "users.view"
	PermUsersCreate = "users.create"
	PermUsersEdit   = "users.edit"
	PermUsersDelete = "users.delete"

	PermCategoriesView   = "categories.view"
	PermCategoriesCreate = "categories.create"
	PermCategoriesEdit   = "categories.edit"
	PermCategoriesDelete = "categories.delete"

	PermPlayersView       = "players.view"
	PermPlayersCreate     = "players.create"
	PermPlayersEdit       = "players.edit"
	PermPlayersDelete     = "players.delete"
	PermPlayersBulkUpload = "players.bulk_upload"

	PermFamiliesView   = "families.view"
	PermFamiliesCreate = "families.create"
	PermFamiliesEdit   = "families.edit"
	PermFamiliesDelete = "families.delete"

	PermPaymentsView   = "payments.view"
	PermPaymentsCreate = "payments.create"
	PermPaymentsEdit   = "payments.edit"
	PermPaymentsDelete = "payments.delete"

	PermDebtorsView   = "morosos.view"
	PermReportsView   = "reports.view"
	PermReportsExport = "reports.export"

	PermConfigurationView = "configuration.view"
	PermConfigurationEdit = "configuration.edit"

	PermAssignmentsView = "assignments.view"
	PermAssignmentsEdit = "assignments.edit"
)

// grantTable lists every capability with the roles that hold it.
// Registration order fixes bit assignment, so new entries go at the end.
var grantTable = []struct {
	name  string
	roles []string
}{
	{PermUsersView, []string{RoleAdministrator}},
	{PermUsersCreate, []string{RoleAdministrator}},
	{PermUsersEdit, []string{RoleAdministrator}},
	{PermUsersDelete, []string{RoleAdministrator}},

	{PermCategoriesView, []string{RoleAdministrator}},
	{PermCategoriesCreate, []string{RoleAdministrator}},
	{PermCategoriesEdit, []string{RoleAdministrator}},
	{PermCategoriesDelete, []string{RoleAdministrator}},

	{PermPlayersView, []string{RoleAdministrator}},
	{PermPlayersCreate, []string{RoleAdministrator}},
	{PermPlayersEdit, []string{RoleAdministrator}},
	{PermPlayersDelete, []string{RoleAdministrator}},
	{PermPlayersBulkUpload, []string{RoleAdministrator}},

	{PermFamiliesView, []string{RoleAdministrator, RoleTreasurer}},
	{PermFamiliesCreate, []string{RoleAdministrator, RoleTreasurer}},
	{PermFamiliesEdit, []string{RoleAdministrator, RoleTreasurer}},
	{PermFamiliesDelete, []string{RoleAdministrator, RoleTreasurer}},

	{PermPaymentsView, []string{RoleAdministrator, RoleTreasurer, RoleCollector}},
	{PermPaymentsCreate, []string{RoleAdministrator, RoleTreasurer, RoleCollector}},
	{PermPaymentsEdit, []string{RoleAdministrator, RoleTreasurer}},
	{PermPaymentsDelete, []string{RoleAdministrator}},

	{PermDebtorsView, []string{RoleAdministrator, RoleTreasurer}},
	{PermReportsView, []string{RoleAdministrator, RoleTreasurer}},
	{PermReportsExport, []string{RoleAdministrator, RoleTreasurer}},

	{PermConfigurationView, []string{RoleAdministrator}},
	{PermConfigurationEdit, []string{RoleAdministrator}},

	{PermAssignmentsView, []string{RoleAdministrator, RoleTreasurer}},
	{PermAssignmentsEdit, []string{RoleAdministrator, RoleTreasurer}},
}

// routeBindings maps navigable back-office paths to the view permission
// they require. Paths absent from this list stay open.
var routeBindings = []struct {
	path string
	perm string
}{
	{"/users", PermUsersView},
	{"/categories", PermCategoriesView},
	{"/players", PermPlayersView},
	{"/families", PermFamiliesView},
	{"/payments", PermPaymentsView},
	{"/morosos", PermDebtorsView},
	{"/reports", PermReportsView},
	{"/assignments", PermAssignmentsView},
	{"/configuration", PermConfigurationView},
}

// NewDefaultEvaluator builds the club back-office [Evaluator]: the full
// capability table, the three-role grant matrix, and the route bindings,
// all frozen. Panics on internal table inconsistency, which can only
// happen from a bad edit to the tables above.
func NewDefaultEvaluator() *Evaluator {
	registry := NewRegistry()
	roles := NewRoleManager(registry)
	routes := NewRouteTable()

	for _, entry := range grantTable {
		if _, err := registry.Register(entry.name); err != nil {
			panic("permission: default table: " + err.Error())
		}
	}
	registry.Freeze()

	for _, entry := range grantTable {
		for _, role := range entry.roles {
			if err := roles.Grant(role, entry.name); err != nil {
				panic("permission: default grants: " + err.Error())
			}
		}
	}
	roles.Freeze()

	for _, binding := range routeBindings {
		if err := routes.Bind(binding.path, binding.perm); err != nil {
			panic("permission: default routes: " + err.Error())
		}
	}
	routes.Freeze()

	return NewEvaluator(registry, roles, routes)
}
