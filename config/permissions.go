package config

import "pngbilling-backend/models"

// RolePermissions is the static grant table the authorization middleware
// consults. Permission strings are "entity:action"; entity names are the
// singular forms produced by utils.ConvertRouteToEntity.
var RolePermissions = map[string][]string{
	models.RoleBusinessOwner: {
		"*:*",
	},
	models.RoleAccountManager: {
		"*:read",
		"customer:*",
		"meter_reading:*",
		"bill:*",
		"assignment:*",
	},
	models.RoleMeterReader: {
		"*:read",
		"meter_reading:create",
		"meter_reading:update",
	},
	models.RoleEndCustomer: {
		"customer:read",
		"meter_reading:read",
		"bill:read",
		"assignment:read",
		"user:read",
		"company:read",
	},
}

// PermissionsForRole returns the grants for a role, empty for unknown roles.
func PermissionsForRole(role string) []string {
	return RolePermissions[role]
}
