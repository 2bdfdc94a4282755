// utils/entity.go
package utils

// routeToEntity maps the pluralized-hyphenated resource segment of an API
// path to the singular entity name the permission table speaks.
var routeToEntity = map[string]string{
	"assignments":    "assignment",
	"bills":          "bill",
	"companies":      "company",
	"customers":      "customer",
	"meter-readings": "meter_reading",
	"users":          "user",
}

// ConvertRouteToEntity resolves a route segment to its entity name.
// Unrecognized segments come back unchanged so lookups never fail.
func ConvertRouteToEntity(route string) string {
	if entity, ok := routeToEntity[route]; ok {
		return entity
	}
	return route
}
