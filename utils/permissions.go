package utils

import "strings"

// MatchesPermission checks if a granted permission matches the required one.
// Permission format is "entity:action". Wildcards are supported on either
// part:
//
//   - "*:*" or "*" matches everything
//   - "bill:*" matches every action on bills
//   - "*:read" matches read on every entity
//   - "bill:update" exact match
func MatchesPermission(granted, required string) bool {
	if granted == required {
		return true
	}

	if granted == "*:*" || granted == "*" {
		return true
	}

	grantedParts := strings.Split(granted, ":")
	requiredParts := strings.Split(required, ":")

	if len(grantedParts) < 2 || len(requiredParts) < 2 {
		return granted == required
	}

	entityMatch := grantedParts[0] == "*" || grantedParts[0] == requiredParts[0]
	actionMatch := grantedParts[1] == "*" || grantedParts[1] == requiredParts[1]

	return entityMatch && actionMatch
}

// HasPermission reports whether any granted permission covers the required
// one.
func HasPermission(granted []string, required string) bool {
	for _, perm := range granted {
		if MatchesPermission(perm, required) {
			return true
		}
	}
	return false
}
