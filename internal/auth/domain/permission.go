package domain

import "strings"

// Permission is a fixed-format capability string "module.resource.action"
// (e.g. "core.events.create") granted to a role. The catalog of valid
// permissions is process-wide and read-only; it is not tenant-specific.
type Permission string

// Parts splits the permission into its module, resource, and action segments.
// ok is false when the string does not have exactly three non-empty segments.
func (p Permission) Parts() (module, resource, action string, ok bool) {
	parts := strings.Split(string(p), ".")
	if len(parts) != 3 {
		return "", "", "", false
	}
	for _, part := range parts {
		if part == "" {
			return "", "", "", false
		}
	}
	return parts[0], parts[1], parts[2], true
}

// Valid reports whether the permission is well-formed and part of the catalog.
func (p Permission) Valid() bool {
	_, ok := catalogSet[p]
	return ok
}

func (p Permission) String() string {
	return string(p)
}
