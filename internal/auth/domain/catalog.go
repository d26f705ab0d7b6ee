package domain

import "sort"

// The permission catalog. Grouped by module and resource for introspection;
// enforcement only ever tests exact membership.
//
// Permissions referenced directly by route guards.
const (
	PermEventsRead        Permission = "core.events.read"
	PermEventsCreate      Permission = "core.events.create"
	PermEventsUpdate      Permission = "core.events.update"
	PermEventsDelete      Permission = "core.events.delete"
	PermRolesRead         Permission = "core.roles.read"
	PermRolesAssign       Permission = "core.roles.assign"
	PermCampersRead       Permission = "core.campers.read"
	PermGuardiansRead     Permission = "core.guardians.read"
	PermRegistrationsRead Permission = "core.registrations.read"
)

// catalog is the full, fixed permission set.
var catalog = []Permission{
	"core.campers.create",
	PermCampersRead,
	"core.campers.update",
	"core.campers.delete",

	PermEventsCreate,
	PermEventsRead,
	PermEventsUpdate,
	PermEventsDelete,

	"core.registrations.create",
	PermRegistrationsRead,
	"core.registrations.update",
	"core.registrations.cancel",

	"core.payments.create",
	"core.payments.read",
	"core.payments.refund",

	"core.photos.upload",
	"core.photos.read",
	"core.photos.delete",

	"core.guardians.create",
	PermGuardiansRead,
	"core.guardians.update",
	"core.guardians.delete",

	PermRolesRead,
	PermRolesAssign,

	"core.reports.run",

	"core.settings.read",
	"core.settings.update",
}

// catalogSet supports O(1) membership checks.
var catalogSet = func() map[Permission]struct{} {
	set := make(map[Permission]struct{}, len(catalog))
	for _, p := range catalog {
		set[p] = struct{}{}
	}
	return set
}()

// AllPermissions returns the full catalog, sorted, as a new slice.
func AllPermissions() []Permission {
	out := make([]Permission, len(catalog))
	copy(out, catalog)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// GroupedPermissions returns the catalog keyed by module and resource, for
// administrative UI rendering. Actions are sorted for stable output.
func GroupedPermissions() map[string]map[string][]string {
	grouped := make(map[string]map[string][]string)
	for _, p := range catalog {
		module, resource, action, ok := p.Parts()
		if !ok {
			continue
		}
		if grouped[module] == nil {
			grouped[module] = make(map[string][]string)
		}
		grouped[module][resource] = append(grouped[module][resource], action)
	}
	for _, resources := range grouped {
		for _, actions := range resources {
			sort.Strings(actions)
		}
	}
	return grouped
}
