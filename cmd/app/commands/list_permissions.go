package commands

import (
	"encoding/json"
	"fmt"
	"sort"

	authDomain "github.com/gharrison91/camp-connect-sub002/internal/auth/domain"
)

// RunListPermissions prints the permission catalog.
// The text format groups permissions by module and resource the same way the
// /v1/permissions endpoint does; the json format prints the grouped map.
func RunListPermissions(format string, io IOTuple) error {
	grouped := authDomain.GroupedPermissions()

	switch format {
	case "json":
		encoder := json.NewEncoder(io.Writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(grouped)
	case "text":
		modules := make([]string, 0, len(grouped))
		for module := range grouped {
			modules = append(modules, module)
		}
		sort.Strings(modules)

		for _, module := range modules {
			fmt.Fprintf(io.Writer, "%s\n", module)

			resources := make([]string, 0, len(grouped[module]))
			for resource := range grouped[module] {
				resources = append(resources, resource)
			}
			sort.Strings(resources)

			for _, resource := range resources {
				actions := append([]string(nil), grouped[module][resource]...)
				sort.Strings(actions)
				for _, action := range actions {
					fmt.Fprintf(io.Writer, "  %s.%s.%s\n", module, resource, action)
				}
			}
		}
		return nil
	default:
		return fmt.Errorf("invalid format: %s (valid options: text, json)", format)
	}
}
