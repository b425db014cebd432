package codec

import (
	"fmt"
	"io"

	"github.com/archmind/archmind/pkg/design"
)

// WriteArchitectureDoc writes a Markdown architecture document: a component
// listing followed by the connections grouped by link type. The registry
// resolves link type names; unknown types are shown under their raw id.
func WriteArchitectureDoc(w io.Writer, parts []design.Part, connections []design.Connection, registry *design.Registry) error {
	name := func(id int) string {
		for _, p := range parts {
			if p.ID == id {
				return p.Name
			}
		}
		return fmt.Sprintf("#%d", id)
	}

	if _, err := fmt.Fprintf(w, "# Architecture Design\n\n## Components (%d)\n\n", len(parts)); err != nil {
		return err
	}
	for _, p := range parts {
		fmt.Fprintf(w, "### %s\n\n- **Type**: %s\n", p.Name, p.Type)
		if p.Functionality != "" {
			fmt.Fprintf(w, "- **Functionality**: %s\n", p.Functionality)
		}
		if p.Technology != "" {
			fmt.Fprintf(w, "- **Technology**: %s\n", p.Technology)
		}
		if p.Version != "" {
			fmt.Fprintf(w, "- **Version**: %s\n", p.Version)
		}
		if p.Capacity != "" {
			fmt.Fprintf(w, "- **Capacity**: %s\n", p.Capacity)
		}
		if p.SLA != "" {
			fmt.Fprintf(w, "- **SLA**: %s\n", p.SLA)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "## Connections (%d)\n\n", len(connections))

	// Group by link type, preserving first-seen order.
	var order []string
	grouped := make(map[string][]design.Connection)
	for _, c := range connections {
		if _, seen := grouped[c.LinkType]; !seen {
			order = append(order, c.LinkType)
		}
		grouped[c.LinkType] = append(grouped[c.LinkType], c)
	}
	for _, id := range order {
		title := id
		if lt, ok := registry.Lookup(id); ok {
			title = lt.Name
		}
		fmt.Fprintf(w, "### %s\n\n", title)
		for _, c := range grouped[id] {
			fmt.Fprintf(w, "- %s → %s\n", name(c.From), name(c.To))
		}
		fmt.Fprintln(w)
	}
	return nil
}
