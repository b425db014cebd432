package aisync

import (
	"fmt"
	"strings"

	"github.com/archmind/archmind/pkg/design"
)

// SyncResult is a validated, fully-typed design delta ready to flow through
// the workspace's normal mutation path. Either the whole result applies or
// none of it does; partially-applied AI output would silently corrupt
// referential integrity.
type SyncResult struct {
	Parts           []design.Part
	Connections     []design.Connection
	CustomLinkTypes []design.LinkType
	Description     string
}

// ColorFunc resolves the fallback color for a part type when the model
// omitted customColor. design.Catalog.ColorFor satisfies it.
type ColorFunc func(typeID string) string

// BuildGenerate turns a generate-mode payload into a SyncResult. Parts are
// assigned ids 1..N in response order; connection endpoints arrive as
// 0-based indices into the parts array and are translated to the assigned
// ids. Any validation failure aborts the whole build.
func BuildGenerate(p *DesignPayload, builtins func(id string) bool, colorFor ColorFunc) (*SyncResult, error) {
	for i := range p.Connections {
		if err := ValidateConnection(&p.Connections[i], AddressByIndex, len(p.Parts), nil); err != nil {
			return nil, err
		}
	}

	res := &SyncResult{Description: p.Description}
	for i, pp := range p.Parts {
		res.Parts = append(res.Parts, materializePart(pp, i+1, colorFor))
	}
	for i, cp := range p.Connections {
		res.Connections = append(res.Connections, design.Connection{
			From:        res.Parts[cp.From].ID,
			To:          res.Parts[cp.To].ID,
			ID:          i + 1,
			LinkType:    cp.LinkType,
			Color:       cp.Color,
			StrokeWidth: cp.StrokeWidth,
			DashArray:   cp.DashArray,
		})
	}
	res.CustomLinkTypes = extractCustomTypes(res.Connections, builtins)
	return res, nil
}

// BuildEdit turns an edit-mode payload into a SyncResult. The payload is the
// full modified design: part ids already present are preserved, parts the
// model added without an id receive the next sequential id, and connection
// endpoints are real ids validated against the payload's own part set (a
// part the model dropped cannot keep its connections). Connection ids follow
// the same rule as part ids: explicit ones are kept, omitted ones are
// assigned above them.
func BuildEdit(p *DesignPayload, current []design.Part, builtins func(id string) bool, colorFor ColorFunc) (*SyncResult, error) {
	nextID := 1
	for _, cp := range current {
		if cp.ID >= nextID {
			nextID = cp.ID + 1
		}
	}
	for _, pp := range p.Parts {
		if pp.ID >= nextID {
			nextID = pp.ID + 1
		}
	}

	res := &SyncResult{Description: p.Description}
	known := make(map[int]bool, len(p.Parts))
	for _, pp := range p.Parts {
		id := pp.ID
		if id == 0 {
			id = nextID
			nextID++
		}
		if known[id] {
			return nil, newError(KindValidation, "duplicate part id %d in edit response", id)
		}
		known[id] = true
		res.Parts = append(res.Parts, materializePart(pp, id, colorFor))
	}

	for i := range p.Connections {
		if err := ValidateConnection(&p.Connections[i], AddressByID, 0, known); err != nil {
			return nil, err
		}
	}
	// Fresh connections get ids above every explicit one in the payload, so
	// a mix of kept and added connections cannot collide.
	nextConnID := 1
	for _, cp := range p.Connections {
		if cp.ID >= nextConnID {
			nextConnID = cp.ID + 1
		}
	}
	seenConn := make(map[int]bool, len(p.Connections))
	for _, cp := range p.Connections {
		id := cp.ID
		if id == 0 {
			id = nextConnID
			nextConnID++
		}
		if seenConn[id] {
			return nil, newError(KindValidation, "duplicate connection id %d in edit response", id)
		}
		seenConn[id] = true
		res.Connections = append(res.Connections, design.Connection{
			From:        cp.From,
			To:          cp.To,
			ID:          id,
			LinkType:    cp.LinkType,
			Color:       cp.Color,
			StrokeWidth: cp.StrokeWidth,
			DashArray:   cp.DashArray,
		})
	}
	res.CustomLinkTypes = extractCustomTypes(res.Connections, builtins)
	return res, nil
}

// materializePart fills model-omitted fields: fallback color from the
// component catalog and empty-string defaults for the URL fields.
func materializePart(pp PartPayload, id int, colorFor ColorFunc) design.Part {
	color := pp.CustomColor
	if color == "" && colorFor != nil {
		color = colorFor(pp.Type)
	}
	return design.Part{
		ID:            id,
		Type:          pp.Type,
		Name:          pp.Name,
		CustomColor:   color,
		Functionality: pp.Functionality,
		ImageURL:      pp.ImageURL,
		Technology:    pp.Technology,
		Version:       pp.Version,
		Capacity:      pp.Capacity,
		SLA:           pp.SLA,
		Cost:          pp.Cost,
		CostUnit:      pp.CostUnit,
		Quantity:      pp.Quantity,
		SourceURL:     pp.SourceURL,
		X:             pp.X,
		Y:             pp.Y,
	}
}

// extractCustomTypes scans validated connections for link types outside the
// built-in set. Each first-seen unknown type becomes a LinkType with a
// deterministic slugged id carrying that connection's style; repeats of the
// same derived id collapse to one entry. Connections are rewritten to
// reference the derived id so registry lookups and visibility filtering
// stay consistent.
func extractCustomTypes(conns []design.Connection, builtins func(id string) bool) []design.LinkType {
	var out []design.LinkType
	seen := make(map[string]bool)
	for i, c := range conns {
		if builtins(c.LinkType) {
			continue
		}
		// The model may emit either a bare name ("thermal") or an already
		// derived id ("custom-thermal"); both collapse to the same entry.
		name := c.LinkType
		id := name
		if strings.HasPrefix(id, "custom-") {
			name = strings.TrimPrefix(name, "custom-")
		} else {
			id = design.CustomLinkTypeID(name)
		}
		if !seen[id] {
			seen[id] = true
			out = append(out, design.LinkType{
				ID:          id,
				Name:        name,
				Color:       c.Color,
				StrokeWidth: c.StrokeWidth,
				DashArray:   c.DashArray,
				Description: fmt.Sprintf("Custom link type: %s", name),
			})
		}
		conns[i].LinkType = id
	}
	return out
}
