package design

// Graph is the authoritative in-memory representation of parts and
// connections for one session, plus the current selection.
//
// Preconditions (documented, not runtime-guarded): part and connection ids
// supplied to Add* must be unique within the session, and connection From/To
// must reference existing part ids. Violations are programming errors in the
// caller, not conditions the model recovers from.
//
// Self-loop connections (From == To) are accepted; they model feedback paths
// and the renderer draws them as loops.
type Graph struct {
	parts       []Part
	connections []Connection

	// Selected ids, 0 when nothing is selected. Ids are always >= 1.
	selectedPart       int
	selectedConnection int
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{}
}

// Parts returns a copy of all parts in insertion order.
func (g *Graph) Parts() []Part {
	return cloneParts(g.parts)
}

// Connections returns a copy of all connections in insertion order.
func (g *Graph) Connections() []Connection {
	return cloneConnections(g.connections)
}

// PartCount returns the number of parts.
func (g *Graph) PartCount() int { return len(g.parts) }

// ConnectionCount returns the number of connections.
func (g *Graph) ConnectionCount() int { return len(g.connections) }

// Part returns the part with the given id.
func (g *Graph) Part(id int) (Part, bool) {
	for _, p := range g.parts {
		if p.ID == id {
			return p, true
		}
	}
	return Part{}, false
}

// AddPart appends a part. The id must be unique (caller precondition).
func (g *Graph) AddPart(p Part) {
	g.parts = append(g.parts, p)
}

// AddConnection appends a connection. From/To must reference existing parts
// (caller precondition).
func (g *Graph) AddConnection(c Connection) {
	g.connections = append(g.connections, c)
}

// UpdatePartProperty replaces a single field of the part with the given id.
// Unknown ids are a no-op. A value of the wrong type for the property returns
// ErrInvalidPropertyValue and leaves the part untouched. It does not snapshot
// history; callers decide when a batch of edits is complete.
//
// Numeric values arrive as float64 when they come through JSON; both int and
// float64 are accepted for the numeric properties.
func (g *Graph) UpdatePartProperty(id int, property string, value any) error {
	i := g.partIndex(id)
	if i < 0 {
		return nil
	}
	p := &g.parts[i]
	switch property {
	case "type":
		return setString(&p.Type, value)
	case "name":
		return setString(&p.Name, value)
	case "customColor":
		return setString(&p.CustomColor, value)
	case "functionality":
		return setString(&p.Functionality, value)
	case "imageUrl":
		return setString(&p.ImageURL, value)
	case "technology":
		return setString(&p.Technology, value)
	case "version":
		return setString(&p.Version, value)
	case "capacity":
		return setString(&p.Capacity, value)
	case "sla":
		return setString(&p.SLA, value)
	case "cost":
		return setString(&p.Cost, value)
	case "costUnit":
		return setString(&p.CostUnit, value)
	case "sourceUrl":
		return setString(&p.SourceURL, value)
	case "quantity":
		n, ok := toInt(value)
		if !ok {
			return ErrInvalidPropertyValue
		}
		p.Quantity = n
	case "x":
		f, ok := toFloat(value)
		if !ok {
			return ErrInvalidPropertyValue
		}
		p.X = f
	case "y":
		f, ok := toFloat(value)
		if !ok {
			return ErrInvalidPropertyValue
		}
		p.Y = f
	default:
		return ErrUnknownProperty
	}
	return nil
}

// SetPartPosition moves a part. Used by drag-end and auto-layout; callers
// batch position changes and snapshot history once per user-visible action.
func (g *Graph) SetPartPosition(id int, x, y float64) {
	if i := g.partIndex(id); i >= 0 {
		g.parts[i].X = x
		g.parts[i].Y = y
	}
}

// DeletePart removes the part and every connection referencing it as source
// or target. The selection is cleared if it pointed at the deleted part.
func (g *Graph) DeletePart(id int) {
	i := g.partIndex(id)
	if i < 0 {
		return
	}
	g.parts = append(g.parts[:i], g.parts[i+1:]...)

	kept := g.connections[:0]
	for _, c := range g.connections {
		if c.From != id && c.To != id {
			kept = append(kept, c)
		}
	}
	g.connections = kept

	if g.selectedPart == id {
		g.selectedPart = 0
	}
}

// DeleteConnection removes a single connection by id.
func (g *Graph) DeleteConnection(id int) {
	for i, c := range g.connections {
		if c.ID == id {
			g.connections = append(g.connections[:i], g.connections[i+1:]...)
			if g.selectedConnection == id {
				g.selectedConnection = 0
			}
			return
		}
	}
}

// Replace swaps in a whole new part/connection set. Used by import, sample
// load, undo/redo restore and AI design sync. The slices are copied.
func (g *Graph) Replace(parts []Part, connections []Connection) {
	g.parts = cloneParts(parts)
	g.connections = cloneConnections(connections)
}

// SelectPart marks a part as selected; id 0 clears the part selection.
func (g *Graph) SelectPart(id int) { g.selectedPart = id }

// SelectConnection marks a connection as selected; id 0 clears it.
func (g *Graph) SelectConnection(id int) { g.selectedConnection = id }

// ClearSelection clears both selections.
func (g *Graph) ClearSelection() {
	g.selectedPart = 0
	g.selectedConnection = 0
}

// SelectedPart returns the currently selected part, if any.
func (g *Graph) SelectedPart() (Part, bool) {
	if g.selectedPart == 0 {
		return Part{}, false
	}
	return g.Part(g.selectedPart)
}

// VisibleConnections projects the connection set down to link types present
// in the visibility set. It is a pure view-time filter and never mutates
// stored state.
func (g *Graph) VisibleConnections(visible map[string]bool) []Connection {
	out := make([]Connection, 0, len(g.connections))
	for _, c := range g.connections {
		if visible[c.LinkType] {
			out = append(out, c)
		}
	}
	return out
}

// Degree returns the number of connections touching the part in either
// direction. A self-loop counts once.
func (g *Graph) Degree(id int) int {
	n := 0
	for _, c := range g.connections {
		if c.From == id || c.To == id {
			n++
		}
	}
	return n
}

func (g *Graph) partIndex(id int) int {
	for i, p := range g.parts {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func setString(dst *string, v any) error {
	s, ok := v.(string)
	if !ok {
		return ErrInvalidPropertyValue
	}
	*dst = s
	return nil
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case float64:
		return int(n), true
	}
	return 0, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
