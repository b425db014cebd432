package design

// Workspace bundles the state behind one editing surface: the graph, its
// history, the link-type registry, the component catalog, and the current
// auto-layout mode. It owns the discipline of when history snapshots are
// taken: every method here that mutates the graph pushes exactly one
// snapshot for the whole operation.
//
// Fine-grained mutations that batch before snapshotting (property edits
// while an editor panel is open, positions during a live drag) go straight
// through Graph; callers then invoke Commit at the operation's logical end.
type Workspace struct {
	Graph    *Graph
	History  *History
	Registry *Registry
	Catalog  *Catalog

	layoutMode LayoutMode
}

// NewWorkspace creates a workspace with empty graph and history over the
// built-in link types and component categories.
func NewWorkspace() *Workspace {
	return &Workspace{
		Graph:      NewGraph(),
		History:    NewHistory(),
		Registry:   NewRegistry(BuiltinLinkTypes()),
		Catalog:    NewCatalog(BuiltinCategories()),
		layoutMode: LayoutHierarchical,
	}
}

// Commit records the current graph state as one undoable step.
func (w *Workspace) Commit() {
	w.History.Push(w.Graph.parts, w.Graph.connections)
}

// AddPart appends a part and commits.
func (w *Workspace) AddPart(p Part) {
	w.Graph.AddPart(p)
	w.Commit()
}

// AddConnection appends a connection, stamping it with the given link type's
// style snapshot, and commits.
func (w *Workspace) AddConnection(c Connection) {
	if lt, ok := w.Registry.Lookup(c.LinkType); ok {
		if c.Color == "" {
			c.Color = lt.Color
		}
		if c.StrokeWidth == 0 {
			c.StrokeWidth = lt.StrokeWidth
			c.DashArray = lt.DashArray
		}
	}
	w.Graph.AddConnection(c)
	w.Commit()
}

// DeletePart removes a part with cascade and commits.
func (w *Workspace) DeletePart(id int) {
	w.Graph.DeletePart(id)
	w.Commit()
}

// DeleteConnection removes a connection and commits.
func (w *Workspace) DeleteConnection(id int) {
	w.Graph.DeleteConnection(id)
	w.Commit()
}

// Undo restores the previous snapshot and clears the selection. Returns
// false at the base of the history.
func (w *Workspace) Undo() bool {
	s, ok := w.History.Undo()
	if !ok {
		return false
	}
	w.Graph.Replace(s.Parts, s.Connections)
	w.Graph.ClearSelection()
	return true
}

// Redo restores the next snapshot and clears the selection. Returns false at
// the tip of the history.
func (w *Workspace) Redo() bool {
	s, ok := w.History.Redo()
	if !ok {
		return false
	}
	w.Graph.Replace(s.Parts, s.Connections)
	w.Graph.ClearSelection()
	return true
}

// LayoutMode returns the strategy the next AutoArrange call will use.
func (w *Workspace) LayoutMode() LayoutMode { return w.layoutMode }

// AutoArrange repositions all parts under the current layout mode, advances
// the mode for the next invocation, and commits once. With no parts it does
// nothing at all: no mode advance, no snapshot.
func (w *Workspace) AutoArrange() bool {
	if w.Graph.PartCount() == 0 {
		return false
	}
	arranged := Arrange(w.Graph.parts, w.Graph.connections, w.layoutMode)
	w.layoutMode = NextLayoutMode(w.layoutMode)
	w.Graph.parts = arranged
	w.Commit()
	return true
}

// LoadSample replaces the design with the bundled sample and commits.
func (w *Workspace) LoadSample() {
	parts, connections := SampleDesign()
	w.Graph.Replace(parts, connections)
	w.Commit()
}

// Load replaces the whole workspace content from an imported document and
// commits. Missing collections arrive as empty slices from the codec.
func (w *Workspace) Load(parts []Part, connections []Connection, customLinkTypes []LinkType, customComponents []Component) {
	w.Graph.Replace(parts, connections)
	w.Registry.SetCustoms(customLinkTypes)
	w.Catalog.SetCustoms(customComponents)
	w.Commit()
}

// ApplySync replaces the design with an AI design-sync result: the new parts
// and connections go through the same replace/commit path as manual edits,
// and any custom link types are registered and made visible.
func (w *Workspace) ApplySync(parts []Part, connections []Connection, customLinkTypes []LinkType) {
	for _, lt := range customLinkTypes {
		if _, exists := w.Registry.Lookup(lt.ID); exists {
			continue
		}
		if err := w.Registry.AddCustom(lt); err != nil {
			continue
		}
		w.Registry.SetVisible(lt.ID, true)
	}
	w.Graph.Replace(parts, connections)
	w.Graph.ClearSelection()
	w.Commit()
}

// NextPartID returns one greater than the highest part id in the graph,
// starting at 1 for an empty graph.
func (w *Workspace) NextPartID() int {
	max := 0
	for _, p := range w.Graph.parts {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}

// NextConnectionID returns one greater than the highest connection id.
func (w *Workspace) NextConnectionID() int {
	max := 0
	for _, c := range w.Graph.connections {
		if c.ID > max {
			max = c.ID
		}
	}
	return max + 1
}
