// Package design holds the in-memory model for an architecture sketch: typed
// parts connected by styled links, an undo/redo history of full snapshots, a
// catalog of draggable component templates, a registry of link styles, and
// the auto-arrangement layouts.
//
// All state is session-scoped and owned by a single goroutine (the request
// handler for that session); the package itself does no locking.
package design

import "errors"

// Sentinel errors.
var (
	// ErrDuplicateName is returned when a custom link type's name collides
	// (case-insensitively) with an existing type.
	ErrDuplicateName = errors.New("design: link type name already exists")

	// ErrUnknownProperty is returned when UpdatePartProperty is given a
	// property key the model does not know.
	ErrUnknownProperty = errors.New("design: unknown part property")

	// ErrInvalidPropertyValue is returned when UpdatePartProperty is given
	// a value of the wrong type for the property; the part is left
	// unchanged.
	ErrInvalidPropertyValue = errors.New("design: invalid part property value")
)

// Part is a node in the design graph. The ID is caller-assigned and unique
// within a session; ids are never reused after deletion.
type Part struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
	Name string `json:"name"`

	// CustomColor is a 6-digit hex color used for rendering.
	CustomColor string `json:"customColor"`

	// Functionality is a free-text description of what the part does.
	Functionality string `json:"functionality,omitempty"`

	ImageURL   string `json:"imageUrl,omitempty"`
	Technology string `json:"technology,omitempty"`
	Version    string `json:"version,omitempty"`
	Capacity   string `json:"capacity,omitempty"`
	SLA        string `json:"sla,omitempty"`

	// BOM fields. Cost is kept as a string because the UI treats it as
	// free-form input; the BOM export parses it and defaults to 0.
	Cost      string `json:"cost,omitempty"`
	CostUnit  string `json:"costUnit,omitempty"`
	Quantity  int    `json:"quantity,omitempty"`
	SourceURL string `json:"sourceUrl,omitempty"`

	// Canvas position, unconstrained floating point.
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Connection is a directed edge between two parts. From and To must reference
// existing part ids; supplying a dangling reference is a caller error.
//
// Color, StrokeWidth and DashArray are a style snapshot copied from the
// selected link type at creation time. Changing a link type later does not
// restyle existing connections.
type Connection struct {
	From        int    `json:"from"`
	To          int    `json:"to"`
	ID          int    `json:"id"`
	LinkType    string `json:"linkType"`
	Color       string `json:"color"`
	StrokeWidth int    `json:"strokeWidth"`
	DashArray   string `json:"dashArray"`
}

// LinkType is a named, reusable visual style for connections. Built-in ids
// are fixed lowercase tokens; custom ids are derived as "custom-<slug>".
type LinkType struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	StrokeWidth int    `json:"strokeWidth"`
	DashArray   string `json:"dashArray"`
	Description string `json:"description"`
}

// Component is a catalog template describing a draggable part type.
type Component struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon,omitempty"`
	CustomColor string `json:"customColor"`
}

// Category groups built-in components for the component library.
type Category struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Icon       string      `json:"icon,omitempty"`
	Components []Component `json:"components"`
}

// Snapshot is a full deep copy of the graph at one point in time, retained
// for undo/redo.
type Snapshot struct {
	Parts       []Part       `json:"parts"`
	Connections []Connection `json:"connections"`
}

// Part and Connection contain no reference types, so copying the slices is a
// deep copy.
func cloneParts(parts []Part) []Part {
	cp := make([]Part, len(parts))
	copy(cp, parts)
	return cp
}

func cloneConnections(conns []Connection) []Connection {
	cp := make([]Connection, len(conns))
	copy(cp, conns)
	return cp
}
