package design

import (
	"strings"
)

// BuiltinLinkTypes returns the fixed built-in link styles. The result is a
// fresh slice; the entries themselves are immutable configuration.
func BuiltinLinkTypes() []LinkType {
	return []LinkType{
		{
			ID:          "data-flow",
			Name:        "Data Flow",
			Color:       "#3b82f6",
			StrokeWidth: 2,
			DashArray:   "",
			Description: "Synchronous data transfer between services",
		},
		{
			ID:          "async-flow",
			Name:        "Async Flow",
			Color:       "#8b5cf6",
			StrokeWidth: 2,
			DashArray:   "5,5",
			Description: "Asynchronous or event-driven communication",
		},
		{
			ID:          "dependency",
			Name:        "Dependency",
			Color:       "#ef4444",
			StrokeWidth: 2,
			DashArray:   "10,5",
			Description: "Service depends on another service",
		},
	}
}

// Registry is the catalog of link types: an immutable built-in set plus a
// growable custom set, and the per-session visibility set.
//
// Adding a custom type does not make it visible; callers that want new types
// rendered immediately must toggle visibility themselves.
type Registry struct {
	builtins []LinkType
	customs  []LinkType
	visible  map[string]bool
}

// NewRegistry creates a registry over the given built-in set. All built-ins
// start visible; custom types start hidden until toggled.
func NewRegistry(builtins []LinkType) *Registry {
	r := &Registry{
		builtins: builtins,
		visible:  make(map[string]bool, len(builtins)),
	}
	for _, lt := range builtins {
		r.visible[lt.ID] = true
	}
	return r
}

// All returns every known link type, built-ins first.
func (r *Registry) All() []LinkType {
	out := make([]LinkType, 0, len(r.builtins)+len(r.customs))
	out = append(out, r.builtins...)
	out = append(out, r.customs...)
	return out
}

// Customs returns the custom link types.
func (r *Registry) Customs() []LinkType {
	out := make([]LinkType, len(r.customs))
	copy(out, r.customs)
	return out
}

// Lookup finds a link type by id. Linear scan; the registry holds tens of
// entries at most.
func (r *Registry) Lookup(id string) (LinkType, bool) {
	for _, lt := range r.All() {
		if lt.ID == id {
			return lt, true
		}
	}
	return LinkType{}, false
}

// IsBuiltin reports whether id names a built-in link type.
func (r *Registry) IsBuiltin(id string) bool {
	for _, lt := range r.builtins {
		if lt.ID == id {
			return true
		}
	}
	return false
}

// AddCustom appends a custom link type. The name must not collide
// case-insensitively with any existing type's name.
func (r *Registry) AddCustom(lt LinkType) error {
	name := strings.ToLower(lt.Name)
	for _, existing := range r.All() {
		if strings.ToLower(existing.Name) == name {
			return ErrDuplicateName
		}
	}
	r.customs = append(r.customs, lt)
	return nil
}

// RemoveCustom removes a custom link type by id. Built-ins are immutable and
// cannot be removed.
func (r *Registry) RemoveCustom(id string) {
	for i, lt := range r.customs {
		if lt.ID == id {
			r.customs = append(r.customs[:i], r.customs[i+1:]...)
			delete(r.visible, id)
			return
		}
	}
}

// SetCustoms replaces the whole custom set (import path). Visibility of the
// imported types is enabled so an imported design renders completely.
func (r *Registry) SetCustoms(customs []LinkType) {
	r.customs = make([]LinkType, len(customs))
	copy(r.customs, customs)
	for _, lt := range customs {
		r.visible[lt.ID] = true
	}
}

// ToggleVisibility flips a link type's membership in the visibility set.
func (r *Registry) ToggleVisibility(id string) {
	if r.visible[id] {
		delete(r.visible, id)
		return
	}
	r.visible[id] = true
}

// SetVisible adds or removes a link type from the visibility set.
func (r *Registry) SetVisible(id string, visible bool) {
	if visible {
		r.visible[id] = true
		return
	}
	delete(r.visible, id)
}

// Visible returns a copy of the visibility set.
func (r *Registry) Visible() map[string]bool {
	out := make(map[string]bool, len(r.visible))
	for id := range r.visible {
		out[id] = true
	}
	return out
}

// IsVisible reports whether connections of the given link type are rendered.
func (r *Registry) IsVisible(id string) bool { return r.visible[id] }

// CustomLinkTypeID derives the deterministic id for a custom link type name:
// "custom-" plus the lowercased name with runs of non-alphanumerics collapsed
// to single dashes. The "custom-" prefix keeps derived ids disjoint from the
// built-in tokens.
func CustomLinkTypeID(name string) string {
	var b strings.Builder
	b.WriteString("custom-")
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if !dash {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
