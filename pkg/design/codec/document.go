// Package codec serializes designs to their portable document form and
// derives the one-way report exports (bill of materials, architecture doc).
package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/archmind/archmind/pkg/design"
)

// Document is the portable design file: everything needed to reconstruct a
// session apart from history.
type Document struct {
	Parts            []design.Part       `json:"parts"`
	Connections      []design.Connection `json:"connections"`
	CustomLinkTypes  []design.LinkType   `json:"customLinkTypes"`
	CustomComponents []design.Component  `json:"customComponents"`
}

// DefaultFilename is the suggested download name for exported designs.
const DefaultFilename = "architecture-design.json"

// EncodeDocument writes the document as indented JSON.
func EncodeDocument(w io.Writer, doc Document) error {
	doc.normalize()
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("codec: encode design: %w", err)
	}
	return nil
}

// DecodeDocument parses a design file. Missing keys default to empty
// collections; malformed JSON is a visible error, never an empty design.
func DecodeDocument(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("codec: malformed design file: %w", err)
	}
	doc.normalize()
	return doc, nil
}

// normalize replaces nil collections with empty ones so exports always carry
// all four keys and imports never hand nil slices to the workspace.
func (d *Document) normalize() {
	if d.Parts == nil {
		d.Parts = []design.Part{}
	}
	if d.Connections == nil {
		d.Connections = []design.Connection{}
	}
	if d.CustomLinkTypes == nil {
		d.CustomLinkTypes = []design.LinkType{}
	}
	if d.CustomComponents == nil {
		d.CustomComponents = []design.Component{}
	}
}

// FromWorkspace captures a workspace's exportable state.
func FromWorkspace(w *design.Workspace) Document {
	doc := Document{
		Parts:            w.Graph.Parts(),
		Connections:      w.Graph.Connections(),
		CustomLinkTypes:  w.Registry.Customs(),
		CustomComponents: w.Catalog.Customs(),
	}
	doc.normalize()
	return doc
}
