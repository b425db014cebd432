package aisync

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// DesignPayload is the untrusted document returned by the generative
// backend. Nothing in it crosses into the typed graph model until the whole
// payload passes validation.
type DesignPayload struct {
	Parts       []PartPayload       `json:"parts"`
	Connections []ConnectionPayload `json:"connections"`
	Description string              `json:"description"`
}

// PartPayload mirrors design.Part without an authoritative id: for generate
// responses ids are absent and assigned on receipt; for edit responses they
// carry over from the existing design.
type PartPayload struct {
	ID            int     `json:"id,omitempty"`
	Type          string  `json:"type"`
	Name          string  `json:"name"`
	CustomColor   string  `json:"customColor,omitempty"`
	Functionality string  `json:"functionality,omitempty"`
	ImageURL      string  `json:"imageUrl,omitempty"`
	Technology    string  `json:"technology,omitempty"`
	Version       string  `json:"version,omitempty"`
	Capacity      string  `json:"capacity,omitempty"`
	SLA           string  `json:"sla,omitempty"`
	Cost          string  `json:"cost,omitempty"`
	CostUnit      string  `json:"costUnit,omitempty"`
	Quantity      int     `json:"quantity,omitempty"`
	SourceURL     string  `json:"sourceUrl,omitempty"`
	X             float64 `json:"x,omitempty"`
	Y             float64 `json:"y,omitempty"`
}

// ConnectionPayload mirrors design.Connection. In generate responses From
// and To are 0-based indices into Parts; in edit responses they are real
// part ids.
type ConnectionPayload struct {
	From        int    `json:"from"`
	To          int    `json:"to"`
	ID          int    `json:"id,omitempty"`
	LinkType    string `json:"linkType"`
	Color       string `json:"color"`
	StrokeWidth int    `json:"strokeWidth,omitempty"`
	DashArray   string `json:"dashArray,omitempty"`
}

var (
	hexColorRe  = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
	dashArrayRe = regexp.MustCompile(`^[0-9]+(,[0-9]+)*$`)
	codeFenceRe = regexp.MustCompile("^```(?:json)?\\s*|\\s*```$")
)

// ParseDesignPayload turns raw model output into a payload. It strips an
// optional code fence, requires the remainder to be a single JSON object
// (starts with '{' and ends with '}'), and parses it, repairing minor JSON
// syntax damage. Anything else is a format error; there is no partial
// recovery.
func ParseDesignPayload(text string) (*DesignPayload, error) {
	s := strings.TrimSpace(codeFenceRe.ReplaceAllString(strings.TrimSpace(text), ""))
	if !strings.HasPrefix(s, "{") || !strings.HasSuffix(s, "}") {
		return nil, newError(KindFormat, "model did not return a JSON design document")
	}
	var p DesignPayload
	if err := json.Unmarshal([]byte(s), &p); err != nil {
		if _, ok := err.(*json.SyntaxError); ok {
			fixed, rerr := jsonrepair.JSONRepair(s)
			if rerr == nil {
				err = json.Unmarshal([]byte(fixed), &p)
			}
		}
		if err != nil {
			return nil, wrapError(KindFormat, err, "model returned unparseable JSON")
		}
	}
	return &p, nil
}

// AddressMode says how a payload connection addresses its endpoints.
type AddressMode int

const (
	// AddressByIndex: From/To are 0-based indices into the payload parts
	// (generate responses).
	AddressByIndex AddressMode = iota

	// AddressByID: From/To are real part ids (edit responses).
	AddressByID
)

// ValidateConnection checks one payload connection. partsCount bounds the
// index range in AddressByIndex mode; knownIDs is the acceptable id set in
// AddressByID mode. StrokeWidth 0 means absent and defaults to 2 before the
// range check; DashArray defaults to solid.
func ValidateConnection(c *ConnectionPayload, mode AddressMode, partsCount int, knownIDs map[int]bool) error {
	if c.LinkType == "" {
		return newError(KindValidation, "connection %d→%d: missing linkType", c.From, c.To)
	}
	if c.Color == "" {
		return newError(KindValidation, "connection %d→%d: missing color", c.From, c.To)
	}
	if !hexColorRe.MatchString(c.Color) {
		return newError(KindValidation, "connection %d→%d: invalid color %q, want #RRGGBB", c.From, c.To, c.Color)
	}
	if c.StrokeWidth == 0 {
		c.StrokeWidth = 2
	}
	if c.StrokeWidth < 1 || c.StrokeWidth > 4 {
		return newError(KindValidation, "connection %d→%d: strokeWidth %d out of range [1,4]", c.From, c.To, c.StrokeWidth)
	}
	if c.DashArray != "" && !dashArrayRe.MatchString(c.DashArray) {
		return newError(KindValidation, "connection %d→%d: invalid dashArray %q", c.From, c.To, c.DashArray)
	}

	switch mode {
	case AddressByIndex:
		if c.From < 0 || c.From >= partsCount || c.To < 0 || c.To >= partsCount {
			return newError(KindValidation,
				"connection references part index out of range [0,%d): from=%d to=%d", partsCount, c.From, c.To)
		}
	case AddressByID:
		if !knownIDs[c.From] || !knownIDs[c.To] {
			return newError(KindValidation,
				"connection references unknown part id: from=%d to=%d", c.From, c.To)
		}
	}
	return nil
}
