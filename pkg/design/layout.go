package design

import (
	"math"
	"sort"
)

// LayoutMode selects an auto-arrangement strategy.
type LayoutMode string

const (
	// LayoutHierarchical ranks parts by degree and stacks them in rows,
	// most-connected first, approximating a hub-and-spoke hierarchy.
	LayoutHierarchical LayoutMode = "hierarchical"

	// LayoutSpatial places all parts evenly on a circle whose radius grows
	// with part count.
	LayoutSpatial LayoutMode = "spatial"

	// LayoutGrid is a row-major grid with fixed spacing.
	LayoutGrid LayoutMode = "grid"
)

// NextLayoutMode advances to the next strategy in the fixed cycle
// hierarchical → spatial → grid → hierarchical.
func NextLayoutMode(m LayoutMode) LayoutMode {
	switch m {
	case LayoutHierarchical:
		return LayoutSpatial
	case LayoutSpatial:
		return LayoutGrid
	default:
		return LayoutHierarchical
	}
}

// Layout geometry. Shared canvas center and band constants across modes.
const (
	layoutCenterX = 400
	layoutCenterY = 300
	layoutStartX  = 100
	layoutStartY  = 100

	hierarchicalRowHeight = 250
	gridSpacing           = 200
)

// Arrange computes new positions for every part under the given mode and
// returns a repositioned copy. It is a pure function: the inputs are not
// mutated, and the same inputs always produce the same output. An empty part
// list yields nil.
func Arrange(parts []Part, connections []Connection, mode LayoutMode) []Part {
	if len(parts) == 0 {
		return nil
	}
	switch mode {
	case LayoutSpatial:
		return arrangeSpatial(parts)
	case LayoutGrid:
		return arrangeGrid(parts)
	default:
		return arrangeHierarchical(parts, connections)
	}
}

// arrangeHierarchical sorts parts by descending degree (stable, so ties keep
// insertion order) and partitions them into ceil(sqrt(n)) rows of up to
// ceil(sqrt(n)) items, each row centered on the canvas center x.
func arrangeHierarchical(parts []Part, connections []Connection) []Part {
	degree := make(map[int]int, len(parts))
	for _, c := range connections {
		degree[c.From]++
		if c.To != c.From {
			degree[c.To]++
		}
	}

	sorted := cloneParts(parts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return degree[sorted[i].ID] > degree[sorted[j].ID]
	})

	levels := int(math.Ceil(math.Sqrt(float64(len(parts)))))
	for i := range sorted {
		level := i / levels
		posInLevel := i % levels
		rowLen := levels
		if remaining := len(sorted) - level*levels; remaining < rowLen {
			rowLen = remaining
		}
		spacing := math.Max(200, 800/float64(rowLen))
		startX := layoutCenterX - float64(rowLen-1)*spacing/2
		sorted[i].X = startX + float64(posInLevel)*spacing
		sorted[i].Y = layoutStartY + float64(level)*hierarchicalRowHeight
	}
	return sorted
}

// arrangeSpatial spreads parts on a circle in insertion order. The radius
// grows linearly with part count to avoid crowding.
func arrangeSpatial(parts []Part) []Part {
	out := cloneParts(parts)
	radius := math.Max(150, float64(len(parts))*20)
	for i := range out {
		angle := 2 * math.Pi * float64(i) / float64(len(out))
		out[i].X = layoutCenterX + radius*math.Cos(angle)
		out[i].Y = layoutCenterY + radius*math.Sin(angle)
	}
	return out
}

// arrangeGrid lays parts out row-major with ceil(sqrt(n)) columns.
func arrangeGrid(parts []Part) []Part {
	out := cloneParts(parts)
	cols := int(math.Ceil(math.Sqrt(float64(len(parts)))))
	for i := range out {
		out[i].X = layoutStartX + float64(i%cols)*gridSpacing
		out[i].Y = layoutStartY + float64(i/cols)*gridSpacing
	}
	return out
}
