package design_test

import (
	"math"
	"testing"

	"github.com/archmind/archmind/pkg/design"
)

func TestNextLayoutMode_Cycle(t *testing.T) {
	m := design.LayoutHierarchical
	want := []design.LayoutMode{design.LayoutSpatial, design.LayoutGrid, design.LayoutHierarchical}
	for i, w := range want {
		m = design.NextLayoutMode(m)
		if m != w {
			t.Fatalf("step %d: mode = %s, want %s", i, m, w)
		}
	}
}

func TestArrange_EmptyIsNil(t *testing.T) {
	if got := design.Arrange(nil, nil, design.LayoutGrid); got != nil {
		t.Fatalf("Arrange(empty) = %v, want nil", got)
	}
}

func TestArrangeGrid(t *testing.T) {
	parts := []design.Part{part(1, "a"), part(2, "b"), part(3, "c"), part(4, "d"), part(5, "e")}
	out := design.Arrange(parts, nil, design.LayoutGrid)

	// 5 parts → 3 columns, 200px spacing, origin (100,100).
	wantX := []float64{100, 300, 500, 100, 300}
	wantY := []float64{100, 100, 100, 300, 300}
	for i := range out {
		if out[i].X != wantX[i] || out[i].Y != wantY[i] {
			t.Fatalf("part %d at (%v,%v), want (%v,%v)", i, out[i].X, out[i].Y, wantX[i], wantY[i])
		}
	}
	// Input is not mutated.
	if parts[1].X != 0 {
		t.Fatal("Arrange mutated its input")
	}
}

func TestArrangeSpatial(t *testing.T) {
	parts := []design.Part{part(1, "a"), part(2, "b"), part(3, "c"), part(4, "d")}
	out := design.Arrange(parts, nil, design.LayoutSpatial)

	// 4 parts → radius max(150, 80) = 150 around (400,300).
	for i, p := range out {
		angle := 2 * math.Pi * float64(i) / 4
		wantX := 400 + 150*math.Cos(angle)
		wantY := 300 + 150*math.Sin(angle)
		if math.Abs(p.X-wantX) > 1e-9 || math.Abs(p.Y-wantY) > 1e-9 {
			t.Fatalf("part %d at (%v,%v), want (%v,%v)", i, p.X, p.Y, wantX, wantY)
		}
	}
}

func TestArrangeSpatial_RadiusGrowsWithCount(t *testing.T) {
	var parts []design.Part
	for i := 1; i <= 12; i++ {
		parts = append(parts, part(i, "p"))
	}
	out := design.Arrange(parts, nil, design.LayoutSpatial)
	// 12 parts → radius 240; part 0 sits at angle 0, i.e. (400+240, 300).
	if out[0].X != 640 || out[0].Y != 300 {
		t.Fatalf("part 0 at (%v,%v), want (640,300)", out[0].X, out[0].Y)
	}
}

func TestArrangeHierarchical_DegreeOrdering(t *testing.T) {
	parts := []design.Part{part(1, "leaf"), part(2, "hub"), part(3, "mid"), part(4, "lone")}
	conns := []design.Connection{
		conn(1, 2, 1),
		conn(2, 2, 3),
		conn(3, 2, 4),
		conn(4, 3, 1),
	}
	out := design.Arrange(parts, conns, design.LayoutHierarchical)

	// Degrees: hub=3, mid=2, leaf=2, lone=1. The stable sort keeps leaf
	// before mid on ties? No — leaf (id 1) precedes mid (id 3) in input
	// order, both degree 2, so row order is hub, leaf, mid, lone.
	if out[0].ID != 2 {
		t.Fatalf("first ranked part id = %d, want 2 (highest degree)", out[0].ID)
	}
	if out[1].ID != 1 || out[2].ID != 3 {
		t.Fatalf("tie order = %d,%d, want 1,3 (stable)", out[1].ID, out[2].ID)
	}
	if out[3].ID != 4 {
		t.Fatalf("last ranked part id = %d, want 4", out[3].ID)
	}

	// 4 parts → 2 rows of 2. Row 0 at y=100, row 1 at y=350; spacing
	// max(200, 800/2)=400, centered on x=400 → columns at 200 and 600.
	wantX := []float64{200, 600, 200, 600}
	wantY := []float64{100, 100, 350, 350}
	for i := range out {
		if out[i].X != wantX[i] || out[i].Y != wantY[i] {
			t.Fatalf("slot %d at (%v,%v), want (%v,%v)", i, out[i].X, out[i].Y, wantX[i], wantY[i])
		}
	}
}

func TestWorkspaceAutoArrange_CyclesAndSnapshotsOnce(t *testing.T) {
	w := design.NewWorkspace()
	w.LoadSample()
	base := w.History.Len()

	modes := []design.LayoutMode{design.LayoutHierarchical, design.LayoutSpatial, design.LayoutGrid, design.LayoutHierarchical}
	for i, want := range modes {
		if got := w.LayoutMode(); got != want {
			t.Fatalf("invocation %d uses mode %s, want %s", i, got, want)
		}
		if !w.AutoArrange() {
			t.Fatalf("AutoArrange %d returned false", i)
		}
	}
	if n := w.History.Len() - base; n != 4 {
		t.Fatalf("AutoArrange pushed %d snapshots, want 4", n)
	}
}

func TestWorkspaceAutoArrange_EmptyNoop(t *testing.T) {
	w := design.NewWorkspace()
	if w.AutoArrange() {
		t.Fatal("AutoArrange on empty graph should report false")
	}
	if w.LayoutMode() != design.LayoutHierarchical {
		t.Fatal("mode must not advance on empty graph")
	}
	if w.History.Len() != 0 {
		t.Fatal("no snapshot must be pushed on empty graph")
	}
}
