package codec

// Raster capture parameters. The engine does not rasterize the canvas — that
// happens in the rendering layer — but it owns the parameter policy so the
// clamping and exclusion rules stay testable.

// Watermark is stamped onto every raster export.
const Watermark = "Made with ArchMind"

// ExcludedChrome lists the canvas overlay class names omitted from raster
// capture (minimap, zoom controls, attribution).
var ExcludedChrome = []string{"react-flow__minimap", "react-flow__controls", "react-flow__attribution"}

// RasterOptions describes one raster capture of the live canvas.
type RasterOptions struct {
	// Width and Height are the canvas's live pixel dimensions.
	Width  int `json:"width"`
	Height int `json:"height"`

	// Scale is the device pixel ratio clamped to [1, 2].
	Scale float64 `json:"scale"`

	Watermark string `json:"watermark"`
}

// NewRasterOptions builds capture options for the given canvas size and
// device pixel ratio.
func NewRasterOptions(width, height int, devicePixelRatio float64) RasterOptions {
	return RasterOptions{
		Width:     width,
		Height:    height,
		Scale:     ClampScale(devicePixelRatio),
		Watermark: Watermark,
	}
}

// ClampScale bounds a device pixel ratio to the supported 1–2x range.
func ClampScale(ratio float64) float64 {
	if ratio < 1 {
		return 1
	}
	if ratio > 2 {
		return 2
	}
	return ratio
}
