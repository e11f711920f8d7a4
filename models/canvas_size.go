package models

// CanvasSize is one of the blank-canvas presets offered when a user starts
// from scratch instead of a template.
type CanvasSize struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
}

// CanvasSizes lists the supported blank-canvas presets, in display order.
var CanvasSizes = []CanvasSize{
	{Key: "portrait", Label: "Portrait", Description: "Classic invitation format", Width: 450, Height: 800},
	{Key: "square", Label: "Square", Description: "Instagram post · 1:1", Width: 600, Height: 600},
	{Key: "a4", Label: "A4 / Letter", Description: "Print-ready format", Width: 595, Height: 842},
	{Key: "landscape", Label: "Landscape", Description: "Event banner · 16:9", Width: 800, Height: 450},
	{Key: "story", Label: "Story / Reel", Description: "Instagram & TikTok · 9:16", Width: 540, Height: 960},
}

// GetSizeByKey returns the preset for key, falling back to the first
// (portrait) preset for unknown keys.
func GetSizeByKey(key string) CanvasSize {
	for _, s := range CanvasSizes {
		if s.Key == key {
			return s
		}
	}
	return CanvasSizes[0]
}

// DefaultPositions returns the legacy fixed-field anchor points for a blank
// canvas of the given dimensions.
func DefaultPositions(w, h int) TemplateStyle {
	round := func(f float64) int { return int(f + 0.5) }
	titleX, titleY := w/2, round(float64(h)*0.28)
	nameX, nameY := w/2, round(float64(h)*0.40)
	dateX, dateY := w/2, round(float64(h)*0.52)
	return TemplateStyle{
		CanvasWidth:  w,
		CanvasHeight: h,
		TitleX:       &titleX, TitleY: &titleY,
		NameX: &nameX, NameY: &nameY,
		DateX: &dateX, DateY: &dateY,
	}
}
