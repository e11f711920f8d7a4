package models

// SvgField is one user-editable text region inside an SVG overlay,
// identified by the <g id="..."> it was discovered from.
type SvgField struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Placeholder string `json:"placeholder"`
	RTL         bool   `json:"rtl"`
}

// TemplateStyle carries the canvas geometry for a template, plus the legacy
// studio positioning fields used when a template has no SVG overlay.
type TemplateStyle struct {
	CanvasWidth  int `json:"canvasWidth"`
	CanvasHeight int `json:"canvasHeight"`

	OverlayOpacity *float64 `json:"overlayOpacity,omitempty"`
	TitleX         *int     `json:"titleX,omitempty"`
	TitleY         *int     `json:"titleY,omitempty"`
	NameX          *int     `json:"nameX,omitempty"`
	NameY          *int     `json:"nameY,omitempty"`
	DateX          *int     `json:"dateX,omitempty"`
	DateY          *int     `json:"dateY,omitempty"`
}

// Template is one design unit in the catalog: a raster background paired with
// an optional SVG text overlay whose editable fields are auto-discovered.
//
// Invariant: Fields is non-nil only when TextSVG is non-nil. A template
// without an overlay (or whose overlay yields no fields) renders in the
// legacy fixed-position mode.
type Template struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Category     string        `json:"category"`
	ThumbnailSrc string        `json:"thumbnailSrc"`
	TextSVG      *string       `json:"textSvg,omitempty"`
	Fields       []SvgField    `json:"fields,omitempty"`
	Style        TemplateStyle `json:"style"`
}
