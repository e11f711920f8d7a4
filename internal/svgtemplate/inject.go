package svgtemplate

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"hazmana/api-gateway/models"
)

var (
	rotateRe    = regexp.MustCompile(`rotate\(\s*([\d.+-]+)`)
	scaleRe     = regexp.MustCompile(`scale\(\s*([\d.+-]+)`)
	translateRe = regexp.MustCompile(`translate\(\s*([\d.+-]+)`)
)

// Rotations this close to zero are treated as unrotated for recentering.
const rotationEpsilonDeg = 2

// InjectFieldValues substitutes user text into an SVG overlay's field groups
// and recenters each edited run so its visual anchor matches the original
// design, regardless of the replacement's length.
//
// Per field: the group is located by ID (after stripping the authoring-tool
// marker "*" from all group IDs), and its first <text>/<tspan> pair is
// edited. A field absent from values keeps its original text; an empty-string
// value clears it. Recentering is skipped for multi-tspan text elements and
// for documents without a positive viewBox width. Unrotated text is centered
// at the canvas's horizontal midpoint in local coordinates; rotated text is
// anchored at half the measured width of its original content, which keeps
// the new text at the same canvas point the designer placed it.
//
// The function never fails: input that cannot be parsed is returned
// unmodified, and missing groups or runs are silent no-ops for that field.
func InjectFieldValues(svgText string, fields []models.SvgField, values map[string]string) string {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(svgText); err != nil {
		return svgText
	}
	root := doc.Root()
	if root == nil {
		return svgText
	}

	// Fill the rendering container rather than the declared pixel size.
	root.CreateAttr("width", "100%")
	root.CreateAttr("height", "100%")

	stripGroupIDMarkers(root)

	svgWidth := viewBoxWidth(root)

	for _, field := range fields {
		group := findByID(root, field.ID)
		if group == nil {
			continue
		}
		textEl := firstDescendant(group, "text")
		if textEl == nil {
			continue
		}
		tspan := firstDescendant(textEl, "tspan")
		if tspan == nil {
			continue
		}

		value, ok := values[field.ID]
		if !ok {
			continue
		}

		// Capture before overwriting; the rotated case centers on the
		// original content's measured width.
		originalText := strings.TrimSpace(tspan.Text())
		tspan.SetText(value)

		if svgWidth <= 0 || countDescendants(textEl, "tspan") > 1 {
			continue
		}

		transform := textEl.SelectAttrValue("transform", "")
		rotation := math.Abs(matchFloat(rotateRe, transform, 0))
		sx := matchFloat(scaleRe, transform, 1)

		textEl.CreateAttr("text-anchor", "middle")

		var localCenterX float64
		if rotation < rotationEpsilonDeg {
			tx := matchFloat(translateRe, transform, 0)
			if sx > 0 {
				localCenterX = (svgWidth/2 - tx) / sx
			} else {
				localCenterX = svgWidth / 2
			}
		} else {
			fontFamily := textEl.SelectAttrValue("font-family", "sans-serif")
			fontSize := parseFloatOr(textEl.SelectAttrValue("font-size", ""), 12)
			localCenterX = MeasureTextWidth(originalText, fontFamily, fontSize) / 2
		}

		tspan.CreateAttr("x", formatCoord(localCenterX))
	}

	out, err := doc.WriteToString()
	if err != nil {
		return svgText
	}
	return out
}

// stripGroupIDMarkers removes the "*" marker some authoring tools leave in
// group IDs, so lookups match the clean IDs discovery reported.
func stripGroupIDMarkers(el *etree.Element) {
	if el.Tag == "g" {
		if id := el.SelectAttrValue("id", ""); strings.Contains(id, "*") {
			el.CreateAttr("id", strings.ReplaceAll(id, "*", ""))
		}
	}
	for _, child := range el.ChildElements() {
		stripGroupIDMarkers(child)
	}
}

// findByID returns the first element in document order whose id attribute
// equals id, or nil.
func findByID(el *etree.Element, id string) *etree.Element {
	if el.SelectAttrValue("id", "") == id {
		return el
	}
	for _, child := range el.ChildElements() {
		if found := findByID(child, id); found != nil {
			return found
		}
	}
	return nil
}

// firstDescendant returns the first strict descendant of el with the given
// tag, in document order, or nil.
func firstDescendant(el *etree.Element, tag string) *etree.Element {
	for _, child := range el.ChildElements() {
		if child.Tag == tag {
			return child
		}
		if found := firstDescendant(child, tag); found != nil {
			return found
		}
	}
	return nil
}

func countDescendants(el *etree.Element, tag string) int {
	n := 0
	for _, child := range el.ChildElements() {
		if child.Tag == tag {
			n++
		}
		n += countDescendants(child, tag)
	}
	return n
}

// viewBoxWidth returns the third viewBox component, or 0 when the document
// declares no usable viewBox.
func viewBoxWidth(root *etree.Element) float64 {
	parts := numSepRe.Split(strings.TrimSpace(root.SelectAttrValue("viewBox", "")), -1)
	if len(parts) < 3 {
		return 0
	}
	return parseFloatOr(parts[2], 0)
}

// matchFloat extracts the first captured number of re from s, or returns def
// when absent or unparsable.
func matchFloat(re *regexp.Regexp, s string, def float64) float64 {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return def
	}
	return parseFloatOr(m[1], def)
}

func parseFloatOr(s string, def float64) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return v
}

// formatCoord rounds to one decimal place and renders without a trailing
// zero, matching how the overlays were authored ("250", "12.3").
func formatCoord(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64)
}
