// Package svgtemplate implements the template catalog pipeline: discovering
// editable text fields inside SVG overlay assets and injecting user-supplied
// text back into them while preserving the overlay's visual centering.
package svgtemplate

import (
	"html"
	"io/fs"
	"math"
	"path"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"hazmana/api-gateway/models"
)

// Fallback canvas geometry for templates without a usable viewBox.
const (
	DefaultCanvasWidth  = 444
	DefaultCanvasHeight = 630
)

var (
	rasterRe  = regexp.MustCompile(`(?i)\.(png|jpg|jpeg)$`)
	viewBoxRe = regexp.MustCompile(`viewBox=["']([^"']+)["']`)
	gTagRe    = regexp.MustCompile(`<g\b([^>]*)>`)
	idAttrRe  = regexp.MustCompile(`\bid="([^"]+)"`)
	tspanRe   = regexp.MustCompile(`<tspan[^>]*>([^<]*)<`)
	sepRe     = regexp.MustCompile(`[-_]`)
	numSepRe  = regexp.MustCompile(`[\s,]+`)
)

// Group IDs that are structural rather than user-editable. Any ID starting
// with "layer" (case-insensitive) is skipped as well.
var skipIDs = map[string]bool{
	"static_text": true,
	"layer_1":     true,
	"layer 1":     true,
	"background":  true,
}

// capitalizeWords uppercases the first rune of each space-separated word.
// Uncased scripts (Hebrew dominates the template set) pass through unchanged.
func capitalizeWords(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// folderToCategory turns "bar-mitzvah" into "Bar Mitzvah".
func folderToCategory(folder string) string {
	return capitalizeWords(strings.ReplaceAll(folder, "-", " "))
}

// stemToName turns "classic-cream" into "Classic Cream".
func stemToName(stem string) string {
	return capitalizeWords(sepRe.ReplaceAllString(stem, " "))
}

// idToLabel turns "host_name" into "Host Name".
func idToLabel(id string) string {
	return capitalizeWords(sepRe.ReplaceAllString(id, " "))
}

// OverlayInfo is the result of parsing one SVG overlay source.
type OverlayInfo struct {
	TextSVG string
	Fields  []models.SvgField
	Style   models.TemplateStyle
}

// ParseOverlay extracts the canvas geometry and editable field definitions
// from an SVG overlay's source text. The scan is lexical, not a full XML
// parse: fields are the <g id> groups in document order, minus structural
// groups, with first-occurrence-wins on duplicate IDs. Each field's
// placeholder is the first <tspan> text appearing after its group's opening
// tag (entity-decoded and trimmed; empty when none follows).
func ParseOverlay(content, publicURL string) OverlayInfo {
	width, height := DefaultCanvasWidth, DefaultCanvasHeight
	if m := viewBoxRe.FindStringSubmatch(content); m != nil {
		parts := numSepRe.Split(strings.TrimSpace(m[1]), -1)
		if len(parts) >= 4 {
			if w, err := strconv.ParseFloat(parts[2], 64); err == nil {
				width = int(math.Round(w))
			}
			if h, err := strconv.ParseFloat(parts[3], 64); err == nil {
				height = int(math.Round(h))
			}
		}
	}

	var fields []models.SvgField
	seen := map[string]bool{}

	for _, loc := range gTagRe.FindAllStringSubmatchIndex(content, -1) {
		attrs := content[loc[2]:loc[3]]
		idMatch := idAttrRe.FindStringSubmatch(attrs)
		if idMatch == nil {
			continue
		}
		gID := idMatch[1]

		lower := strings.ToLower(gID)
		if seen[gID] || skipIDs[lower] || strings.HasPrefix(lower, "layer") {
			continue
		}
		seen[gID] = true

		placeholder := ""
		if m := tspanRe.FindStringSubmatch(content[loc[1]:]); m != nil {
			placeholder = html.UnescapeString(strings.TrimSpace(m[1]))
		}

		fields = append(fields, models.SvgField{
			ID:          gID,
			Label:       idToLabel(gID),
			Placeholder: placeholder,
			RTL:         true,
		})
	}

	return OverlayInfo{
		TextSVG: publicURL,
		Fields:  fields,
		Style:   models.TemplateStyle{CanvasWidth: width, CanvasHeight: height},
	}
}

// DiscoverCatalog walks a template asset root laid out as
// {category}/{stem}.{png|jpg|jpeg} with optional same-stem .svg overlays and
// returns the ordered template catalog. Ordering is deterministic: folders
// lexicographic, then raster files lexicographic within each folder. A
// raster without an overlay yields a template with the default canvas size
// and no fields; an overlay without a raster yields nothing.
//
// Errors reading an individual folder or overlay are scoped to that entry
// (the folder is skipped, or the template falls back to overlay-less mode).
// Only a failure to list the root itself is returned to the caller.
func DiscoverCatalog(fsys fs.FS, publicBase string) ([]models.Template, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	templates := []models.Template{}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		folder := entry.Name()
		category := folderToCategory(folder)

		files, err := fs.ReadDir(fsys, folder)
		if err != nil {
			continue
		}

		names := make([]string, 0, len(files))
		for _, f := range files {
			if !f.IsDir() {
				names = append(names, f.Name())
			}
		}
		sort.Strings(names)

		for _, imgFile := range names {
			if !rasterRe.MatchString(imgFile) {
				continue
			}
			stem := rasterRe.ReplaceAllString(imgFile, "")

			tmpl := models.Template{
				ID:           folder + "-" + stem,
				Name:         stemToName(stem),
				Category:     category,
				ThumbnailSrc: publicBase + "/" + folder + "/" + imgFile,
				Style:        models.TemplateStyle{CanvasWidth: DefaultCanvasWidth, CanvasHeight: DefaultCanvasHeight},
			}

			if svgFile := findOverlay(names, stem); svgFile != "" {
				content, err := fs.ReadFile(fsys, path.Join(folder, svgFile))
				if err == nil {
					info := ParseOverlay(string(content), publicBase+"/"+folder+"/"+svgFile)
					textSVG := info.TextSVG
					tmpl.TextSVG = &textSVG
					tmpl.Fields = info.Fields
					tmpl.Style = info.Style
				}
			}

			templates = append(templates, tmpl)
		}
	}

	return templates, nil
}

// findOverlay returns the file whose name case-insensitively equals
// "{stem}.svg", or "" when the folder has no matching overlay.
func findOverlay(names []string, stem string) string {
	want := strings.ToLower(stem) + ".svg"
	for _, n := range names {
		if strings.ToLower(n) == want {
			return n
		}
	}
	return ""
}
