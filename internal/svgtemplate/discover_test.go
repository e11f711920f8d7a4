package svgtemplate

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hazmana/api-gateway/models"
)

const classicOverlay = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 500 900">
  <g id="Layer_1">
    <g id="host_name">
      <text transform="translate(250 400)" font-family="Frank Ruhl Libre" font-size="28">
        <tspan x="0" y="0">Jane &amp; John</tspan>
      </text>
    </g>
  </g>
</svg>`

func mapFS(files map[string]string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for name, content := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(content)}
	}
	return fsys
}

func TestDiscoverCatalogScenario(t *testing.T) {
	fsys := mapFS(map[string]string{
		"wedding/classic.png": "png-bytes",
		"wedding/classic.svg": classicOverlay,
	})

	templates, err := DiscoverCatalog(fsys, "/templates")
	require.NoError(t, err)
	require.Len(t, templates, 1)

	tmpl := templates[0]
	assert.Equal(t, "wedding-classic", tmpl.ID)
	assert.Equal(t, "Classic", tmpl.Name)
	assert.Equal(t, "Wedding", tmpl.Category)
	assert.Equal(t, "/templates/wedding/classic.png", tmpl.ThumbnailSrc)
	require.NotNil(t, tmpl.TextSVG)
	assert.Equal(t, "/templates/wedding/classic.svg", *tmpl.TextSVG)
	assert.Equal(t, 500, tmpl.Style.CanvasWidth)
	assert.Equal(t, 900, tmpl.Style.CanvasHeight)

	require.Len(t, tmpl.Fields, 1)
	assert.Equal(t, models.SvgField{
		ID:          "host_name",
		Label:       "Host Name",
		Placeholder: "Jane & John",
		RTL:         true,
	}, tmpl.Fields[0])
}

func TestDiscoverCatalogOrderingIsDeterministic(t *testing.T) {
	fsys := mapFS(map[string]string{
		"wedding/b.png":     "x",
		"wedding/a.png":     "x",
		"bar-mitzvah/z.jpg": "x",
		"bar-mitzvah/m.png": "x",
	})

	first, err := DiscoverCatalog(fsys, "/templates")
	require.NoError(t, err)

	ids := make([]string, len(first))
	for i, tmpl := range first {
		ids[i] = tmpl.ID
	}
	assert.Equal(t, []string{"bar-mitzvah-m", "bar-mitzvah-z", "wedding-a", "wedding-b"}, ids)

	second, err := DiscoverCatalog(fsys, "/templates")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDiscoverCatalogNameFormatting(t *testing.T) {
	fsys := mapFS(map[string]string{
		"bar-mitzvah/royal_gold-invite.png": "x",
	})

	templates, err := DiscoverCatalog(fsys, "/templates")
	require.NoError(t, err)
	require.Len(t, templates, 1)

	assert.Equal(t, "Bar Mitzvah", templates[0].Category)
	assert.Equal(t, "Royal Gold Invite", templates[0].Name)
}

func TestDiscoverCatalogHebrewNamesSurviveFormatting(t *testing.T) {
	fsys := mapFS(map[string]string{
		"חתונה/זהב-קלאסי.png": "x",
	})

	templates, err := DiscoverCatalog(fsys, "/templates")
	require.NoError(t, err)
	require.Len(t, templates, 1)

	// Hebrew has no upper case; formatting must pass the runes through
	// intact instead of mangling the leading byte.
	assert.Equal(t, "חתונה", templates[0].Category)
	assert.Equal(t, "זהב קלאסי", templates[0].Name)
	assert.True(t, utf8.ValidString(templates[0].Category))
	assert.True(t, utf8.ValidString(templates[0].Name))
}

func TestParseOverlayNonASCIILabel(t *testing.T) {
	info := ParseOverlay(`<svg viewBox="0 0 400 600"><g id="שם_המארח"><text><tspan>טקסט</tspan></text></g></svg>`, "")
	require.Len(t, info.Fields, 1)
	assert.Equal(t, "שם המארח", info.Fields[0].Label)
	assert.Equal(t, "טקסט", info.Fields[0].Placeholder)
}

func TestDiscoverCatalogNoOverlayUsesDefaults(t *testing.T) {
	fsys := mapFS(map[string]string{
		"wedding/plain.jpeg": "x",
	})

	templates, err := DiscoverCatalog(fsys, "/templates")
	require.NoError(t, err)
	require.Len(t, templates, 1)

	assert.Nil(t, templates[0].TextSVG)
	assert.Nil(t, templates[0].Fields)
	assert.Equal(t, DefaultCanvasWidth, templates[0].Style.CanvasWidth)
	assert.Equal(t, DefaultCanvasHeight, templates[0].Style.CanvasHeight)
}

func TestDiscoverCatalogOverlayWithoutRasterIsIgnored(t *testing.T) {
	fsys := mapFS(map[string]string{
		"wedding/orphan.svg": classicOverlay,
	})

	templates, err := DiscoverCatalog(fsys, "/templates")
	require.NoError(t, err)
	assert.Empty(t, templates)
}

func TestDiscoverCatalogCaseInsensitiveOverlayPairing(t *testing.T) {
	fsys := mapFS(map[string]string{
		"wedding/Classic.png": "x",
		"wedding/classic.SVG": classicOverlay,
	})

	templates, err := DiscoverCatalog(fsys, "/templates")
	require.NoError(t, err)
	require.Len(t, templates, 1)
	require.NotNil(t, templates[0].TextSVG)
	assert.Len(t, templates[0].Fields, 1)
}

func TestDiscoverCatalogFieldOverlayInvariant(t *testing.T) {
	fsys := mapFS(map[string]string{
		"wedding/classic.png":   "x",
		"wedding/classic.svg":   classicOverlay,
		"wedding/plain.png":     "x",
		"birthday/nofields.png": "x",
		"birthday/nofields.svg": `<svg viewBox="0 0 300 300"><g id="background"><text><tspan>bg</tspan></text></g></svg>`,
	})

	templates, err := DiscoverCatalog(fsys, "/templates")
	require.NoError(t, err)
	require.Len(t, templates, 3)

	for _, tmpl := range templates {
		if tmpl.Fields != nil {
			assert.NotNil(t, tmpl.TextSVG, "template %s has fields without an overlay", tmpl.ID)
		}
	}
}

func TestDiscoverCatalogRootFailure(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist")

	templates, err := DiscoverCatalog(os.DirFS(missing), "/templates")
	assert.Error(t, err)
	assert.Nil(t, templates)
}

func TestParseOverlayDuplicateIDFirstWins(t *testing.T) {
	content := `<svg viewBox="0 0 400 600">
	  <g id="host_name"><text><tspan>First</tspan></text></g>
	  <g id="host_name"><text><tspan>Second</tspan></text></g>
	</svg>`

	info := ParseOverlay(content, "/templates/x/y.svg")
	require.Len(t, info.Fields, 1)
	assert.Equal(t, "First", info.Fields[0].Placeholder)
}

func TestParseOverlayReservedIDsFiltered(t *testing.T) {
	content := `<svg viewBox="0 0 400 600">
	  <g id="layer_1"><text><tspan>a</tspan></text></g>
	  <g id="Layer 1"><text><tspan>b</tspan></text></g>
	  <g id="background"><text><tspan>c</tspan></text></g>
	  <g id="STATIC_TEXT"><text><tspan>d</tspan></text></g>
	  <g id="LayerExtra"><text><tspan>e</tspan></text></g>
	  <g id="event_title"><text><tspan>My Event</tspan></text></g>
	</svg>`

	info := ParseOverlay(content, "")
	require.Len(t, info.Fields, 1)
	assert.Equal(t, "event_title", info.Fields[0].ID)
	assert.Equal(t, "Event Title", info.Fields[0].Label)
	assert.Equal(t, "My Event", info.Fields[0].Placeholder)
}

func TestParseOverlayMissingViewBoxFallsBack(t *testing.T) {
	info := ParseOverlay(`<svg><g id="host_name"><text><tspan>hi</tspan></text></g></svg>`, "")
	assert.Equal(t, DefaultCanvasWidth, info.Style.CanvasWidth)
	assert.Equal(t, DefaultCanvasHeight, info.Style.CanvasHeight)
}

func TestParseOverlayRoundsViewBox(t *testing.T) {
	info := ParseOverlay(`<svg viewBox="0 0 443.62 629.5"></svg>`, "")
	assert.Equal(t, 444, info.Style.CanvasWidth)
	assert.Equal(t, 630, info.Style.CanvasHeight)
}

func TestParseOverlayGroupWithoutTspanGetsEmptyPlaceholder(t *testing.T) {
	info := ParseOverlay(`<svg viewBox="0 0 400 600"><g id="date_line"></g></svg>`, "")
	require.Len(t, info.Fields, 1)
	assert.Equal(t, "", info.Fields[0].Placeholder)
}

func TestParseOverlayZeroFieldsReturnsNil(t *testing.T) {
	info := ParseOverlay(`<svg viewBox="0 0 400 600"><g id="background"></g></svg>`, "")
	assert.Nil(t, info.Fields)
}
