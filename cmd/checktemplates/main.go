// Command checktemplates lints the template asset directory: every SVG
// overlay should declare a viewBox, sit next to a same-stem raster whose
// aspect ratio matches, and expose at least one editable field group.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/disintegration/imaging"

	"hazmana/api-gateway/internal/svgtemplate"
)

const (
	reset  = "\x1b[0m"
	bold   = "\x1b[1m"
	green  = "\x1b[32m"
	red    = "\x1b[31m"
	yellow = "\x1b[33m"
	cyan   = "\x1b[36m"
)

func ok(msg string) string   { return fmt.Sprintf("  %s✓%s %s", green, reset, msg) }
func fail(msg string) string { return fmt.Sprintf("  %s✗%s %s", red, reset, msg) }
func warn(msg string) string { return fmt.Sprintf("  %s⚠%s %s", yellow, reset, msg) }

var (
	rasterRe = regexp.MustCompile(`(?i)\.(png|jpg|jpeg)$`)
	textRe   = regexp.MustCompile(`<text\b`)
	gIDRe    = regexp.MustCompile(`<g\b[^>]*\bid="`)
)

func main() {
	dir := flag.String("dir", "public/templates", "template asset root")
	flag.Parse()

	folders, err := os.ReadDir(*dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot read %s: %v\n", *dir, err)
		os.Exit(1)
	}

	failures := 0
	for _, folder := range folders {
		if !folder.IsDir() {
			continue
		}
		failures += checkFolder(*dir, folder.Name())
	}

	if failures > 0 {
		fmt.Printf("\n%s%d problem(s) found%s\n", red, failures, reset)
		os.Exit(1)
	}
	fmt.Printf("\n%sAll templates look good%s\n", green, reset)
}

func checkFolder(root, folder string) int {
	entries, err := os.ReadDir(filepath.Join(root, folder))
	if err != nil {
		fmt.Println(fail(fmt.Sprintf("%s: unreadable directory: %v", folder, err)))
		return 1
	}

	var svgs []string
	rasters := map[string]string{} // lowercased stem -> file name
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.EqualFold(filepath.Ext(name), ".svg"):
			svgs = append(svgs, name)
		case rasterRe.MatchString(name):
			stem := rasterRe.ReplaceAllString(name, "")
			rasters[strings.ToLower(stem)] = name
		}
	}
	sort.Strings(svgs)

	failures := 0
	for _, svgFile := range svgs {
		fmt.Printf("\n%s%s%s/%s%s\n", bold, cyan, folder, svgFile, reset)

		content, err := os.ReadFile(filepath.Join(root, folder, svgFile))
		if err != nil {
			fmt.Println(fail(fmt.Sprintf("unreadable: %v", err)))
			failures++
			continue
		}

		info := svgtemplate.ParseOverlay(string(content), "")
		w, h := info.Style.CanvasWidth, info.Style.CanvasHeight
		if strings.Contains(string(content), "viewBox") {
			fmt.Println(ok(fmt.Sprintf("viewBox %d×%d", w, h)))
		} else {
			fmt.Println(fail(fmt.Sprintf("no viewBox; falling back to %d×%d", w, h)))
			failures++
		}

		stem := strings.ToLower(strings.TrimSuffix(svgFile, filepath.Ext(svgFile)))
		raster, found := rasters[stem]
		if !found {
			fmt.Println(fail("no matching PNG/JPG with the same stem"))
			failures++
		} else {
			fmt.Println(ok(fmt.Sprintf("raster %s", raster)))
			failures += checkAspect(filepath.Join(root, folder, raster), w, h)
		}

		if len(info.Fields) == 0 {
			fmt.Println(warn("no editable field groups discovered"))
		} else {
			ids := make([]string, len(info.Fields))
			for i, f := range info.Fields {
				ids[i] = f.ID
			}
			fmt.Println(ok(fmt.Sprintf("%d field group(s): %s", len(ids), strings.Join(ids, ", "))))
		}

		if n := bareTextCount(string(content)); n > 0 {
			fmt.Println(warn(fmt.Sprintf("%d <text> element(s) outside any <g id> group", n)))
		}
	}

	return failures
}

// checkAspect decodes the raster and compares its aspect ratio to the
// overlay's viewBox, tolerating 1% of drift.
func checkAspect(path string, svgW, svgH int) int {
	img, err := imaging.Open(path)
	if err != nil {
		fmt.Println(fail(fmt.Sprintf("raster undecodable: %v", err)))
		return 1
	}
	b := img.Bounds()
	if svgH == 0 || b.Dy() == 0 {
		return 0
	}
	imgRatio := float64(b.Dx()) / float64(b.Dy())
	svgRatio := float64(svgW) / float64(svgH)
	if math.Abs(imgRatio-svgRatio)/svgRatio > 0.01 {
		fmt.Println(fail(fmt.Sprintf("aspect mismatch: raster %dx%d (%.3f) vs viewBox (%.3f)", b.Dx(), b.Dy(), imgRatio, svgRatio)))
		return 1
	}
	fmt.Println(ok(fmt.Sprintf("aspect matches raster %dx%d", b.Dx(), b.Dy())))
	return 0
}

// bareTextCount counts <text> elements appearing before the first id'd
// group; those cannot be edited through the field pipeline.
func bareTextCount(content string) int {
	firstGroup := gIDRe.FindStringIndex(content)
	limit := len(content)
	if firstGroup != nil {
		limit = firstGroup[0]
	}
	return len(textRe.FindAllString(content[:limit], -1))
}
