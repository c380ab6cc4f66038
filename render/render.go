package render

import (
	"fmt"
	"image/color"
	"image/png"
	"os"
	"strconv"
	"strings"

	"github.com/psykhi/wordclouds"

	"github.com/deanrtaylor1/gowordcloud/freq"
)

// Options controls the rendered word cloud image.
type Options struct {
	Width    int
	Height   int
	BgColor  string
	FontPath string
}

// defaultPalette holds the label colors cycled through by the renderer.
var defaultPalette = []color.Color{
	color.RGBA{0x1f, 0x77, 0xb4, 0xff},
	color.RGBA{0xff, 0x7f, 0x0e, 0xff},
	color.RGBA{0x2c, 0xa0, 0x2c, 0xff},
	color.RGBA{0xd6, 0x27, 0x28, 0xff},
	color.RGBA{0x94, 0x67, 0xbd, 0xff},
	color.RGBA{0x8c, 0x56, 0x4b, 0xff},
}

// Image renders the entries as a frequency-weighted word cloud and writes
// it as a PNG. A font file that covers Japanese glyphs is required.
func Image(entries []freq.Entry, opts Options, outPath string) error {
	if opts.FontPath == "" {
		return fmt.Errorf("a font path is required to render the word cloud image")
	}
	if _, err := os.Stat(opts.FontPath); err != nil {
		return fmt.Errorf("font file not found: %s", opts.FontPath)
	}

	counts := make(map[string]int, len(entries))
	for _, entry := range entries {
		counts[entry.Token] = entry.Count
	}

	bg, err := parseColor(opts.BgColor)
	if err != nil {
		return err
	}

	cloud := wordclouds.NewWordcloud(
		counts,
		wordclouds.FontFile(opts.FontPath),
		wordclouds.Width(opts.Width),
		wordclouds.Height(opts.Height),
		wordclouds.FontMaxSize(opts.Height/4),
		wordclouds.FontMinSize(12),
		wordclouds.Colors(defaultPalette),
		wordclouds.BackgroundColor(bg),
		wordclouds.RandomPlacement(false),
	)
	img := cloud.Draw()

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("error creating image file %s: %w", outPath, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("error encoding image %s: %w", outPath, err)
	}
	return nil
}

// WriteLog writes the entries as token<TAB>count lines in rank order.
func WriteLog(entries []freq.Entry, path string) error {
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, fmt.Sprintf("%s\t%d", entry.Token, entry.Count))
	}
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0644); err != nil {
		return fmt.Errorf("error writing frequency log %s: %w", path, err)
	}
	return nil
}

// parseColor resolves a handful of color names and #RRGGBB hex values.
func parseColor(name string) (color.Color, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "white":
		return color.White, nil
	case "black":
		return color.Black, nil
	case "transparent":
		return color.Transparent, nil
	}

	hex := strings.TrimPrefix(name, "#")
	if len(hex) == 6 {
		value, err := strconv.ParseUint(hex, 16, 32)
		if err == nil {
			return color.RGBA{
				R: uint8(value >> 16),
				G: uint8(value >> 8),
				B: uint8(value),
				A: 0xff,
			}, nil
		}
	}
	return nil, fmt.Errorf("unsupported background color: %s", name)
}
