package imagepkg

import (
	"math"
	"strings"
)

// Title fitting limits.
const (
	FitStep      = 4.0
	FitMaxLines  = 4
	FitMinSize   = 30.0
	FitMinRatio  = 0.5
	fitMaxHeight = 0.8 // share of the banner height
	fitNoBanner  = 0.5 // share of the canvas height without a banner
)

// MeasureFunc returns the rendered width of text at the given font size.
type MeasureFunc func(text string, size float64) float64

// FitConstraints bounds the title block.
type FitConstraints struct {
	FontSize   float64 // nominal size
	LineHeight float64 // nominal line height
	WrapWidth  float64
	MaxHeight  float64
	MaxLines   int
}

// FitResult is the accepted size and wrapping. Sizes lists every size tried,
// in order.
type FitResult struct {
	FontSize   float64
	LineHeight float64
	Lines      []string
	Sizes      []float64
}

// Height is the block height of the accepted wrapping.
func (r FitResult) Height() float64 {
	return float64(len(r.Lines)) * r.LineHeight
}

// FitFloor is the smallest size Fit will use for a nominal size.
func FitFloor(nominal float64) float64 {
	return math.Max(nominal*FitMinRatio, FitMinSize)
}

// Fit shrinks the font in FitStep decrements, scaling the line height by the
// same ratio, until the wrapped text has at most MaxLines lines and fits in
// MaxHeight. At the floor the wrapping is accepted as is, even if it still
// overflows.
func Fit(text string, c FitConstraints, measure MeasureFunc) FitResult {
	maxLines := c.MaxLines
	if maxLines <= 0 {
		maxLines = FitMaxLines
	}
	floor := FitFloor(c.FontSize)

	size, lineHeight := c.FontSize, c.LineHeight
	wrapAt := func(size float64) []string {
		return Wrap(text, c.WrapWidth, func(s string) float64 { return measure(s, size) })
	}

	res := FitResult{Sizes: []float64{size}}
	lines := wrapAt(size)
	for !fits(lines, lineHeight, c.MaxHeight, maxLines) && size > floor {
		next := math.Max(size-FitStep, floor)
		lineHeight *= next / size
		size = next
		res.Sizes = append(res.Sizes, size)
		lines = wrapAt(size)
	}

	res.FontSize = size
	res.LineHeight = lineHeight
	res.Lines = lines
	return res
}

func fits(lines []string, lineHeight, maxHeight float64, maxLines int) bool {
	return len(lines) <= maxLines && float64(len(lines))*lineHeight <= maxHeight
}

// Wrap greedily packs words into lines no wider than width. A word wider
// than width on its own gets a line to itself; words are never split.
func Wrap(text string, width float64, measure func(string) float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if measure(candidate) > width {
			lines = append(lines, current)
			current = word
		} else {
			current = candidate
		}
	}
	return append(lines, current)
}
