package imaging

import (
	"image"
	"image/color"
	"strconv"

	"github.com/disintegration/imaging"
)

// Box is a rectangle to outline on an annotated frame.
type Box struct {
	// Rect is the outlined region. Its border is centred on the rectangle
	// edge, so a thick border extends both inside and outside Rect.
	Rect image.Rectangle

	// Color is the border color.
	Color color.Color

	// Thickness is the border width in pixels. Values below 1 are treated as 1.
	Thickness int

	// FillAlpha tints the inside of Rect with Color (0 = no tint, 1 = solid).
	FillAlpha float64

	// Label is drawn in the top-left corner when not empty. Only digits
	// and commas are rendered.
	Label string
}

// Annotate draws boxes onto a copy of img.
//
// The source image is never modified. Boxes are drawn in order, so later
// boxes overlap earlier ones. Parts of a box outside the frame are skipped.
func Annotate(img image.Image, boxes []Box) *image.NRGBA {
	dst := imaging.Clone(img)

	for _, b := range boxes {
		if b.FillAlpha > 0 {
			fillRect(dst, b.Rect, b.Color, b.FillAlpha)
		}
		drawBorder(dst, b.Rect, b.Color, b.Thickness)
		if b.Label != "" {
			drawLabel(dst, b.Rect.Min.X+2, b.Rect.Min.Y+2, b.Label,
				color.NRGBA{255, 255, 255, 255}, color.NRGBA{0, 0, 0, 180})
		}
	}

	return dst
}

// SpotLabel formats a 1-based spot number for Box.Label.
func SpotLabel(index int) string {
	return strconv.Itoa(index + 1)
}

func fillRect(img *image.NRGBA, r image.Rectangle, c color.Color, alpha float64) {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetNRGBA(x, y, blend(img.At(x, y), c, alpha))
		}
	}
}

// drawBorder outlines r with a border of the given thickness centred on the
// edge pixels (r.Min to r.Max inclusive).
func drawBorder(img *image.NRGBA, r image.Rectangle, c color.Color, thickness int) {
	if thickness < 1 {
		thickness = 1
	}
	before := thickness / 2
	after := thickness - before - 1
	bounds := img.Bounds()

	x0 := clamp(r.Min.X-before, bounds.Min.X, bounds.Max.X)
	x1 := clamp(r.Max.X+after+1, bounds.Min.X, bounds.Max.X)
	y0 := clamp(r.Min.Y-before, bounds.Min.Y, bounds.Max.Y)
	y1 := clamp(r.Max.Y+after+1, bounds.Min.Y, bounds.Max.Y)

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			onVertical := abs(x-r.Min.X) <= maxOffset(x-r.Min.X, before, after) ||
				abs(x-r.Max.X) <= maxOffset(x-r.Max.X, before, after)
			onHorizontal := abs(y-r.Min.Y) <= maxOffset(y-r.Min.Y, before, after) ||
				abs(y-r.Max.Y) <= maxOffset(y-r.Max.Y, before, after)
			if onVertical || onHorizontal {
				img.Set(x, y, c)
			}
		}
	}
}

// maxOffset picks the allowed distance from an edge line depending on which
// side of the line d falls.
func maxOffset(d, before, after int) int {
	if d < 0 {
		return before
	}
	return after
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// drawLabel draws a simple text label at the given position
func drawLabel(img *image.NRGBA, x, y int, text string, fg, bg color.NRGBA) {
	// Simple 3x5 pixel font for digits and comma
	glyphs := map[rune][]string{
		'0': {"111", "101", "101", "101", "111"},
		'1': {"010", "110", "010", "010", "111"},
		'2': {"111", "001", "111", "100", "111"},
		'3': {"111", "001", "111", "001", "111"},
		'4': {"101", "101", "111", "001", "001"},
		'5': {"111", "100", "111", "001", "111"},
		'6': {"111", "100", "111", "101", "111"},
		'7': {"111", "001", "001", "001", "001"},
		'8': {"111", "101", "111", "101", "111"},
		'9': {"111", "101", "111", "001", "111"},
		',': {"000", "000", "000", "010", "010"},
	}

	bounds := img.Bounds()
	charWidth := 4
	labelWidth := len(text) * charWidth
	labelHeight := 7

	// Draw background
	for dy := -1; dy < labelHeight; dy++ {
		for dx := -1; dx < labelWidth; dx++ {
			px, py := x+dx, y+dy
			if (image.Point{px, py}).In(bounds) {
				img.SetNRGBA(px, py, blend(img.At(px, py), bg, float64(bg.A)/255))
			}
		}
	}

	cx := x
	for _, ch := range text {
		glyph, ok := glyphs[ch]
		if !ok {
			cx += charWidth
			continue
		}
		for row, line := range glyph {
			for col, pixel := range line {
				if pixel == '1' {
					px, py := cx+col, y+row
					if (image.Point{px, py}).In(bounds) {
						img.SetNRGBA(px, py, fg)
					}
				}
			}
		}
		cx += charWidth
	}
}
