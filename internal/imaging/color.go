package imaging

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// ParseColor parses a hex color string like "#FF0000" or "#f00".
func ParseColor(hex string) (color.Color, error) {
	if hex == "" {
		return nil, errors.New("empty color string")
	}
	if hex[0] != '#' {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid hex color %q", hex)
	}
	return c, nil
}

// blend mixes overlay into base by alpha (0 = base, 1 = overlay) in RGB
// space and returns an opaque color.
func blend(base, overlay color.Color, alpha float64) color.NRGBA {
	b, ok := colorful.MakeColor(base)
	if !ok {
		// Fully transparent base pixel.
		b = colorful.Color{}
	}
	o, _ := colorful.MakeColor(overlay)
	r, g, bl := b.BlendRgb(o, alpha).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: bl, A: 255}
}
