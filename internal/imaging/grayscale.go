package imaging

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// Grayscale converts a frame to a single-channel 8-bit luma image.
//
// The conversion uses ITU-R BT.601 weights (0.299*R + 0.587*G + 0.114*B),
// rounded to the nearest level. The result always has its origin at (0,0),
// regardless of the bounds of the source image.
func Grayscale(img image.Image) *image.Gray {
	// imaging.Grayscale stores the luma in all three channels of an NRGBA.
	src := imaging.Grayscale(img)
	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	dst := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		srcRow := src.Pix[y*src.Stride : y*src.Stride+width*4]
		dstRow := dst.Pix[y*dst.Stride : y*dst.Stride+width]
		for x := 0; x < width; x++ {
			dstRow[x] = srcRow[x*4]
		}
	}
	return dst
}

// GaussianKernel returns a normalised 1-D Gaussian kernel of the given size.
//
// Parameters:
//   - size: Kernel length. Must be odd and positive.
//   - sigma: Standard deviation. When sigma <= 0 it is derived from the size
//     as 0.3*((size-1)*0.5 - 1) + 0.8, the usual rule for adaptive windows.
//
// The weights sum to 1.
func GaussianKernel(size int, sigma float64) []float64 {
	if sigma <= 0 {
		sigma = AdaptiveSigma(size)
	}

	kernel := make([]float64, size)
	center := float64(size-1) / 2
	scale := -0.5 / (sigma * sigma)

	var sum float64
	for i := range kernel {
		d := float64(i) - center
		kernel[i] = math.Exp(scale * d * d)
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}

// GaussianKernel2D returns the size×size outer product of GaussianKernel,
// laid out row by row as gift.Convolution expects.
func GaussianKernel2D(size int, sigma float64) []float32 {
	k := GaussianKernel(size, sigma)
	out := make([]float32, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			out[y*size+x] = float32(k[y] * k[x])
		}
	}
	return out
}

// AdaptiveSigma is the Gaussian sigma used for a local-mean window of the
// given block size when no explicit sigma is configured.
func AdaptiveSigma(blockSize int) float64 {
	return 0.3*(float64(blockSize-1)*0.5-1) + 0.8
}

// clamp constrains an integer value to the range [min, max].
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
