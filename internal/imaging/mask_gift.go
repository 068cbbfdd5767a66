//go:build !gocv

package imaging

import (
	"image"

	"github.com/disintegration/gift"
)

// buildMask is the pure-Go pipeline. gift replicates edge pixels for every
// neighbourhood filter.
func buildMask(img image.Image, p MaskParams) (*image.Gray, error) {
	gray := Grayscale(img)

	blurred := applyFilters(gray,
		gift.Convolution(GaussianKernel2D(p.BlurKernel, p.BlurSigma), true, false, false, 0),
	)

	var localMean *image.Gray
	switch p.AdaptiveMethod {
	case AdaptiveMean:
		localMean = applyFilters(blurred, gift.Mean(p.BlockSize, false))
	default:
		localMean = applyFilters(blurred,
			gift.Convolution(GaussianKernel2D(p.BlockSize, 0), true, false, false, 0),
		)
	}

	binary := AdaptiveThreshold(blurred, localMean, p.Bias)

	filters := []gift.Filter{gift.Median(p.MedianKernel, false)}
	for i := 0; i < p.DilateIterations; i++ {
		filters = append(filters, gift.Maximum(p.DilateKernel, false))
	}

	return applyFilters(binary, filters...), nil
}

// applyFilters runs a gift filter chain over a gray image and returns a new
// gray image of the same size.
func applyFilters(src *image.Gray, filters ...gift.Filter) *image.Gray {
	g := gift.New(filters...)
	g.SetParallelization(false)
	dst := image.NewGray(g.Bounds(src.Bounds()))
	g.Draw(dst, src)
	return dst
}
