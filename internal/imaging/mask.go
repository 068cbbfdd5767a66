package imaging

import (
	"image"

	"github.com/pkg/errors"
)

// ErrInvalidParams is returned when MaskParams fail validation.
var ErrInvalidParams = errors.New("invalid mask parameters")

// AdaptiveMethod selects how the local mean of the adaptive threshold is
// computed.
type AdaptiveMethod string

const (
	// AdaptiveGaussian weights the neighbourhood with a Gaussian window.
	AdaptiveGaussian AdaptiveMethod = "gaussian"

	// AdaptiveMean uses the plain (box) mean of the neighbourhood.
	AdaptiveMean AdaptiveMethod = "mean"
)

// Foreground and Background are the only two values a mask pixel can hold.
const (
	Foreground uint8 = 255
	Background uint8 = 0
)

// MaskParams configures the five-step mask pipeline.
//
// All kernel sizes are in pixels and must be odd so that the kernel has a
// centre pixel.
type MaskParams struct {
	// BlurKernel is the size of the Gaussian blur kernel (step 2).
	BlurKernel int `json:"blur_kernel"`

	// BlurSigma is the standard deviation of the Gaussian blur.
	BlurSigma float64 `json:"blur_sigma"`

	// AdaptiveMethod selects the local mean used by the threshold (step 3).
	AdaptiveMethod AdaptiveMethod `json:"adaptive_method"`

	// BlockSize is the neighbourhood size of the adaptive threshold.
	BlockSize int `json:"block_size"`

	// Bias is subtracted from the local mean before comparing.
	Bias int `json:"bias"`

	// MedianKernel is the size of the median filter (step 4).
	MedianKernel int `json:"median_kernel"`

	// DilateKernel is the size of the square structuring element (step 5).
	DilateKernel int `json:"dilate_kernel"`

	// DilateIterations is the number of dilation passes.
	DilateIterations int `json:"dilate_iterations"`
}

// DefaultMaskParams returns the reference pipeline parameters:
// blur 3x3 sigma 1, Gaussian adaptive threshold with block 25 and bias 16,
// median 5, one 3x3 dilation.
func DefaultMaskParams() MaskParams {
	return MaskParams{
		BlurKernel:       3,
		BlurSigma:        1,
		AdaptiveMethod:   AdaptiveGaussian,
		BlockSize:        25,
		Bias:             16,
		MedianKernel:     5,
		DilateKernel:     3,
		DilateIterations: 1,
	}
}

// Validate checks that every parameter is inside its valid range.
func (p MaskParams) Validate() error {
	if !isOddPositive(p.BlurKernel) {
		return errors.Wrapf(ErrInvalidParams, "blur kernel %d must be odd and positive", p.BlurKernel)
	}
	if p.BlurSigma <= 0 {
		return errors.Wrapf(ErrInvalidParams, "blur sigma %g must be positive", p.BlurSigma)
	}
	if p.AdaptiveMethod != AdaptiveGaussian && p.AdaptiveMethod != AdaptiveMean {
		return errors.Wrapf(ErrInvalidParams, "unknown adaptive method %q", p.AdaptiveMethod)
	}
	if !isOddPositive(p.BlockSize) || p.BlockSize < 3 {
		return errors.Wrapf(ErrInvalidParams, "block size %d must be odd and at least 3", p.BlockSize)
	}
	if p.Bias < 0 || p.Bias > 255 {
		return errors.Wrapf(ErrInvalidParams, "bias %d must be in [0,255]", p.Bias)
	}
	if !isOddPositive(p.MedianKernel) {
		return errors.Wrapf(ErrInvalidParams, "median kernel %d must be odd and positive", p.MedianKernel)
	}
	if !isOddPositive(p.DilateKernel) {
		return errors.Wrapf(ErrInvalidParams, "dilate kernel %d must be odd and positive", p.DilateKernel)
	}
	if p.DilateIterations < 0 {
		return errors.Wrapf(ErrInvalidParams, "dilate iterations %d must not be negative", p.DilateIterations)
	}
	return nil
}

func isOddPositive(n int) bool {
	return n > 0 && n%2 == 1
}

// BuildMask runs the mask pipeline on a frame.
//
// Parameters:
//   - img: Source frame (color or grayscale).
//   - params: Pipeline parameters. Use DefaultMaskParams for the reference values.
//
// Returns:
//   - *image.Gray: A binary mask with origin (0,0) and the frame's dimensions.
//     Every pixel is either Foreground (255) or Background (0).
//   - error: Wraps ErrInvalidParams if params fail validation.
//
// The result is a pure function of the frame and the parameters.
func BuildMask(img image.Image, params MaskParams) (*image.Gray, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, errors.New("cannot build a mask from an empty frame")
	}
	return buildMask(img, params)
}

// AdaptiveThreshold binarises src against a per-pixel local mean.
//
// A pixel becomes Foreground when src <= mean - bias, i.e. when it is at
// least bias levels darker than its neighbourhood, and Background otherwise.
// src and mean must have identical bounds.
func AdaptiveThreshold(src, mean *image.Gray, bias int) *image.Gray {
	bounds := src.Bounds()
	dst := image.NewGray(bounds)
	width := bounds.Dx()

	for y := 0; y < bounds.Dy(); y++ {
		srcRow := src.Pix[y*src.Stride : y*src.Stride+width]
		meanRow := mean.Pix[y*mean.Stride : y*mean.Stride+width]
		dstRow := dst.Pix[y*dst.Stride : y*dst.Stride+width]
		for x := 0; x < width; x++ {
			if int(srcRow[x])+bias <= int(meanRow[x]) {
				dstRow[x] = Foreground
			} else {
				dstRow[x] = Background
			}
		}
	}
	return dst
}
