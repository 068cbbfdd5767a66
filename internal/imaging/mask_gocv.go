//go:build gocv

package imaging

import (
	"image"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// buildMask runs the pipeline through OpenCV. Grayscale conversion stays in
// Go so both builds share the same luma rounding.
func buildMask(img image.Image, p MaskParams) (*image.Gray, error) {
	gray := Grayscale(img)

	src, err := gocv.ImageGrayToMatGray(gray)
	if err != nil {
		return nil, errors.Wrap(err, "failed to convert frame to Mat")
	}
	defer src.Close()

	blurred := gocv.NewMat()
	defer blurred.Close()
	gocv.GaussianBlur(src, &blurred, image.Pt(p.BlurKernel, p.BlurKernel), p.BlurSigma, p.BlurSigma, gocv.BorderReplicate)

	method := gocv.AdaptiveThresholdGaussian
	if p.AdaptiveMethod == AdaptiveMean {
		method = gocv.AdaptiveThresholdMean
	}
	binary := gocv.NewMat()
	defer binary.Close()
	gocv.AdaptiveThreshold(blurred, &binary, float32(Foreground), method, gocv.ThresholdBinaryInv, p.BlockSize, float32(p.Bias))

	median := gocv.NewMat()
	defer median.Close()
	gocv.MedianBlur(binary, &median, p.MedianKernel)

	kernel := gocv.GetStructuringElement(gocv.MorphRect, image.Pt(p.DilateKernel, p.DilateKernel))
	defer kernel.Close()

	dilated := median.Clone()
	defer func() { dilated.Close() }()
	for i := 0; i < p.DilateIterations; i++ {
		next := gocv.NewMat()
		gocv.Dilate(dilated, &next, kernel)
		dilated.Close()
		dilated = next
	}

	out, err := dilated.ToImage()
	if err != nil {
		return nil, errors.Wrap(err, "failed to convert mask from Mat")
	}
	mask, ok := out.(*image.Gray)
	if !ok {
		return nil, errors.Errorf("unexpected mask image type %T", out)
	}
	return mask, nil
}
