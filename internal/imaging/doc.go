// Package imaging provides the pixel-level building blocks of the occupancy
// detector: frame decoding, grayscale conversion, the binary mask pipeline,
// region counting, and annotated overlays for visual inspection.
//
// All operations work with standard Go image.Image types and use a coordinate
// system where (0,0) is at the top-left corner, X increases rightward, and Y
// increases downward.
//
// # Coordinate System
//
// Frames are normalised to a (0,0) origin when they enter the pipeline, so
// spot rectangles are always expressed relative to the top-left pixel of the
// frame:
//   - Rectangles use image.Rectangle semantics: Min is inclusive, Max is exclusive
//   - Width = Max.X - Min.X, Height = Max.Y - Min.Y
//
// # Mask Pipeline
//
// BuildMask turns a colour frame into a binary mask in five steps:
//
//  1. Grayscale: BT.601 luma (0.299*R + 0.587*G + 0.114*B)
//  2. Gaussian blur with a small kernel to suppress sensor noise
//  3. Adaptive threshold: a pixel becomes foreground (255) when it is at least
//     Bias levels darker than the mean of its BlockSize neighbourhood
//  4. Median filter to remove salt-and-pepper noise
//  5. Dilation with a square structuring element
//
// Every neighbourhood operation replicates edge pixels at the frame border.
// The default build runs the pipeline in pure Go on top of gift; building with
// the gocv tag runs it through OpenCV instead.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Frames that cannot be opened or decoded (*LoadError)
//   - Pipeline parameters outside their valid ranges (ErrInvalidParams)
//   - Crop rectangles that do not intersect the mask
//   - Output paths with an unsupported extension
package imaging
