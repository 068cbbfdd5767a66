// Package occupancy classifies parking spots in a camera frame as free or
// occupied.
//
// Each spot is a fixed rectangle in frame pixel coordinates. The frame is
// turned into a binary mask (see imaging.BuildMask) and the foreground pixels
// inside every spot are counted. A spot whose count reaches the occupancy
// threshold is occupied; every other spot is free.
//
// # Algorithm Overview
//
//  1. Mask: grayscale, blur, adaptive threshold, median filter, dilation
//  2. Count: foreground pixels inside each spot rectangle
//  3. Classify: occupied = count >= threshold
//  4. Aggregate: free and occupied totals, spot order preserved
//
// Classification is a pure function of the frame, the spot list and the
// threshold. Spots are classified independently, so their order only affects
// the order of the detailed results.
//
// # Threshold Selection
//
// The foreground count of an empty spot depends on camera resolution, the
// distance to the ground and the spot size. The reference threshold of 900
// fits 87x160 spots on a 612 pixel wide frame; re-derive it with the tuning
// utility whenever any of those change.
//
// # Spots Outside the Frame
//
// A spot that extends past the frame edge is clipped to the frame by default
// and flagged in its SpotResult. With BoundsReject the classification fails
// with ErrInvalidSpot instead.
package occupancy
