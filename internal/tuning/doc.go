// Package tuning helps pick the occupancy threshold for a camera setup.
//
// It runs the same mask pipeline as the classifier on a reference frame,
// splits a band of the frame into equal columns and reports the raw
// foreground count of every column. No classification is performed; an
// operator compares the counts of known empty and known occupied spots and
// chooses a threshold between them.
//
// The report footer adds summary statistics and a suggested threshold: the
// midpoint of the widest gap between consecutive sorted counts, which falls
// between the empty and occupied clusters when the frame contains both.
package tuning
