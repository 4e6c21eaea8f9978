// Package duview builds per-subdirectory disk usage reports.
//
// It shells out to a du-compatible utility for the actual size
// accounting, parses the resulting path/size lines into a snapshot,
// and renders each subdirectory as a percentage-of-total bar graph,
// largest first.
package duview
