// Package render writes simulation snapshots as SVG.
package render

import (
	"fmt"
	"io"

	"github.com/jbeda/geom"

	"github.com/elbeejay/line-bridge-simulator/engine"
)

// Tunable output styles.
const (
	backgroundStyle = "fill: #0b0e14"
	regionStyle     = "fill: none; stroke: #3a4154; stroke-width: 1; stroke-dasharray: 6 4"
	segmentWidth    = 1.5
	bridgeStyle     = "stroke: #ff5555; stroke-width: 3.5; stroke-linecap: round"
)

// clusterPalette cycles across clusters; neighbors in insertion order get
// visually distant hues.
var clusterPalette = []string{
	"#7aa2f7", "#9ece6a", "#e0af68", "#bb9af7",
	"#7dcfff", "#f7768e", "#73daca", "#ff9e64",
}

// SVG wraps a writer with error-latching printf, so a long emission needs
// only one error check at the end.
type SVG struct {
	w   io.Writer
	err error
}

// New returns an SVG emitter over w.
func New(w io.Writer) *SVG {
	return &SVG{w: w}
}

func (s *SVG) printf(format string, a ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, a...)
}

// WriteSnapshot renders one snapshot onto a width×height canvas with the
// given bridging region. Segments are tinted by cluster; the bridge path,
// when present, is drawn last so it sits on top.
func (s *SVG) WriteSnapshot(snap engine.Snapshot, width, height float64, region geom.Rect) error {
	s.start(width, height)
	s.rect(region)

	// Tint by cluster: clusters are ordered by smallest member, segments
	// indexed into the palette by cluster position.
	color := make(map[int]string, len(snap.Segments))
	for pos, cluster := range snap.Clusters {
		for _, idx := range cluster {
			color[idx] = clusterPalette[pos%len(clusterPalette)]
		}
	}
	for idx, seg := range snap.Segments {
		s.printf("  <line x1='%.2f' y1='%.2f' x2='%.2f' y2='%.2f' style='stroke: %s; stroke-width: %g'/>\n",
			seg.A.X, seg.A.Y, seg.B.X, seg.B.Y, color[idx], segmentWidth)
	}

	for _, seg := range snap.BridgePath {
		s.printf("  <line x1='%.2f' y1='%.2f' x2='%.2f' y2='%.2f' style='%s'/>\n",
			seg.A.X, seg.A.Y, seg.B.X, seg.B.Y, bridgeStyle)
	}

	s.end()

	return s.err
}

func (s *SVG) start(width, height float64) {
	s.printf(`<?xml version="1.0"?>
<svg version="1.1" xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %g %g">
`, width, height)
	s.printf("  <rect x='0' y='0' width='%g' height='%g' style='%s'/>\n", width, height, backgroundStyle)
}

func (s *SVG) rect(r geom.Rect) {
	s.printf("  <rect x='%g' y='%g' width='%g' height='%g' style='%s'/>\n",
		r.Min.X, r.Min.Y, r.Max.X-r.Min.X, r.Max.Y-r.Min.Y, regionStyle)
}

func (s *SVG) end() {
	s.printf("</svg>\n")
}
