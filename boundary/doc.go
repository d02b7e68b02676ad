// Package boundary classifies segments against the edges or corners of a
// target region, deciding which segments may start and which may finish a
// bridge.
//
// What:
//
//   - Mode selects the opposing pair being bridged: LeftToRight,
//     TopToBottom, or CornerToCorner (top-left → bottom-right).
//   - Classifier holds the two tolerances involved and produces a Touch
//     verdict {Start, Finish} for a segment within a geom.Rect region.
//
// Why:
//
//   - Edge tests use a thin linear tolerance band (DefaultEdgeTolerance)
//     to absorb floating-point sampling noise against an infinite edge.
//   - Corner tests target a single point, so a Euclidean radius
//     (DefaultCornerRadius) is required instead of a band. The radius is a
//     fixed constant proportioned to typical canvas scale; it is exposed
//     as a tuning parameter rather than scaled automatically.
//
// Errors:
//
//   - ErrUnknownMode: a Mode outside the enumerated values, reported at
//     validation time so the engine never runs with a mode it cannot
//     interpret.
//
// Complexity: Classify is O(1).
package boundary
