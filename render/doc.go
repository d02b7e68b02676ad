// Package render emits an SVG picture of a simulation snapshot: the
// canvas, the bridging region frame, every segment tinted by its cluster,
// and the bridge path drawn on top when one exists.
//
// The output is plain SVG 1.1 written directly with fmt; there is nothing
// interactive about it. It exists for the headless driver, so a finished
// run can be inspected without the live viewer.
package render
