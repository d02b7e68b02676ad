// Package web hosts the live viewer: a websocket session per browser tab,
// each owning an isolated simulation engine, plus the embedded canvas page.
package web

import (
	"encoding/json"
	"fmt"

	"github.com/jbeda/geom"

	"github.com/elbeejay/line-bridge-simulator/boundary"
	"github.com/elbeejay/line-bridge-simulator/engine"
	"github.com/elbeejay/line-bridge-simulator/sampler"
)

// Control message types (client → server).
const (
	TypeStart = "start"
	TypePause = "pause"
	TypeReset = "reset"
)

// Update message type (server → client).
const TypeState = "state"

// ControlMessage is a command from the browser. Reset optionally carries
// a new simulation setup; Start and Pause carry nothing.
type ControlMessage struct {
	Type  string    `json:"type"`
	Setup *SimSetup `json:"setup,omitempty"`
}

// SimSetup is the wire form of the simulation configuration.
type SimSetup struct {
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Margin    float64 `json:"margin"`
	MinLength float64 `json:"minLength"`
	MaxLength float64 `json:"maxLength"`
	MinAngle  float64 `json:"minAngle"`
	MaxAngle  float64 `json:"maxAngle"`
	Mode      string  `json:"mode"`
}

// DefaultSetup mirrors the initial control-panel values of the viewer page.
func DefaultSetup() SimSetup {
	return SimSetup{
		Width:     500,
		Height:    300,
		Margin:    40,
		MinLength: 20,
		MaxLength: 120,
		MinAngle:  0,
		MaxAngle:  360,
		Mode:      boundary.LeftToRight.String(),
	}
}

// Config converts the wire setup into an engine configuration, validating
// the boundary mode. The region is the canvas inset by the margin.
func (s SimSetup) Config() (engine.Config, error) {
	mode, err := boundary.ParseMode(s.Mode)
	if err != nil {
		return engine.Config{}, err
	}

	return engine.Config{
		Width:  s.Width,
		Height: s.Height,
		Region: geom.Rect{
			Min: geom.Coord{X: s.Margin, Y: s.Margin},
			Max: geom.Coord{X: s.Width - s.Margin, Y: s.Height - s.Margin},
		},
		Mode: mode,
		Params: sampler.Params{
			MinLength:   s.MinLength,
			MaxLength:   s.MaxLength,
			MinAngleDeg: s.MinAngle,
			MaxAngleDeg: s.MaxAngle,
		},
	}, nil
}

// WireSegment is one segment on the wire.
type WireSegment struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// StateUpdate is a streamed delta: the segments inserted since the last
// update, plus enough derived state to repaint clusters and the bridge.
type StateUpdate struct {
	Type          string `json:"type"`
	State         string `json:"state"`
	InsertedCount int    `json:"insertedCount"`
	// NewSegments holds only the not-yet-streamed tail of the arena.
	NewSegments []WireSegment `json:"newSegments,omitempty"`
	// Clusters maps every segment index to its cluster position, full
	// array each update so the client can recolor merged clusters.
	Clusters []int `json:"clusters,omitempty"`
	// Bridge lists the path's segment indices once a bridge is found.
	Bridge []int `json:"bridge,omitempty"`
	// Error carries a terminal sampling-failure description.
	Error string `json:"error,omitempty"`
}

// DecodeControl parses and validates a client control message.
func DecodeControl(data []byte) (ControlMessage, error) {
	var msg ControlMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return ControlMessage{}, fmt.Errorf("web: malformed control message: %w", err)
	}
	switch msg.Type {
	case TypeStart, TypePause, TypeReset:
		return msg, nil
	default:
		return ControlMessage{}, fmt.Errorf("web: unknown control type %q", msg.Type)
	}
}
