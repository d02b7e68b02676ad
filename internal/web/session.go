package web

import (
	"github.com/google/uuid"

	"github.com/elbeejay/line-bridge-simulator/engine"
)

// StepsPerTick is how many insertions a running session performs per
// update tick. It paces the animation; the engine itself has no timing.
const StepsPerTick = 8

// Session is the per-connection simulation state: one engine, one setup,
// and a cursor over how much of the arena has been streamed already.
//
// Session methods are not safe for concurrent use; the socket loop owns
// the session on a single goroutine, honoring the engine's
// one-logical-thread contract.
type Session struct {
	// ID tags the session in logs.
	ID string

	eng      *engine.Engine
	setup    SimSetup
	streamed int  // segments already sent to the client
	dirty    bool // a state change the client has not seen yet
}

// NewSession builds a session with the default setup, ready to stream.
func NewSession() (*Session, error) {
	s := &Session{ID: uuid.NewString(), eng: engine.New()}
	if err := s.configure(DefaultSetup()); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Session) configure(setup SimSetup) error {
	cfg, err := setup.Config()
	if err != nil {
		return err
	}
	if err := s.eng.Reset(cfg); err != nil {
		return err
	}
	s.setup = setup
	s.streamed = 0
	s.dirty = true

	return nil
}

// Apply executes one control message. A reset without a setup payload
// reuses the session's current setup; an invalid new setup is rejected
// and the running simulation is left untouched.
func (s *Session) Apply(msg ControlMessage) error {
	switch msg.Type {
	case TypeStart:
		s.eng.SetRunning(true)
	case TypePause:
		s.eng.SetRunning(false)
	case TypeReset:
		setup := s.setup
		if msg.Setup != nil {
			setup = *msg.Setup
		}
		return s.configure(setup)
	}
	s.dirty = true

	return nil
}

// Tick advances a running simulation by up to StepsPerTick insertions and
// reports the resulting delta. The second return is false when the client
// is already up to date and no message needs to go out.
func (s *Session) Tick() (StateUpdate, bool) {
	var stepErr error
	for i := 0; i < StepsPerTick && s.eng.Running(); i++ {
		if err := s.eng.Step(); err != nil {
			stepErr = err
			break
		}
		s.dirty = true
	}
	if stepErr != nil {
		// A failed step is a terminal transition the client must see,
		// even when nothing was inserted this tick.
		s.dirty = true
	}

	if !s.dirty {
		return StateUpdate{}, false
	}
	s.dirty = false

	return s.buildUpdate(stepErr), true
}

// buildUpdate assembles the delta since the last successful send.
func (s *Session) buildUpdate(stepErr error) StateUpdate {
	segs := s.eng.Segments()

	update := StateUpdate{
		Type:          TypeState,
		State:         s.eng.State().String(),
		InsertedCount: len(segs),
		Bridge:        s.eng.BridgeIndices(),
	}
	if stepErr != nil {
		update.Error = stepErr.Error()
	}

	for _, seg := range segs[s.streamed:] {
		update.NewSegments = append(update.NewSegments, WireSegment{
			X1: seg.A.X, Y1: seg.A.Y, X2: seg.B.X, Y2: seg.B.Y,
		})
	}
	s.streamed = len(segs)

	// Flat cluster-position array, index-aligned with the arena.
	if len(segs) > 0 {
		clusters := make([]int, len(segs))
		for pos, cluster := range s.eng.Clusters() {
			for _, idx := range cluster {
				clusters[idx] = pos
			}
		}
		update.Clusters = clusters
	}

	return update
}
