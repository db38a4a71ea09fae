// Package trace implements the per-call relaxation trace sink
// (component 4.I): a structured observer of push events, replacing the
// original MEX's global debugflag print statements with an injectable
// sink in the style of the pack's zerolog-backed structured logger
// (jhkimqd-chaos-utils/pkg/reporting).
package trace

import "github.com/rs/zerolog"

// Event describes a single relaxation push.
type Event struct {
	Iter     int     // push sequence number, 0-based
	Key      int     // composite key v + j*n
	Node     int     // decoded node index
	Step     int     // decoded Taylor step
	Residual float64 // residual value being relaxed
	Reason   string  // "select", "terminate", or a selector-specific tag
}

// Sink receives push events as the engine runs. Implementations must
// not block the push loop for long; Push is called once per relaxation.
type Sink interface {
	Push(Event)
}

// NopSink discards every event. It is the default when no sink is
// configured, costing nothing beyond an interface call.
type NopSink struct{}

// Push discards e.
func (NopSink) Push(Event) {}

// zerologSink adapts Sink to a zerolog.Logger, one structured log line
// per event at the configured level.
type zerologSink struct {
	logger zerolog.Logger
	level  zerolog.Level
}

// NewZerologSink returns a Sink that logs each event through logger at
// level.
func NewZerologSink(logger zerolog.Logger, level zerolog.Level) Sink {
	return &zerologSink{logger: logger, level: level}
}

// Push logs e as a structured event.
func (s *zerologSink) Push(e Event) {
	s.logger.WithLevel(s.level).
		Int("iter", e.Iter).
		Int("key", e.Key).
		Int("node", e.Node).
		Int("step", e.Step).
		Float64("residual", e.Residual).
		Str("reason", e.Reason).
		Msg("push")
}
