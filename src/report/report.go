// Package report holds the sinks that observe the car. None of them affect the simulation.
package report

import (
	"liftsim/src/elev"
	"liftsim/src/timer"
	"liftsim/src/types"

	"github.com/rs/zerolog"
)

// LogSink logs state reports at info level and boarding and discharge at debug level.
type LogSink struct {
	log zerolog.Logger
}

func NewLogSink(log zerolog.Logger, runID string) *LogSink {
	return &LogSink{log: log.With().Str("run", runID).Logger()}
}

func (s *LogSink) Report(ev types.Event) {
	switch ev.Kind {
	case types.EV_Boarded:
		s.log.Debug().
			Int("time", ev.Time).
			Int("floor", ev.Floor).
			Str("request", elev.FormatRequest(ev.Request)).
			Msgf("Time: %d - Picking up passengers at %d", ev.Time, ev.Floor)
	case types.EV_Discharged:
		s.log.Debug().
			Int("time", ev.Time).
			Int("floor", ev.Floor).
			Msgf("Time: %d - Dropping off passengers at %d", ev.Time, ev.Floor)
	case types.EV_State:
		s.log.Info().
			Int("time", ev.Time).
			Str("direction", elev.FormatDir(ev.Dir)).
			Int("floor", ev.Floor).
			Msg("State")
	}
}

// Recorder keeps every event in memory.
type Recorder struct {
	Events []types.Event
}

func (r *Recorder) Report(ev types.Event) {
	r.Events = append(r.Events, ev)
}

// Filter returns the recorded events of one kind.
func (r *Recorder) Filter(kind types.EventKind) []types.Event {
	var events []types.Event
	for _, ev := range r.Events {
		if ev.Kind == kind {
			events = append(events, ev)
		}
	}
	return events
}

// Times returns the times of the recorded events of one kind.
func (r *Recorder) Times(kind types.EventKind) []int {
	var times []int
	for _, ev := range r.Filter(kind) {
		times = append(times, ev.Time)
	}
	return times
}

func (r *Recorder) Last() (types.Event, bool) {
	if len(r.Events) == 0 {
		return types.Event{}, false
	}
	return r.Events[len(r.Events)-1], true
}

// Multi reports every event to each sink in order.
type Multi []elev.Sink

func (m Multi) Report(ev types.Event) {
	for _, sink := range m {
		sink.Report(ev)
	}
}

// Paced forwards events to Sink and waits on Pacer after every state report.
type Paced struct {
	Sink  elev.Sink
	Pacer timer.Pacer
}

func (p Paced) Report(ev types.Event) {
	p.Sink.Report(ev)
	if ev.Kind == types.EV_State {
		p.Pacer.Wait()
	}
}
