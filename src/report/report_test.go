package report

import (
	"bytes"
	"encoding/json"
	"slices"
	"testing"

	"liftsim/src/types"

	"github.com/rs/zerolog"
)

type countingPacer struct {
	waits int
}

func (p *countingPacer) Wait() { p.waits++ }

func tickEvents() []types.Event {
	return []types.Event{
		{Kind: types.EV_Boarded, Time: 5, Floor: 5, Dir: types.D_Down,
			Request: types.Request{Time: 1, Floor: 5, Dir: types.D_Down, Destination: 2}},
		{Kind: types.EV_State, Time: 5, Floor: 4, Dir: types.D_Down},
		{Kind: types.EV_Discharged, Time: 8, Floor: 2, Dir: types.D_Down},
		{Kind: types.EV_State, Time: 8, Floor: 3, Dir: types.D_Up},
	}
}

func TestRecorder(t *testing.T) {
	rec := &Recorder{}
	if _, ok := rec.Last(); ok {
		t.Error("Last on empty recorder")
	}
	for _, ev := range tickEvents() {
		rec.Report(ev)
	}
	if got := rec.Times(types.EV_State); !slices.Equal(got, []int{5, 8}) {
		t.Errorf("state times = %v", got)
	}
	if got := rec.Filter(types.EV_Discharged); len(got) != 1 || got[0].Floor != 2 {
		t.Errorf("discharges = %v", got)
	}
	if last, _ := rec.Last(); last.Time != 8 || last.Dir != types.D_Up {
		t.Errorf("Last = %+v", last)
	}
}

func TestMultiAndPaced(t *testing.T) {
	first, second := &Recorder{}, &Recorder{}
	pacer := &countingPacer{}
	sink := Paced{Sink: Multi{first, second}, Pacer: pacer}
	for _, ev := range tickEvents() {
		sink.Report(ev)
	}
	if !slices.Equal(first.Events, tickEvents()) || !slices.Equal(second.Events, tickEvents()) {
		t.Error("Multi did not forward every event in order")
	}
	if pacer.waits != 2 {
		t.Errorf("pacer waited %d times, want once per state report", pacer.waits)
	}
}

func TestLogSink(t *testing.T) {
	var buf bytes.Buffer
	sink := NewLogSink(zerolog.New(&buf).Level(zerolog.DebugLevel), "run-1")
	for _, ev := range tickEvents() {
		sink.Report(ev)
	}

	var lines []map[string]any
	dec := json.NewDecoder(&buf)
	for dec.More() {
		line := map[string]any{}
		if err := dec.Decode(&line); err != nil {
			t.Fatalf("decode log line: %v", err)
		}
		lines = append(lines, line)
	}
	if len(lines) != 4 {
		t.Fatalf("%d log lines, want 4", len(lines))
	}
	for _, line := range lines {
		if line["run"] != "run-1" {
			t.Errorf("line without run id: %v", line)
		}
	}
	if lines[0]["level"] != "debug" || lines[0]["message"] != "Time: 5 - Picking up passengers at 5" {
		t.Errorf("boarding line = %v", lines[0])
	}
	if lines[1]["level"] != "info" || lines[1]["direction"] != "Down" || lines[1]["floor"] != float64(4) {
		t.Errorf("state line = %v", lines[1])
	}
	if lines[2]["message"] != "Time: 8 - Dropping off passengers at 2" {
		t.Errorf("discharge line = %v", lines[2])
	}
}
