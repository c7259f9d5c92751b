package gesture

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ScriptStep is one action of a Script. Times are in milliseconds.
type ScriptStep struct {
	Action string   `yaml:"action"`
	X      float64  `yaml:"x,omitempty"`
	Y      float64  `yaml:"y,omitempty"`
	T      *float64 `yaml:"t,omitempty"` // absolute time; omitted keeps the clock
	FromX  float64  `yaml:"fromX,omitempty"`
	FromY  float64  `yaml:"fromY,omitempty"`
	ToX    float64  `yaml:"toX,omitempty"`
	ToY    float64  `yaml:"toY,omitempty"`
	Frames int      `yaml:"frames,omitempty"`
	Ms     float64  `yaml:"ms,omitempty"` // wait duration, or frame interval for drag
}

// Script is a sequence of synthetic input steps, loaded from YAML or JSON:
//
//	source: touch
//	steps:
//	  - {action: down, x: 0, y: 0, t: 0}
//	  - {action: move, x: 100, y: 0, t: 100}
//	  - {action: up, x: 100, y: 0, t: 100}
//	  - {action: wait, ms: 500}
//	  - {action: drag, fromX: 0, fromY: 0, toX: 200, toY: 0, frames: 10}
type Script struct {
	Source  string       `yaml:"source,omitempty"` // pointer (default), mouse or touch
	Pointer int          `yaml:"pointer,omitempty"`
	Steps   []ScriptStep `yaml:"steps"`
}

// LoadScript parses and validates a script.
func LoadScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("gesture: parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, errors.New("gesture: parse script: no steps")
	}
	if _, err := parseSource(s.Source); err != nil {
		return nil, err
	}
	for i, st := range s.Steps {
		switch strings.ToLower(st.Action) {
		case "down", "move", "up", "cancel", "click", "drag", "wait":
		default:
			return nil, fmt.Errorf("gesture: parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &s, nil
}

func parseSource(s string) (SourceKind, error) {
	switch strings.ToLower(s) {
	case "", "pointer":
		return SourcePointer, nil
	case "mouse":
		return SourceMouse, nil
	case "touch":
		return SourceTouch, nil
	}
	return SourcePointer, fmt.Errorf("gesture: parse script: unknown source %q", s)
}

func millis(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}

// Run injects every step into d in order. It stops at the first dispatch
// error and reports the failing step.
func (s *Script) Run(d Dispatcher) error {
	src, err := parseSource(s.Source)
	if err != nil {
		return err
	}
	in := &Injector{D: d, PointerID: s.Pointer, Source: src}
	for i, st := range s.Steps {
		if st.T != nil {
			in.Now = millis(*st.T)
		}
		if err := s.step(in, st); err != nil {
			return fmt.Errorf("gesture: script step %d (%s): %w", i, st.Action, err)
		}
	}
	return nil
}

func (s *Script) step(in *Injector, st ScriptStep) error {
	switch strings.ToLower(st.Action) {
	case "down":
		return in.Press(st.X, st.Y)
	case "move":
		return in.Move(st.X, st.Y)
	case "up":
		return in.Release(st.X, st.Y)
	case "cancel":
		return in.Cancel()
	case "click":
		return in.Click(st.X, st.Y)
	case "drag":
		in.Frame = millis(st.Ms)
		return in.Drag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		in.Wait(millis(st.Ms))
		return nil
	}
	return fmt.Errorf("unknown action %q", st.Action)
}
