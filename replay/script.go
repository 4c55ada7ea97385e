package replay

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/sunshot/engine"
)

// Press values accepted in a step
const (
	PressStart = "start"
	PressEnd   = "end"
)

// Script is a headless playthrough: input steps and the expected end state
type Script struct {
	Name    string  `yaml:"name"`
	Profile string  `yaml:"profile,omitempty"`
	FrameMS int     `yaml:"frame_ms,omitempty"`
	Level   int     `yaml:"level,omitempty"` // Starting level, applied before the first setup
	Steps   []Step  `yaml:"steps"`
	Expect  *Expect `yaml:"expect,omitempty"`
}

// Step is one input edge or a run of idle frames
// With Until set, Frames is the upper bound and the step stops once the phase is reached
type Step struct {
	Press  string   `yaml:"press,omitempty"`
	Aim    *float64 `yaml:"aim,omitempty"`
	Frames int      `yaml:"frames,omitempty"`
	Until  string   `yaml:"until,omitempty"`
}

// Expect lists end-state checks; unset fields are not checked
type Expect struct {
	Level   *int     `yaml:"level,omitempty"`
	Score   *int     `yaml:"score,omitempty"`
	Phase   string   `yaml:"phase,omitempty"`
	KillLog []string `yaml:"kill_log,omitempty"`
	Events  []string `yaml:"events,omitempty"` // Event names that must have fired at least once
}

// Parse decodes and validates a script
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse replay script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads a script file
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read replay script: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate checks step vocabulary and fills defaults
func (s *Script) Validate() error {
	if len(s.Steps) == 0 {
		return fmt.Errorf("replay script %q has no steps", s.Name)
	}
	if s.FrameMS < 0 {
		return fmt.Errorf("replay script %q: negative frame_ms", s.Name)
	}
	for i := range s.Steps {
		st := &s.Steps[i]
		switch st.Press {
		case "", PressStart, PressEnd:
		default:
			return fmt.Errorf("step %d: unknown press %q", i, st.Press)
		}
		if st.Frames < 0 {
			return fmt.Errorf("step %d: negative frames", i)
		}
		if st.Until != "" {
			if _, ok := engine.ParsePhase(st.Until); !ok {
				return fmt.Errorf("step %d: unknown phase %q", i, st.Until)
			}
		}
	}
	if s.Expect != nil && s.Expect.Phase != "" {
		if _, ok := engine.ParsePhase(s.Expect.Phase); !ok {
			return fmt.Errorf("expect: unknown phase %q", s.Expect.Phase)
		}
	}
	return nil
}
