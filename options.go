package gesture

import (
	"fmt"
	"math"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultSmoothing is the weight given to the newest instantaneous
	// velocity in the CurrentVelocity moving average.
	DefaultSmoothing = 0.5

	// DefaultRestTimeout is how long the pointer may stay still before an up
	// event is treated as a release at rest (zero velocity).
	DefaultRestTimeout = 100 * time.Millisecond
)

// Options configures a Pointer. The zero value is not valid; start from
// DefaultOptions.
type Options struct {
	Axis              Axis          `yaml:"axis"`
	VelocityThreshold float64       `yaml:"velocity_threshold"`
	Smoothing         float64       `yaml:"smoothing"`
	MoveEpsilon       float64       `yaml:"move_epsilon"`
	BufferSize        int           `yaml:"buffer_size"`
	RestTimeout       time.Duration `yaml:"rest_timeout"`
	Debug             bool          `yaml:"debug"`
}

// DefaultOptions returns options tracking both axes with the default
// thresholds.
func DefaultOptions() Options {
	return Options{
		Axis:              AxisBoth,
		VelocityThreshold: DefaultVelocityThreshold,
		Smoothing:         DefaultSmoothing,
		MoveEpsilon:       DefaultMoveEpsilon,
		BufferSize:        DefaultBufferSize,
		RestTimeout:       DefaultRestTimeout,
	}
}

// WithAxis returns a copy of o with the axis replaced.
func (o Options) WithAxis(axis Axis) Options {
	o.Axis = axis
	return o
}

// Validate reports the first invalid field, wrapped in ErrInvalidOptions.
func (o Options) Validate() error {
	switch {
	case !o.Axis.valid():
		return fmt.Errorf("gesture: axis %v: %w", o.Axis, ErrInvalidOptions)
	case !(o.VelocityThreshold >= 0) || math.IsInf(o.VelocityThreshold, 0):
		return fmt.Errorf("gesture: velocity threshold %v: %w", o.VelocityThreshold, ErrInvalidOptions)
	case !(o.Smoothing > 0 && o.Smoothing <= 1):
		return fmt.Errorf("gesture: smoothing %v must be in (0, 1]: %w", o.Smoothing, ErrInvalidOptions)
	case !(o.MoveEpsilon >= 0) || math.IsInf(o.MoveEpsilon, 0):
		return fmt.Errorf("gesture: move epsilon %v: %w", o.MoveEpsilon, ErrInvalidOptions)
	case o.BufferSize < 2:
		return fmt.Errorf("gesture: buffer size %d must be at least 2: %w", o.BufferSize, ErrInvalidOptions)
	case o.RestTimeout < 0:
		return fmt.Errorf("gesture: rest timeout %v: %w", o.RestTimeout, ErrInvalidOptions)
	}
	return nil
}

// LoadOptions parses YAML (or JSON) into options. Fields absent from data
// keep their DefaultOptions values.
func LoadOptions(data []byte) (Options, error) {
	opts := DefaultOptions()
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("gesture: parse options: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// UnmarshalYAML lets option files spell the axis as "x", "y" or "both".
func (a *Axis) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseAxis(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalYAML writes the axis in its string form.
func (a Axis) MarshalYAML() (any, error) {
	return a.String(), nil
}
