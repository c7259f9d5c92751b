package gesture

import (
	"errors"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestDefaultOptionsValid(t *testing.T) {
	if err := DefaultOptions().Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Options)
	}{
		{"axis", func(o *Options) { o.Axis = Axis(7) }},
		{"negative threshold", func(o *Options) { o.VelocityThreshold = -1 }},
		{"zero smoothing", func(o *Options) { o.Smoothing = 0 }},
		{"smoothing above one", func(o *Options) { o.Smoothing = 1.5 }},
		{"negative epsilon", func(o *Options) { o.MoveEpsilon = -0.1 }},
		{"small buffer", func(o *Options) { o.BufferSize = 1 }},
		{"negative rest timeout", func(o *Options) { o.RestTimeout = -time.Millisecond }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := DefaultOptions()
			tt.modify(&o)
			if err := o.Validate(); !errors.Is(err, ErrInvalidOptions) {
				t.Errorf("Validate = %v, want ErrInvalidOptions", err)
			}
		})
	}
}

func TestLoadOptions(t *testing.T) {
	opts, err := LoadOptions([]byte("axis: y\nvelocity_threshold: 1.25\nrest_timeout: 250ms\n"))
	if err != nil {
		t.Fatal(err)
	}
	if opts.Axis != AxisY || opts.VelocityThreshold != 1.25 || opts.RestTimeout != 250*time.Millisecond {
		t.Errorf("loaded %+v", opts)
	}
	if opts.Smoothing != DefaultSmoothing || opts.BufferSize != DefaultBufferSize {
		t.Errorf("absent fields should keep defaults: %+v", opts)
	}
}

func TestLoadOptionsJSON(t *testing.T) {
	opts, err := LoadOptions([]byte(`{"axis": "x", "debug": true}`))
	if err != nil {
		t.Fatal(err)
	}
	if opts.Axis != AxisX || !opts.Debug {
		t.Errorf("loaded %+v", opts)
	}
}

func TestLoadOptionsErrors(t *testing.T) {
	for _, in := range []string{
		"axis: diagonal\n",
		"smoothing: 2\n",
		"buffer_size: [1]\n",
	} {
		if _, err := LoadOptions([]byte(in)); err == nil {
			t.Errorf("LoadOptions(%q) should fail", in)
		}
	}
}

func TestAxisMarshalYAML(t *testing.T) {
	out, err := yaml.Marshal(DefaultOptions().WithAxis(AxisY))
	if err != nil {
		t.Fatal(err)
	}
	back, err := LoadOptions(out)
	if err != nil {
		t.Fatalf("reload %q: %v", out, err)
	}
	if back.Axis != AxisY {
		t.Errorf("axis after reload = %v", back.Axis)
	}
}
