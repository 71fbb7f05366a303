package series

import (
	"errors"
	"fmt"

	"github.com/tonhe/graf/internal/chart"
)

// Series is a chart data file: values with aligned category labels and
// optional per-file drawing overrides.
type Series struct {
	Title           string    `toml:"title" yaml:"title"`
	Values          []float64 `toml:"values" yaml:"values"`
	Labels          []string  `toml:"labels,omitempty" yaml:"labels,omitempty"`
	Kind            string    `toml:"kind,omitempty" yaml:"kind,omitempty"`
	Steps           int       `toml:"steps,omitempty" yaml:"steps,omitempty"`
	ExtendGridlines *bool     `toml:"extend_gridlines,omitempty" yaml:"extend_gridlines,omitempty"`
}

var (
	ErrNoValues       = errors.New("series has no values")
	ErrLabelMismatch  = errors.New("label count does not match value count")
	ErrNegativeValues = errors.New("negative values are not supported")
)

// Validate checks the invariants a series file must hold before it is
// handed to the renderer.
func (s *Series) Validate() error {
	if len(s.Values) == 0 {
		return ErrNoValues
	}
	if len(s.Labels) != 0 && len(s.Labels) != len(s.Values) {
		return fmt.Errorf("%w: %d labels, %d values", ErrLabelMismatch, len(s.Labels), len(s.Values))
	}
	for i, v := range s.Values {
		if v < 0 {
			return fmt.Errorf("%w: value %d is %g", ErrNegativeValues, i, v)
		}
	}
	return nil
}

// Apply returns cfg with the series overrides applied.
func (s *Series) Apply(cfg chart.Config) (chart.Config, error) {
	if s.Kind != "" {
		k, err := chart.ParseKind(s.Kind)
		if err != nil {
			return cfg, err
		}
		cfg.Kind = k
	}
	if s.Steps != 0 {
		cfg.Steps = s.Steps
	}
	if s.ExtendGridlines != nil {
		cfg.ExtendGridlines = *s.ExtendGridlines
	}
	return cfg, nil
}

// Max returns the largest value, or 0 for an empty series.
func (s *Series) Max() float64 {
	var m float64
	for i, v := range s.Values {
		if i == 0 || v > m {
			m = v
		}
	}
	return m
}
