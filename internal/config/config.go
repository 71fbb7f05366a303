package config

import (
	"fmt"
	"image/color"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/tonhe/graf/internal/chart"
)

type Config struct {
	Theme           string `toml:"theme"`
	Kind            string `toml:"kind"`
	Steps           int    `toml:"steps"`
	ExtendGridlines bool   `toml:"extend_gridlines"`
	AxisColor       string `toml:"axis_color"`
	DataColor       string `toml:"data_color"`
	Width           int    `toml:"width"`
	Height          int    `toml:"height"`
	LogLevel        string `toml:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		Theme:     "solarized-dark",
		Kind:      "line",
		Steps:     5,
		AxisColor: "#000000",
		DataColor: "#0000ff",
		Width:     800,
		Height:    400,
		LogLevel:  "info",
	}
}

func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func SaveConfig(cfg *Config, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}

// ChartConfig converts the stored settings into a chart.Config.
func (c *Config) ChartConfig() (chart.Config, error) {
	out := chart.DefaultConfig()
	if c.Kind != "" {
		k, err := chart.ParseKind(c.Kind)
		if err != nil {
			return out, err
		}
		out.Kind = k
	}
	if c.Steps != 0 {
		out.Steps = c.Steps
	}
	out.ExtendGridlines = c.ExtendGridlines

	var err error
	if c.AxisColor != "" {
		if out.AxisColor, err = ParseColor(c.AxisColor); err != nil {
			return out, fmt.Errorf("axis_color: %w", err)
		}
	}
	if c.DataColor != "" {
		if out.DataColor, err = ParseColor(c.DataColor); err != nil {
			return out, fmt.Errorf("data_color: %w", err)
		}
	}
	return out, nil
}

// ParseColor parses a "#rrggbb" hex string into an opaque color.
func ParseColor(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
