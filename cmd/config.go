package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/tonhe/graf/internal/chart"
	"github.com/tonhe/graf/internal/config"
	"github.com/tonhe/graf/tui/styles"
)

const configUsage = "Usage: graf config <path|show|theme|kind|steps|grid>"

func configCmd(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, configUsage)
		os.Exit(1)
	}

	switch args[0] {
	case "path":
		configPath()
	case "show":
		configShow()
	case "theme", "kind", "steps", "grid":
		if len(args) < 2 {
			fmt.Fprintf(os.Stderr, "Usage: graf config %s VALUE\n", args[0])
			os.Exit(1)
		}
		cfg := loadOrDefaultConfig()
		if err := setConfigValue(cfg, args[0], args[1]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		saveConfig(cfg)
		fmt.Printf("Default %s set to %q.\n", args[0], args[1])
	default:
		fmt.Fprintf(os.Stderr, "Unknown config command: %s\n", args[0])
		fmt.Fprintln(os.Stderr, configUsage)
		os.Exit(1)
	}
}

func configPath() {
	path, err := config.GetConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(path)
}

func configShow() {
	if err := toml.NewEncoder(os.Stdout).Encode(loadOrDefaultConfig()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setConfigValue validates value and stores it under key.
func setConfigValue(cfg *config.Config, key, value string) error {
	switch key {
	case "theme":
		if styles.GetThemeByName(value) == nil {
			msg := fmt.Sprintf("unknown theme %q", value)
			if s := styles.SuggestThemes(value); len(s) > 0 {
				msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(s, ", "))
			} else {
				msg += "; run 'graf themes' to see available themes"
			}
			return fmt.Errorf("%s", msg)
		}
		cfg.Theme = value
	case "kind":
		k, err := chart.ParseKind(value)
		if err != nil {
			return err
		}
		cfg.Kind = k.String()
	case "steps":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return fmt.Errorf("steps must be a positive integer, got %q", value)
		}
		cfg.Steps = n
	case "grid":
		on, err := parseOnOff(value)
		if err != nil {
			return err
		}
		cfg.ExtendGridlines = on
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return nil
}

func parseOnOff(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("expected on or off, got %q", s)
}

func themesCmd() {
	for _, name := range styles.ListThemes() {
		fmt.Println(name)
	}
}

// loadOrDefaultConfig loads the config from disk, falling back to defaults.
func loadOrDefaultConfig() *config.Config {
	path, err := config.GetConfigPath()
	if err != nil {
		return config.DefaultConfig()
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring %s: %v\n", path, err)
		return config.DefaultConfig()
	}
	return cfg
}

// saveConfig writes the config to disk, creating directories as needed.
func saveConfig(cfg *config.Config) {
	if err := config.EnsureDirs(); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating config directories: %v\n", err)
		os.Exit(1)
	}

	path, err := config.GetConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := config.SaveConfig(cfg, path); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
		os.Exit(1)
	}
}
