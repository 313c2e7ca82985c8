package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"monkey/internal/config"
	"monkey/internal/driver"
	"monkey/internal/parser"
)

// settings is monkey.toml with the command line applied on top.
type settings struct {
	cfg        config.Config
	configPath string
	crossCheck bool
}

func loadSettings(cmd *cobra.Command) (*settings, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}

	var cfg config.Config
	if path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, path, err = config.Resolve(".")
	}
	if err != nil {
		return nil, err
	}
	s := &settings{cfg: cfg, configPath: path}
	if path != "" {
		log.Infof("using config %s", path)
	}

	flags := cmd.Flags()
	if flags.Changed("color") {
		if s.cfg.Output.Color, err = flags.GetString("color"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("max-diagnostics") {
		if s.cfg.Output.MaxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
			return nil, err
		}
	}
	if flags.Lookup("format") != nil && flags.Changed("format") {
		if s.cfg.Output.Format, err = flags.GetString("format"); err != nil {
			return nil, err
		}
	}
	if flags.Lookup("values") != nil && flags.Changed("values") {
		if s.cfg.Parser.StatementValues, err = flags.GetBool("values"); err != nil {
			return nil, err
		}
	}
	if flags.Lookup("jobs") != nil && flags.Changed("jobs") {
		if s.cfg.Check.Jobs, err = flags.GetInt("jobs"); err != nil {
			return nil, err
		}
	}
	if flags.Lookup("crosscheck") != nil {
		if s.crossCheck, err = flags.GetBool("crosscheck"); err != nil {
			return nil, err
		}
	}
	if err := s.cfg.Validate(); err != nil {
		return nil, err
	}

	switch s.cfg.Output.Color {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		color.NoColor = !isTerminal(os.Stderr)
	}

	return s, nil
}

func (s *settings) modes() []parser.Mode {
	if s.cfg.Parser.StatementValues {
		return []parser.Mode{parser.StatementValues}
	}
	return nil
}

func (s *settings) driverOptions() driver.Options {
	return driver.Options{
		Modes:      s.modes(),
		Jobs:       s.cfg.Check.Jobs,
		CrossCheck: s.crossCheck,
	}
}
