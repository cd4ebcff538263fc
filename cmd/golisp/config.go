package main

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// config holds the driver-only REPL ergonomics SPEC_FULL.md §6 and §9
// carve out of the core language: prompt text, history file location
// and whether to colorize output. None of it affects evaluation
// semantics. A missing config file is not an error; one that exists but
// cannot be read or parsed is reported to the caller.
type config struct {
	Prompt       string `yaml:"prompt"`
	HistoryFile  string `yaml:"history_file"`
	Colors       bool   `yaml:"colors"`
	HostLanguage string `yaml:"host_language"`
}

func defaultConfig() *config {
	return &config{
		Prompt:       "user> ",
		HistoryFile:  "/tmp/golisp_history",
		Colors:       true,
		HostLanguage: "golisp",
	}
}

// loadConfig reads path when one is given (and only that file); with an
// empty path it reads ./golisp.yaml, or failing that ~/.golisp.yaml.
// Whatever keys are present are merged over defaultConfig.
// No config file existing is not an error.
func loadConfig(path string) (*config, error) {
	cfg := defaultConfig()

	candidates := []string{path}
	if path == "" {
		candidates = []string{"golisp.yaml"}
		if home, err := os.UserHomeDir(); err == nil {
			candidates = append(candidates, filepath.Join(home, ".golisp.yaml"))
		}
	}

	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		data, err := os.ReadFile(candidate)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
		break
	}

	return cfg, nil
}
