package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	// ErrCodeInvalid marks a config file that cannot be read, decoded or written
	ErrCodeInvalid = "config_invalid"
	// ErrCodeStateInvalid marks a state file that cannot be read, decoded or written
	ErrCodeStateInvalid = "state_invalid"
)

// DefaultPageURL is the page a fresh deck is mirrored into
const DefaultPageURL = "https://mushikago.example/deck"

// Config represents the application configuration
type Config struct {
	CatalogPath string `toml:"catalog_path"` // Empty means the embedded catalog
	PageURL     string `toml:"page_url"`
	Confirm     bool   `toml:"confirm"` // Wait for Enter after an alert on a terminal
}

// State is what the CLI remembers between runs: the last page URL
type State struct {
	URL string `toml:"url"`
}

// Error is a config or state failure tied to a file
type Error struct {
	Code string
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Path)
}

func (e *Error) Unwrap() error { return e.Err }

// Code extracts the error code, or "" when err is not an *Error
func Code(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "mushikago", "config.toml")
}

// GetStateFilePath returns the path to the state file
func GetStateFilePath() string {
	return filepath.Join(GetXDGDataHome(), "mushikago", "state.toml")
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		PageURL: DefaultPageURL,
		Confirm: true,
	}
}

// LoadConfig loads the config file, creating it with defaults when missing
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := Default()
		if err := writeTOML(configPath, config); err != nil {
			return nil, &Error{Code: ErrCodeInvalid, Path: configPath, Err: err}
		}
		return config, nil
	}

	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, &Error{Code: ErrCodeInvalid, Path: configPath, Err: err}
	}
	if config.PageURL == "" {
		config.PageURL = DefaultPageURL
	}

	return config, nil
}

// LoadState loads the state file. A missing file yields an empty state.
func LoadState() (*State, error) {
	statePath := GetStateFilePath()

	var state State
	if _, err := toml.DecodeFile(statePath, &state); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &State{}, nil
		}
		return nil, &Error{Code: ErrCodeStateInvalid, Path: statePath, Err: err}
	}

	return &state, nil
}

// SaveState writes the state file
func SaveState(state *State) error {
	statePath := GetStateFilePath()
	if err := writeTOML(statePath, state); err != nil {
		return &Error{Code: ErrCodeStateInvalid, Path: statePath, Err: err}
	}
	return nil
}

// writeTOML encodes v into path, creating the parent directory
func writeTOML(path string, v interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("error encoding TOML: %w", err)
	}

	return nil
}
