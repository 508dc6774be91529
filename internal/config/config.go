package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gamzabox/humble-line/internal/history"
	"github.com/gamzabox/humble-line/internal/logging"
)

// ErrNotFound indicates that the configuration file does not exist.
var ErrNotFound = errors.New("config not found")

const (
	// DefaultPrompt is shown before the input line when none is configured.
	DefaultPrompt = "> "
	// DefaultExitCommand is the line that ends the session.
	DefaultExitCommand = "exit"
)

// Config captures CLI configuration.
type Config struct {
	LogLevel        string `json:"logLevel,omitempty"`
	Prompt          string `json:"prompt,omitempty"`
	HistoryCapacity int    `json:"historyCapacity,omitempty"`
	ExitCommand     string `json:"exitCommand,omitempty"`
}

// Validate ensures configuration integrity.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid logLevel: %w", err)
	}
	if c.HistoryCapacity < 0 {
		return fmt.Errorf("invalid historyCapacity %d", c.HistoryCapacity)
	}
	if strings.ContainsAny(c.Prompt, "\r\n") {
		return errors.New("prompt must be a single line")
	}
	return nil
}

// EffectivePrompt returns the configured prompt, defaulting to DefaultPrompt.
func (c Config) EffectivePrompt() string {
	if c.Prompt == "" {
		return DefaultPrompt
	}
	return c.Prompt
}

// EffectiveHistoryCapacity returns the configured capacity, defaulting to
// history.DefaultCapacity.
func (c Config) EffectiveHistoryCapacity() int {
	if c.HistoryCapacity <= 0 {
		return history.DefaultCapacity
	}
	return c.HistoryCapacity
}

// EffectiveExitCommand returns the configured exit line, defaulting to
// DefaultExitCommand.
func (c Config) EffectiveExitCommand() string {
	if cmd := strings.TrimSpace(c.ExitCommand); cmd != "" {
		return cmd
	}
	return DefaultExitCommand
}

// Store abstracts configuration persistence.
type Store interface {
	Load() (Config, error)
	Save(Config) error
}

// FileStore implements Store backed by the user's home directory.
type FileStore struct {
	home string
	mu   sync.Mutex
}

// NewFileStore creates a FileStore rooted at home.
func NewFileStore(home string) *FileStore {
	return &FileStore{home: home}
}

// Dir returns the application directory under home.
func Dir(home string) string {
	return filepath.Join(home, ".humble-line")
}

func (f *FileStore) configPath() string {
	return filepath.Join(Dir(f.home), "config.json")
}

// Load reads configuration from disk.
func (f *FileStore) Load() (Config, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	path := f.configPath()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Config{}, ErrNotFound
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes configuration to disk.
func (f *FileStore) Save(cfg Config) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := cfg.Validate(); err != nil {
		return err
	}

	path := f.configPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

var _ Store = (*FileStore)(nil)
