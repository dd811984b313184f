package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

// Settings is the flat display-toggle object consumed by rendering
// collaborators. The core persists and broadcasts it but never interprets
// the individual flags.
type Settings struct {
	ShowBasedIn           bool `json:"showBasedIn"`
	ShowConnectedVia      bool `json:"showConnectedVia"`
	ShowVpnWarning        bool `json:"showVpnWarning"`
	ShowYear              bool `json:"showYear"`
	ShowMismatchHighlight bool `json:"showMismatchHighlight"`
	ShowProtectedIcon     bool `json:"showProtectedIcon"`
	DebugMode             bool `json:"debugMode"`
}

// DefaultSettings has every display toggle on and debug off.
func DefaultSettings() Settings {
	return Settings{
		ShowBasedIn:           true,
		ShowConnectedVia:      true,
		ShowVpnWarning:        true,
		ShowYear:              true,
		ShowMismatchHighlight: true,
		ShowProtectedIcon:     true,
	}
}

// SettingsStore persists the settings object as a small JSON file and
// notifies registered listeners after every successful update.
type SettingsStore struct {
	mu        sync.Mutex
	path      string
	current   Settings
	listeners []func(Settings)
	log       *logrus.Entry
}

func NewSettingsStore(path string, log *logrus.Entry) (*SettingsStore, error) {
	if log == nil {
		log = logrus.WithField("component", "settings")
	}
	s := &SettingsStore{
		path:    path,
		current: DefaultSettings(),
		log:     log,
	}
	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if uerr := json.Unmarshal(raw, &s.current); uerr != nil {
			log.WithError(uerr).Warn("settings file unreadable, using defaults")
			s.current = DefaultSettings()
		}
	case os.IsNotExist(err):
		// First run, defaults apply.
	default:
		return nil, fmt.Errorf("reading settings: %w", err)
	}
	return s, nil
}

// Get returns the current settings snapshot.
func (s *SettingsStore) Get() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Update merges the recognized keys of patch into the current settings,
// persists the result and broadcasts it to every listener. Unknown keys
// and non-boolean values are ignored.
func (s *SettingsStore) Update(patch map[string]any) (Settings, error) {
	s.mu.Lock()
	next := s.current
	applyPatch(&next, patch)
	s.current = next
	listeners := make([]func(Settings), len(s.listeners))
	copy(listeners, s.listeners)
	err := s.persistLocked()
	s.mu.Unlock()

	if err != nil {
		s.log.WithError(err).Warn("persisting settings failed")
	}
	for _, fn := range listeners {
		fn(next)
	}
	return next, err
}

// OnChange registers a listener invoked with the full settings object
// after every update.
func (s *SettingsStore) OnChange(fn func(Settings)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func applyPatch(dst *Settings, patch map[string]any) {
	for key, val := range patch {
		b, ok := val.(bool)
		if !ok {
			continue
		}
		switch key {
		case "showBasedIn":
			dst.ShowBasedIn = b
		case "showConnectedVia":
			dst.ShowConnectedVia = b
		case "showVpnWarning":
			dst.ShowVpnWarning = b
		case "showYear":
			dst.ShowYear = b
		case "showMismatchHighlight":
			dst.ShowMismatchHighlight = b
		case "showProtectedIcon":
			dst.ShowProtectedIcon = b
		case "debugMode":
			dst.DebugMode = b
		}
	}
}

func (s *SettingsStore) persistLocked() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(s.current, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
