package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/road-fighter/asset"
	"github.com/lixenwraith/road-fighter/config"
	"github.com/lixenwraith/road-fighter/logger"
)

var errNoTerminal = errors.New("no terminal")

func TestSessionFailureReachesLog(t *testing.T) {
	prevLog, prevSession := logger.Log, logger.Session
	t.Cleanup(func() {
		logger.Log, logger.Session = prevLog, prevSession
	})

	trackDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(trackDir, "track.txt"), []byte("tree,60\n"), 0o644); err != nil {
		t.Fatalf("Failed to write track: %v", err)
	}

	tests := []struct {
		name      string
		assetsDir string
		wantErr   error
		wantLog   string
	}{
		{
			name:      "missing assets",
			assetsDir: filepath.Join(t.TempDir(), "absent"),
			wantErr:   asset.ErrAssetMissing,
			wantLog:   "failed to open assets",
		},
		{
			name:      "screen unavailable",
			assetsDir: trackDir,
			wantErr:   errNoTerminal,
			wantLog:   "failed to create screen",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Assets.Dir = tt.assetsDir
			cfg.Log.File = filepath.Join(t.TempDir(), "session.log")

			err := session(cfg, func() (tcell.Screen, error) { return nil, errNoTerminal })
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Expected error wrapping %v, got %v", tt.wantErr, err)
			}

			// Written and closed before session returned
			data, err := os.ReadFile(cfg.Log.File)
			if err != nil {
				t.Fatalf("Failed to read log: %v", err)
			}
			text := string(data)
			if !strings.Contains(text, "session failed") || !strings.Contains(text, tt.wantLog) {
				t.Errorf("Expected log to record %q, got %q", tt.wantLog, text)
			}
		})
	}
}
