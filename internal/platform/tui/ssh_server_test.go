package tui

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/snakeloop/internal/config"
)

func TestNewSSHServer(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "keys", "host_key")

	srv, err := NewSSHServer(cfg, nil)
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	if srv.Addr() != cfg.Address {
		t.Errorf("Addr() = %q, expected %q", srv.Addr(), cfg.Address)
	}
	if srv.Sessions().Len() != 0 {
		t.Errorf("new server has %d sessions, expected 0", srv.Sessions().Len())
	}
}

func TestNewSSHServerRejectsInvalidGame(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")
	cfg.Game.Render.CellSize = 0

	_, err := NewSSHServer(cfg, nil)
	if !errors.Is(err, config.ErrInvalid) {
		t.Errorf("NewSSHServer() error = %v, expected config.ErrInvalid", err)
	}
}
