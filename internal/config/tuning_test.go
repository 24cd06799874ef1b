package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default() is invalid: %v", err)
	}
	if got := Default().TickDuration(); got != time.Second/60 {
		t.Errorf("TickDuration() = %v, want %v", got, time.Second/60)
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	tuning, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if tuning != Default() {
		t.Errorf("Load(\"\") = %+v, want defaults", tuning)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, Tuning)
	}{
		{
			name: "partial override keeps defaults",
			yamlContent: `
gameOver: false
player:
  health: 3
spawn:
  maxEnemies: 6
  cooldown:
    min: 10
    max: 20
`,
			validate: func(t *testing.T, tuning Tuning) {
				if tuning.GameOver {
					t.Error("expected gameOver = false")
				}
				if tuning.Player.Health != 3 {
					t.Errorf("expected player health = 3, got %d", tuning.Player.Health)
				}
				if tuning.Player.MaxSpeed != 5 {
					t.Errorf("expected default maxSpeed = 5, got %f", tuning.Player.MaxSpeed)
				}
				if tuning.Spawn.MaxEnemies != 6 {
					t.Errorf("expected maxEnemies = 6, got %d", tuning.Spawn.MaxEnemies)
				}
				if tuning.Spawn.Cooldown != (Range{Min: 10, Max: 20}) {
					t.Errorf("expected cooldown 10-20, got %+v", tuning.Spawn.Cooldown)
				}
				if tuning.Arena.Width != 1000 {
					t.Errorf("expected default arena width = 1000, got %f", tuning.Arena.Width)
				}
			},
		},
		{
			name: "inverted range",
			yamlContent: `
enemy:
  fireCooldown:
    min: 300
    max: 100
`,
			wantErr:     true,
			errContains: "enemy.fireCooldown",
		},
		{
			name: "zero spawn cooldown",
			yamlContent: `
spawn:
  cooldown:
    min: 0
    max: 5
`,
			wantErr:     true,
			errContains: "spawn.cooldown.min",
		},
		{
			name: "player outside arena",
			yamlContent: `
player:
  startX: 990
`,
			wantErr:     true,
			errContains: "player start position",
		},
		{
			name:        "malformed yaml",
			yamlContent: "player: [",
			wantErr:     true,
			errContains: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tuning.yaml")
			if err := os.WriteFile(path, []byte(tt.yamlContent), 0o644); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}

			tuning, err := Load(path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q does not contain %q", err, tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, tuning)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "failed to read") {
		t.Errorf("expected read error, got %v", err)
	}
}

func TestGetEnvUint(t *testing.T) {
	t.Setenv("SHMUP_TEST_SEED", "42")
	if got := GetEnvUint("SHMUP_TEST_SEED", 7); got != 42 {
		t.Errorf("GetEnvUint = %d, want 42", got)
	}
	t.Setenv("SHMUP_TEST_SEED", "nope")
	if got := GetEnvUint("SHMUP_TEST_SEED", 7); got != 7 {
		t.Errorf("GetEnvUint with malformed value = %d, want fallback 7", got)
	}
	if got := GetEnv("SHMUP_TEST_UNSET_KEY", "fallback"); got != "fallback" {
		t.Errorf("GetEnv = %q, want fallback", got)
	}
}
