package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlayKeepsUnsetFields(t *testing.T) {
	base := Current()
	got, err := Overlay(base, []byte("fierce_tooth:\n  vision_range: 200\n"))
	require.NoError(t, err)

	assert.Equal(t, 200.0, got.FierceTooth.VisionRange)
	assert.Equal(t, base.FierceTooth.AttackRange, got.FierceTooth.AttackRange)
	assert.Equal(t, base.Player.Health, got.Player.Health)
}

func TestEmbeddedDefaultsMatchBuiltIns(t *testing.T) {
	base := Current()
	got, err := Overlay(base, defaultTuningYAML)
	require.NoError(t, err)
	assert.Equal(t, base.Player.JumpImpulses, got.Player.JumpImpulses)
	assert.Equal(t, base.Grenade.EnemyTiers, got.Grenade.EnemyTiers)
	assert.Equal(t, base.Screen, got.Screen)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Tuning)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Tuning) {}},
		{name: "zero tile", mutate: func(t *Tuning) { t.Screen.TileSize = 0 }, wantErr: true},
		{name: "dwell inverted", mutate: func(t *Tuning) { t.Enemy.DwellMin = 200 }, wantErr: true},
		{name: "no jumps", mutate: func(t *Tuning) { t.Player.JumpImpulses = nil }, wantErr: true},
		{name: "dead pink star", mutate: func(t *Tuning) { t.PinkStar.Health = 0 }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tuning := Current()
			tt.mutate(&tuning)
			err := tuning.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	saved := Current()
	t.Cleanup(func() { Apply(saved) })

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pink_star:\n  chase_speed: 6\n"), 0o644))

	source, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, source)
	assert.Equal(t, 6.0, PinkStar.ChaseSpeed)
	assert.Equal(t, saved.PinkStar.PatrolSpeed, PinkStar.PatrolSpeed)
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestStunSet(t *testing.T) {
	s := NewStunSet(SourceEnemy, SourceGrenade)
	assert.True(t, s.Has(SourceEnemy))
	assert.True(t, s.Has(SourceGrenade))
	assert.False(t, s.Has(SourcePlayer))
	assert.False(t, s.Has(SourceEnemyShot))
}
