package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runArena(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("ARENA_LOG_LEVEL", "error")
	t.Setenv("ARENA_SCENARIO", "")

	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRoster_DefaultScenario(t *testing.T) {
	out, err := runArena(t, "roster")
	require.NoError(t, err)

	assert.Contains(t, out, "--- Smaug ---")
	assert.Contains(t, out, "Date of birth: 19740115")
	assert.Contains(t, out, "Age: 51")
	assert.Contains(t, out, "Fire power: 80")
	assert.Contains(t, out, "Type: Dragon")
	assert.Contains(t, out, "Mana: 45")
	assert.Contains(t, out, "Type: Orc")
}

func TestBattle_DefaultScenario(t *testing.T) {
	out, err := runArena(t, "battle")
	require.NoError(t, err)

	assert.Contains(t, out, "=== BATTLE BEGINS! ===")
	assert.Contains(t, out, "--- Dragon's Turn ---\nLegolas takes 20 damage (health 85 -> 65)")
	assert.Contains(t, out, "--- Low-rage orc tries to go berserk ---")
	assert.Contains(t, out, "Smaug breathes fire on Legolas for 20 damage")
	assert.Contains(t, out, "=== FAILED ACTIONS ===")
	assert.Contains(t, out, "=== FINAL STATUS ===")
	assert.Regexp(t, `Smaug\s+Dragon\s+80\s+Alive`, out)
	assert.Regexp(t, `Legolas\s+Elf\s+0\s+Dead`, out)
}

func TestBattle_ScenarioFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "duel.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
reference_date: "2025-09-22"
creatures:
  - kind: dragon
    name: Ember
    born: "2001-04-01"
    health: 100
    fire_power: 20
  - kind: creature
    name: Dummy
    born: "2020-01-01"
    health: 30
turns:
  - actor: Ember
    action: breathe_fire
    target: Dummy
    repeat: 2
`), 0o600))

	out, err := runArena(t, "--scenario", path, "battle")
	require.NoError(t, err)

	assert.NotContains(t, out, "FAILED ACTIONS")
	assert.Regexp(t, `Dummy\s+Creature\s+0\s+Dead`, out)
	assert.Regexp(t, `Ember\s+Dragon\s+100\s+Alive`, out)
}

func TestBattle_MissingScenario(t *testing.T) {
	_, err := runArena(t, "--scenario", filepath.Join(t.TempDir(), "nope.yaml"), "battle")
	assert.Error(t, err)
}

func TestRoot_BadLogLevel(t *testing.T) {
	t.Setenv("ARENA_LOG_LEVEL", "loud")

	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs([]string{"roster"})
	cmd.SetErr(&bytes.Buffer{})
	assert.Error(t, cmd.ExecuteContext(context.Background()))
}
