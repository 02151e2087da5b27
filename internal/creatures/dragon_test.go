package creatures_test

import (
	"testing"

	"github.com/KirkDiggler/creature-arena/internal/creatures"
	dnderr "github.com/KirkDiggler/creature-arena/internal/errors"
	mockuuid "github.com/KirkDiggler/creature-arena/internal/uuid/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newDragon(t *testing.T, health, firePower int) *creatures.Dragon {
	t.Helper()
	d, err := creatures.NewDragon(&creatures.DragonConfig{
		Config: creatures.Config{
			ID:          "smaug",
			Name:        "Smaug",
			DateOfBirth: date(1974, 1, 15),
			Health:      health,
		},
		FirePower: firePower,
	})
	require.NoError(t, err)
	return d
}

func TestNewDragon_Validation(t *testing.T) {
	for _, fp := range []int{-1, 101} {
		_, err := creatures.NewDragon(&creatures.DragonConfig{
			Config:    creatures.Config{Name: "Smaug", DateOfBirth: date(1974, 1, 15), Health: 95},
			FirePower: fp,
		})
		assert.True(t, dnderr.IsInvalidArgument(err), "fire power %d", fp)
	}

	// Base validation still applies
	_, err := creatures.NewDragon(&creatures.DragonConfig{
		Config:    creatures.Config{Name: "Smaug", DateOfBirth: date(1974, 1, 15), Health: 101},
		FirePower: 50,
	})
	assert.True(t, dnderr.IsInvalidArgument(err))

	_, err = creatures.NewDragon(nil)
	assert.True(t, dnderr.IsInvalidArgument(err))

	d := newDragon(t, 100, 0)
	assert.Equal(t, 0, d.FirePower())
	assert.Equal(t, creatures.KindDragon, d.Kind())
}

func TestNewDragon_ValidationOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No expectations: a rejected config never asks for an ID
	gen := mockuuid.NewMockGenerator(ctrl)

	// Shared fields are checked before fire power
	_, err := creatures.NewDragon(&creatures.DragonConfig{
		Config:    creatures.Config{Name: "Smaug", DateOfBirth: date(1974, 1, 15), Health: 150, UUIDGenerator: gen},
		FirePower: 150,
	})
	require.Error(t, err)
	assert.Equal(t, "health", dnderr.GetMeta(err)["field"])

	_, err = creatures.NewDragon(&creatures.DragonConfig{
		Config:    creatures.Config{Name: "Smaug", DateOfBirth: date(1974, 1, 15), Health: 95, UUIDGenerator: gen},
		FirePower: 150,
	})
	require.Error(t, err)
	assert.Equal(t, "fire power", dnderr.GetMeta(err)["field"])
}

func TestBreatheFire(t *testing.T) {
	dragon := newDragon(t, 95, 80)
	target := newMonkey(t, 95)

	require.NoError(t, dragon.BreatheFire(target))

	assert.Equal(t, 70, dragon.FirePower())
	assert.Equal(t, 75, target.Health())
}

func TestBreatheFire_LowFirePower(t *testing.T) {
	dragon := newDragon(t, 95, 9)
	target := newMonkey(t, 95)

	err := dragon.BreatheFire(target)
	require.Error(t, err)
	assert.True(t, dnderr.IsLowResource(err))
	assert.Equal(t, "fire power", dnderr.GetMeta(err)["resource"])

	assert.Equal(t, 9, dragon.FirePower())
	assert.Equal(t, 95, target.Health())
}

func TestBreatheFire_DrainsToExactlyZero(t *testing.T) {
	dragon := newDragon(t, 95, 30)
	target := newMonkey(t, 100)

	for i := 0; i < 3; i++ {
		require.NoError(t, dragon.BreatheFire(target))
	}
	assert.Equal(t, 0, dragon.FirePower())
	assert.Equal(t, 40, target.Health())

	assert.True(t, dnderr.IsLowResource(dragon.BreatheFire(target)))
}

func TestBreatheFire_NilTarget(t *testing.T) {
	dragon := newDragon(t, 95, 80)

	assert.True(t, dnderr.IsInvalidArgument(dragon.BreatheFire(nil)))

	var typedNil *creatures.Elf
	assert.True(t, dnderr.IsInvalidArgument(dragon.BreatheFire(typedNil)))
	assert.Equal(t, 80, dragon.FirePower())
}

func TestBreatheFire_DeadTargetStaysAtZero(t *testing.T) {
	dragon := newDragon(t, 95, 80)
	target := newMonkey(t, 5)

	require.NoError(t, dragon.BreatheFire(target))
	require.NoError(t, dragon.BreatheFire(target))

	assert.Equal(t, 0, target.Health())
	assert.False(t, target.IsAlive())
	assert.Equal(t, 60, dragon.FirePower())
}

func TestRestoreFirePower(t *testing.T) {
	dragon := newDragon(t, 95, 85)

	require.NoError(t, dragon.RestoreFirePower(10))
	assert.Equal(t, 95, dragon.FirePower())

	require.NoError(t, dragon.RestoreFirePower(10))
	assert.Equal(t, 100, dragon.FirePower())

	err := dragon.RestoreFirePower(-1)
	assert.True(t, dnderr.IsInvalidArgument(err))
	assert.Equal(t, 100, dragon.FirePower())
}

func TestDragonDetails(t *testing.T) {
	dragon := newDragon(t, 95, 80)

	assert.Equal(t,
		"Name: Smaug\nDate of birth: 19740115\nAge: 51\nHealth: 95\nFire power: 80",
		dragon.Details())

	// Through the interface the override is used
	var c creatures.Combatant = dragon
	assert.Contains(t, c.Details(), "Fire power: 80")
}
