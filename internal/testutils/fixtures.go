package testutils

import (
	"github.com/KirkDiggler/creature-arena/internal/calendar"
	"github.com/KirkDiggler/creature-arena/internal/creatures"
)

// TestBirthDate is the birth date every fixture creature shares
var TestBirthDate = calendar.MustDate(1990, 1, 1)

func testConfig(id, name string, health int, emitter creatures.Emitter) creatures.Config {
	born := TestBirthDate
	return creatures.Config{
		ID:          id,
		Name:        name,
		DateOfBirth: &born,
		Health:      health,
		Clock:       calendar.DefaultClock(),
		Emitter:     emitter,
	}
}

// CreateTestCreature creates a plain creature. It panics on invalid input.
func CreateTestCreature(id, name string, health int, emitter creatures.Emitter) *creatures.Creature {
	cfg := testConfig(id, name, health, emitter)
	c, err := creatures.NewCreature(&cfg)
	if err != nil {
		panic(err)
	}
	return c
}

// CreateTestDragon creates a dragon with the given fire power
func CreateTestDragon(id, name string, health, firePower int, emitter creatures.Emitter) *creatures.Dragon {
	d, err := creatures.NewDragon(&creatures.DragonConfig{
		Config:    testConfig(id, name, health, emitter),
		FirePower: firePower,
	})
	if err != nil {
		panic(err)
	}
	return d
}

// CreateTestElf creates an elf with the given mana
func CreateTestElf(id, name string, health, mana int, emitter creatures.Emitter) *creatures.Elf {
	e, err := creatures.NewElf(&creatures.ElfConfig{
		Config: testConfig(id, name, health, emitter),
		Mana:   mana,
	})
	if err != nil {
		panic(err)
	}
	return e
}

// CreateTestOrc creates an orc with the given rage
func CreateTestOrc(id, name string, health, rage int, emitter creatures.Emitter) *creatures.Orc {
	o, err := creatures.NewOrc(&creatures.OrcConfig{
		Config: testConfig(id, name, health, emitter),
		Rage:   rage,
	})
	if err != nil {
		panic(err)
	}
	return o
}
