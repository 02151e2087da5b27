package services

import (
	"go.uber.org/zap"

	"github.com/KirkDiggler/creature-arena/internal/calendar"
	"github.com/KirkDiggler/creature-arena/internal/events"
	"github.com/KirkDiggler/creature-arena/internal/repositories/roster"
	"github.com/KirkDiggler/creature-arena/internal/services/battle"
	"github.com/KirkDiggler/creature-arena/internal/uuid"
)

// Provider holds all service instances
type Provider struct {
	BattleService battle.Service
	Roster        roster.Repository
	Bus           *events.Bus
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	RosterRepository roster.Repository
	Clock            calendar.Clock
	Bus              *events.Bus
	UUIDGenerator    uuid.Generator
	Logger           *zap.Logger
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	if cfg == nil {
		cfg = &ProviderConfig{}
	}

	// Use in-memory repository if none provided
	rosterRepo := cfg.RosterRepository
	if rosterRepo == nil {
		rosterRepo = roster.NewInMemoryRepository()
	}

	bus := cfg.Bus
	if bus == nil {
		bus = events.NewBus(cfg.Logger)
	}

	battleService := battle.NewService(&battle.ServiceConfig{
		Repository:    rosterRepo,
		Clock:         cfg.Clock,
		Bus:           bus,
		UUIDGenerator: cfg.UUIDGenerator,
		Logger:        cfg.Logger,
	})

	return &Provider{
		BattleService: battleService,
		Roster:        rosterRepo,
		Bus:           bus,
	}
}
