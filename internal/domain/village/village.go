package village

import (
	"time"
)

// EventDifficulty controls how often village services roll unavailable
type EventDifficulty string

const (
	EventDifficultyReliable  EventDifficulty = "RELIABLE"
	EventDifficultyRealistic EventDifficulty = "REALISTIC"
	EventDifficultyChaotic   EventDifficulty = "CHAOTIC"
)

// UnavailableChance returns the probability a service rolls unavailable
func (d EventDifficulty) UnavailableChance() float64 {
	switch d {
	case EventDifficultyRealistic:
		return 0.15
	case EventDifficultyChaotic:
		return 0.35
	default:
		return 0
	}
}

// Valid reports whether d is a known difficulty
func (d EventDifficulty) Valid() bool {
	switch d {
	case EventDifficultyReliable, EventDifficultyRealistic, EventDifficultyChaotic:
		return true
	}
	return false
}

// ServiceKind identifies one of the village services
type ServiceKind string

const (
	ServiceWeaponSmith     ServiceKind = "weaponSmith"
	ServiceArmorSmith      ServiceKind = "armorSmith"
	ServicePotionShop      ServiceKind = "potionShop"
	ServiceTavern          ServiceKind = "tavern"
	ServiceGeneralMerchant ServiceKind = "generalMerchant"
	ServiceTemple          ServiceKind = "temple"
	ServiceBlacksmith      ServiceKind = "blacksmith"
	ServiceEnchanter       ServiceKind = "enchanter"
	ServiceAlchemist       ServiceKind = "alchemist"
	ServiceTrainingGround  ServiceKind = "trainingGround"
)

// AllServiceKinds lists every village service
func AllServiceKinds() []ServiceKind {
	return []ServiceKind{
		ServiceWeaponSmith, ServiceArmorSmith, ServicePotionShop, ServiceTavern,
		ServiceGeneralMerchant, ServiceTemple, ServiceBlacksmith, ServiceEnchanter,
		ServiceAlchemist, ServiceTrainingGround,
	}
}

// ServiceState tracks one service's roster membership and current availability
type ServiceState struct {
	Enabled   bool   `json:"enabled"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"` // why the service is unavailable
}

// Village is the hub settlement tied to one character
type Village struct {
	CharacterID         string                        `json:"character_id"`
	Name                string                        `json:"name"`
	Services            map[ServiceKind]*ServiceState `json:"services"`
	RandomEventsEnabled bool                          `json:"random_events_enabled"`
	EventDifficulty     EventDifficulty               `json:"event_difficulty"`
	LastEventRoll       *time.Time                    `json:"last_event_roll,omitempty"`
	CreatedAt           time.Time                     `json:"created_at"`
	UpdatedAt           time.Time                     `json:"updated_at"`
}

// Service returns the state for a kind, creating the entry if missing
func (v *Village) Service(kind ServiceKind) *ServiceState {
	if v.Services == nil {
		v.Services = make(map[ServiceKind]*ServiceState)
	}
	state, ok := v.Services[kind]
	if !ok {
		state = &ServiceState{}
		v.Services[kind] = state
	}
	return state
}

// UnavailableServices lists the enabled services that rolled unavailable
func (v *Village) UnavailableServices() []ServiceKind {
	var out []ServiceKind
	for _, kind := range AllServiceKinds() {
		if state, ok := v.Services[kind]; ok && state.Enabled && !state.Available {
			out = append(out, kind)
		}
	}
	return out
}
