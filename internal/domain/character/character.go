package character

import (
	"time"
)

// Race is a playable race key
type Race string

const (
	RaceHuman    Race = "HUMAN"
	RaceDwarf    Race = "DWARF"
	RaceElf      Race = "ELF"
	RaceHalfling Race = "HALFLING"
)

// Class is a playable class key
type Class string

const (
	ClassWarrior Class = "WARRIOR"
	ClassRogue   Class = "ROGUE"
	ClassMage    Class = "MAGE"
	ClassCleric  Class = "CLERIC"
	ClassRanger  Class = "RANGER"
)

// Stats holds the ten primary attributes
type Stats struct {
	WeaponSkill    int `json:"weapon_skill"`
	BallisticSkill int `json:"ballistic_skill"`
	Strength       int `json:"strength"`
	Toughness      int `json:"toughness"`
	Initiative     int `json:"initiative"`
	Agility        int `json:"agility"`
	Dexterity      int `json:"dexterity"`
	Intelligence   int `json:"intelligence"`
	Willpower      int `json:"willpower"`
	Fellowship     int `json:"fellowship"`
}

// Add returns the sum of two stat blocks
func (s Stats) Add(other Stats) Stats {
	return Stats{
		WeaponSkill:    s.WeaponSkill + other.WeaponSkill,
		BallisticSkill: s.BallisticSkill + other.BallisticSkill,
		Strength:       s.Strength + other.Strength,
		Toughness:      s.Toughness + other.Toughness,
		Initiative:     s.Initiative + other.Initiative,
		Agility:        s.Agility + other.Agility,
		Dexterity:      s.Dexterity + other.Dexterity,
		Intelligence:   s.Intelligence + other.Intelligence,
		Willpower:      s.Willpower + other.Willpower,
		Fellowship:     s.Fellowship + other.Fellowship,
	}
}

// Character represents a player character, including the position triple the
// dungeon engine reads and writes
type Character struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Race   Race   `json:"race"`
	Class  Class  `json:"class"`
	Stats  Stats  `json:"stats"`
	Skills Skills `json:"skills"`

	Level         int `json:"level"`
	Experience    int `json:"experience"`
	UpgradePoints int `json:"upgrade_points"`

	Health         int `json:"health"`
	MaxHealth      int `json:"max_health"`
	Mana           int `json:"mana"`
	MaxMana        int `json:"max_mana"`
	Gold           int `json:"gold"`
	InventorySlots int `json:"inventory_slots"`

	CurrentDungeonID string `json:"current_dungeon_id,omitempty"`
	CurrentRoomX     int    `json:"current_room_x"`
	CurrentRoomY     int    `json:"current_room_y"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// InDungeon reports whether the character currently occupies a dungeon instance
func (c *Character) InDungeon() bool {
	return c.CurrentDungeonID != ""
}
