package character

// Skill is a learnable skill key
type Skill string

const (
	// Melee
	SkillSword          Skill = "swordSkill"
	SkillTwoHandedSword Skill = "twoHandedSwordSkill"
	SkillAxe            Skill = "axeSkill"
	SkillTwoHandedAxe   Skill = "twoHandedAxeSkill"
	SkillDagger         Skill = "daggerSkill"
	SkillSpear          Skill = "spearSkill"
	SkillMace           Skill = "maceSkill"
	// Ranged
	SkillBow      Skill = "bowSkill"
	SkillCrossbow Skill = "crossbowSkill"
	SkillSling    Skill = "slingSkill"
	SkillThrowing Skill = "throwingSkill"
	// Magic
	SkillFireMagic      Skill = "fireMagicSkill"
	SkillIceMagic       Skill = "iceMagicSkill"
	SkillLightningMagic Skill = "lightningMagicSkill"
	SkillHealingMagic   Skill = "healingMagicSkill"
	SkillDarkMagic      Skill = "darkMagicSkill"
	SkillLightMagic     Skill = "lightMagicSkill"
	SkillNatureMagic    Skill = "natureMagicSkill"
	// Defense and utility
	SkillDodge       Skill = "dodgeSkill"
	SkillBlock       Skill = "blockSkill"
	SkillParry       Skill = "parrySkill"
	SkillLockpicking Skill = "lockpickingSkill"
	SkillStealth     Skill = "stealthSkill"
	SkillPerception  Skill = "perceptionSkill"
)

// Skills maps each learnable skill to its current value
type Skills map[Skill]int

// AllSkills lists every learnable skill
func AllSkills() []Skill {
	return []Skill{
		SkillSword, SkillTwoHandedSword, SkillAxe, SkillTwoHandedAxe,
		SkillDagger, SkillSpear, SkillMace,
		SkillBow, SkillCrossbow, SkillSling, SkillThrowing,
		SkillFireMagic, SkillIceMagic, SkillLightningMagic, SkillHealingMagic,
		SkillDarkMagic, SkillLightMagic, SkillNatureMagic,
		SkillDodge, SkillBlock, SkillParry,
		SkillLockpicking, SkillStealth, SkillPerception,
	}
}

// Starting resource values
const (
	StartingHealth         = 100
	StartingMana           = 50
	StartingGold           = 100
	DefaultInventorySlots  = 20
	baseStatValue          = 20
	baseDodgeSkill         = 10 // everyone starts with basic dodge
	basePerceptionSkill    = 5  // and basic perception
	UpgradeStatCostFactor  = 3  // stats cost 3x more than skills
	UpgradeSkillCostFactor = 1
)

// RaceDefinition describes a playable race
type RaceDefinition struct {
	Name          string
	StatModifiers Stats
}

// ClassDefinition describes a playable class
type ClassDefinition struct {
	Name           string
	StatModifiers  Stats
	StartingSkills Skills
}

var raceDefinitions = map[Race]RaceDefinition{
	RaceHuman: {
		Name:          "Human",
		StatModifiers: Stats{Fellowship: 5},
	},
	RaceDwarf: {
		Name:          "Dwarf",
		StatModifiers: Stats{Toughness: 10, Strength: 5},
	},
	RaceElf: {
		Name:          "Elf",
		StatModifiers: Stats{Agility: 10, Dexterity: 5},
	},
	RaceHalfling: {
		Name:          "Halfling",
		StatModifiers: Stats{Agility: 10, Dexterity: 10},
	},
}

var classDefinitions = map[Class]ClassDefinition{
	ClassWarrior: {
		Name:          "Warrior",
		StatModifiers: Stats{WeaponSkill: 15, Strength: 10},
		StartingSkills: Skills{
			SkillSword: 20, SkillAxe: 15, SkillTwoHandedSword: 15, SkillMace: 10,
			SkillBlock: 20, SkillParry: 15,
		},
	},
	ClassRogue: {
		Name:          "Rogue",
		StatModifiers: Stats{Agility: 15, Dexterity: 15},
		StartingSkills: Skills{
			SkillDagger: 25, SkillSword: 15, SkillThrowing: 15,
			SkillDodge: 25, SkillStealth: 25, SkillLockpicking: 20, SkillPerception: 20,
		},
	},
	ClassMage: {
		Name:          "Mage",
		StatModifiers: Stats{Intelligence: 20, Willpower: 15},
		StartingSkills: Skills{
			SkillDagger: 10, SkillFireMagic: 20, SkillIceMagic: 20, SkillLightningMagic: 20,
			SkillDodge: 15,
		},
	},
	ClassCleric: {
		Name:          "Cleric",
		StatModifiers: Stats{Willpower: 15, Fellowship: 10},
		StartingSkills: Skills{
			SkillMace: 15, SkillHealingMagic: 30, SkillLightMagic: 20,
			SkillBlock: 10, SkillPerception: 15,
		},
	},
	ClassRanger: {
		Name:          "Ranger",
		StatModifiers: Stats{BallisticSkill: 15, Agility: 10},
		StartingSkills: Skills{
			SkillBow: 30, SkillDagger: 15, SkillSpear: 15, SkillNatureMagic: 10,
			SkillDodge: 20, SkillPerception: 25, SkillStealth: 15,
		},
	},
}

// RaceByKey returns the definition for a race key
func RaceByKey(key Race) (RaceDefinition, bool) {
	def, ok := raceDefinitions[key]
	return def, ok
}

// ClassByKey returns the definition for a class key
func ClassByKey(key Class) (ClassDefinition, bool) {
	def, ok := classDefinitions[key]
	return def, ok
}

// BaseStats returns the flat starting attribute block before modifiers
func BaseStats() Stats {
	return Stats{
		WeaponSkill:    baseStatValue,
		BallisticSkill: baseStatValue,
		Strength:       baseStatValue,
		Toughness:      baseStatValue,
		Initiative:     baseStatValue,
		Agility:        baseStatValue,
		Dexterity:      baseStatValue,
		Intelligence:   baseStatValue,
		Willpower:      baseStatValue,
		Fellowship:     baseStatValue,
	}
}

// StartingStats applies race and class modifiers to a base block. A nil base
// uses the standard starting block.
func StartingStats(race Race, class Class, base *Stats) (Stats, bool) {
	raceDef, ok := RaceByKey(race)
	if !ok {
		return Stats{}, false
	}
	classDef, ok := ClassByKey(class)
	if !ok {
		return Stats{}, false
	}

	stats := BaseStats()
	if base != nil {
		stats = *base
	}
	return stats.Add(raceDef.StatModifiers).Add(classDef.StatModifiers), true
}

// StartingSkills returns the full skill table for a class, every skill present
func StartingSkills(class Class) (Skills, bool) {
	classDef, ok := ClassByKey(class)
	if !ok {
		return nil, false
	}

	skills := make(Skills, len(AllSkills()))
	for _, skill := range AllSkills() {
		skills[skill] = 0
	}
	skills[SkillDodge] = baseDodgeSkill
	skills[SkillPerception] = basePerceptionSkill

	for skill, value := range classDef.StartingSkills {
		skills[skill] = value
	}
	return skills, true
}

// StatByName returns a pointer to the named attribute field, used by upgrade
// point spending. Names match the JSON-ish camelCase keys the client sends.
func StatByName(stats *Stats, name string) (*int, bool) {
	switch name {
	case "weaponSkill":
		return &stats.WeaponSkill, true
	case "ballisticSkill":
		return &stats.BallisticSkill, true
	case "strength":
		return &stats.Strength, true
	case "toughness":
		return &stats.Toughness, true
	case "initiative":
		return &stats.Initiative, true
	case "agility":
		return &stats.Agility, true
	case "dexterity":
		return &stats.Dexterity, true
	case "intelligence":
		return &stats.Intelligence, true
	case "willpower":
		return &stats.Willpower, true
	case "fellowship":
		return &stats.Fellowship, true
	}
	return nil, false
}

// ValidSkill reports whether name is a learnable skill key
func ValidSkill(name string) bool {
	for _, skill := range AllSkills() {
		if string(skill) == name {
			return true
		}
	}
	return false
}
