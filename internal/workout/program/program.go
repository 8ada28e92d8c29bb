package program

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

type SetType string

const (
	SetTypeWarmup  SetType = "warmup"
	SetTypeHeavy   SetType = "heavy"
	SetTypeBackoff SetType = "backoff"
	SetTypeWorking SetType = "working"
	SetTypeDropset SetType = "dropset"
)

// WeightSetTypes are the set types that carry a recommendable weight,
// i.e. everything except warmups.
var WeightSetTypes = []SetType{SetTypeHeavy, SetTypeBackoff, SetTypeWorking, SetTypeDropset}

func (st SetType) Valid() bool {
	switch st {
	case SetTypeWarmup, SetTypeHeavy, SetTypeBackoff, SetTypeWorking, SetTypeDropset:
		return true
	}
	return false
}

type Equipment string

const (
	EquipmentBarbell  Equipment = "barbell"
	EquipmentDumbbell Equipment = "dumbbell"
	EquipmentMachine  Equipment = "machine"
)

// the smallest dumbbell on the rack
const dumbbellMinWeight = 4

// RoundingIncrement returns the weight step this equipment can be loaded in.
func (e Equipment) RoundingIncrement() float64 {
	switch e {
	case EquipmentDumbbell:
		return 1
	case EquipmentBarbell:
		return 10
	default:
		// pin-selector machines and everything unlisted
		return 5
	}
}

// Round snaps the given weight to the nearest loadable increment, never
// going below zero. Dumbbell weights below the smallest available dumbbell
// are raised to it.
func (e Equipment) Round(weight float64) float64 {
	if weight <= 0 {
		return 0
	}
	rounded := math.Round(weight/e.RoundingIncrement()) * e.RoundingIncrement()
	if rounded < 0 {
		rounded = 0
	}
	if e == EquipmentDumbbell && rounded < dumbbellMinWeight {
		rounded = dumbbellMinWeight
	}
	return rounded
}

type ExerciseClass string

const (
	ClassCompound  ExerciseClass = "compound"
	ClassIsolation ExerciseClass = "isolation"
)

type Exercise struct {
	Name        string        `toml:"name" json:"name"`
	MuscleGroup string        `toml:"muscle_group" json:"muscleGroup"`
	Equipment   Equipment     `toml:"equipment" json:"equipment"`
	Class       ExerciseClass `toml:"class" json:"class"`
	// MaxWeeklyJump overrides the class-wide weekly increase cap
	// for this exercise; zero means "use the class default".
	MaxWeeklyJump float64 `toml:"max_weekly_jump" json:"maxWeeklyJump,omitempty"`
}

// Slot binds an exercise to a program day, with the ordered set types the
// exercise legitimately has on that day.
type Slot struct {
	Exercise string    `toml:"exercise" json:"exercise"`
	Day      int       `toml:"day" json:"day"`
	SetTypes []SetType `toml:"set_types" json:"setTypes"`
}

type Rules struct {
	MaxWeeklyJumpCompound  float64 `toml:"max_weekly_jump_compound" json:"maxWeeklyJumpCompound"`
	MaxWeeklyJumpIsolation float64 `toml:"max_weekly_jump_isolation" json:"maxWeeklyJumpIsolation"`
	DeloadFloorRatio       float64 `toml:"deload_floor_ratio" json:"deloadFloorRatio"`
	BackoffLowRatio        float64 `toml:"backoff_low_ratio" json:"backoffLowRatio"`
	BackoffHighRatio       float64 `toml:"backoff_high_ratio" json:"backoffHighRatio"`
}

// BackoffMidpoint is the ratio out-of-band backoff weights get corrected to.
func (r Rules) BackoffMidpoint() float64 {
	return (r.BackoffLowRatio + r.BackoffHighRatio) / 2
}

// Program is the static training program table: the exercise registry, the
// per-day slots and the progression rules. It is loaded once at startup and
// never mutated afterwards.
type Program struct {
	Name      string     `toml:"name" json:"name"`
	Weeks     int        `toml:"weeks" json:"weeks"`
	Days      int        `toml:"days" json:"days"`
	Rules     Rules      `toml:"rules" json:"rules"`
	Exercises []Exercise `toml:"exercise" json:"exercises"`
	Slots     []Slot     `toml:"slot" json:"slots"`

	exercisesByName map[string]Exercise
	slotSetTypes    map[string][]SetType
}

func (p *Program) init() error {
	if p.Weeks < 1 {
		return errors.New("program needs at least one week")
	}
	if p.Days < 1 {
		return errors.New("program needs at least one day")
	}

	p.exercisesByName = make(map[string]Exercise)
	for _, ex := range p.Exercises {
		if ex.Name == "" {
			return errors.New("exercise with empty name")
		}
		key := strings.ToLower(ex.Name)
		if _, ok := p.exercisesByName[key]; ok {
			return fmt.Errorf("duplicate exercise: %s", ex.Name)
		}
		switch ex.Equipment {
		case EquipmentBarbell, EquipmentDumbbell, EquipmentMachine:
		default:
			return fmt.Errorf("exercise %s: unknown equipment %q", ex.Name, ex.Equipment)
		}
		switch ex.Class {
		case ClassCompound, ClassIsolation:
		default:
			return fmt.Errorf("exercise %s: unknown class %q", ex.Name, ex.Class)
		}
		p.exercisesByName[key] = ex
	}

	p.slotSetTypes = make(map[string][]SetType)
	for _, slot := range p.Slots {
		if slot.Day < 1 || slot.Day > p.Days {
			return fmt.Errorf("slot %s: day %d out of range", slot.Exercise, slot.Day)
		}
		if _, ok := p.exercisesByName[strings.ToLower(slot.Exercise)]; !ok {
			return fmt.Errorf("slot references unknown exercise: %s", slot.Exercise)
		}
		for _, st := range slot.SetTypes {
			if !st.Valid() {
				return fmt.Errorf("slot %s day %d: unknown set type %q", slot.Exercise, slot.Day, st)
			}
		}
		key := slotKey(slot.Exercise, slot.Day)
		if _, ok := p.slotSetTypes[key]; ok {
			return fmt.Errorf("duplicate slot: %s day %d", slot.Exercise, slot.Day)
		}
		p.slotSetTypes[key] = slot.SetTypes
	}

	return nil
}

func slotKey(exercise string, day int) string {
	return fmt.Sprintf("%s|%d", strings.ToLower(exercise), day)
}

// ExerciseByName looks an exercise up by name, case-insensitively.
func (p *Program) ExerciseByName(name string) (Exercise, bool) {
	ex, ok := p.exercisesByName[strings.ToLower(name)]
	return ex, ok
}

// AllowedSetTypes returns the set-type whitelist for the given exercise and
// day. The second return value is false when no slot is configured for that
// combination, in which case callers should treat all set types as allowed.
func (p *Program) AllowedSetTypes(exercise string, day int) ([]SetType, bool) {
	setTypes, ok := p.slotSetTypes[slotKey(exercise, day)]
	return setTypes, ok
}

// MaxWeeklyJump returns the hard weekly weight increase cap for the given
// exercise: its own override when set, otherwise the class default.
func (p *Program) MaxWeeklyJump(exercise string) float64 {
	ex, ok := p.ExerciseByName(exercise)
	if !ok {
		return p.Rules.MaxWeeklyJumpCompound
	}
	if ex.MaxWeeklyJump > 0 {
		return ex.MaxWeeklyJump
	}
	if ex.Class == ClassIsolation {
		return p.Rules.MaxWeeklyJumpIsolation
	}
	return p.Rules.MaxWeeklyJumpCompound
}

// RoundWeight rounds a weight to the increment of the exercise's equipment.
// Unlisted exercises round like machines.
func (p *Program) RoundWeight(exercise string, weight float64) float64 {
	equipment := EquipmentMachine
	if ex, ok := p.ExerciseByName(exercise); ok {
		equipment = ex.Equipment
	}
	return equipment.Round(weight)
}

// SlotsForDay returns the slots of the given day, in program order.
func (p *Program) SlotsForDay(day int) []Slot {
	var slots []Slot
	for _, slot := range p.Slots {
		if slot.Day == day {
			slots = append(slots, slot)
		}
	}
	return slots
}

// OtherDays returns the days, apart from the given one, on which the
// exercise also has a slot.
func (p *Program) OtherDays(exercise string, day int) []int {
	var days []int
	for _, slot := range p.Slots {
		if slot.Day != day && strings.EqualFold(slot.Exercise, exercise) {
			days = append(days, slot.Day)
		}
	}
	return days
}

// NextWeek returns the week after the given one, wrapping back to week 1
// past the final program week.
func (p *Program) NextWeek(week int) int {
	if week >= p.Weeks {
		return 1
	}
	return week + 1
}
