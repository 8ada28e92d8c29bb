package program

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Load reads a program table from the given TOML file. An empty path yields
// the built-in default program.
func Load(path string) (*Program, error) {
	if path == "" {
		return Default(), nil
	}

	var p Program
	if _, err := toml.DecodeFile(path, &p); err != nil {
		return nil, fmt.Errorf("decode program file: %w", err)
	}
	if err := p.init(); err != nil {
		return nil, fmt.Errorf("invalid program [%s]: %w", path, err)
	}

	return &p, nil
}

// Default returns the compiled-in 3-day program, used when no program file
// is configured.
func Default() *Program {
	p := &Program{
		Name:  "3-day strength block",
		Weeks: 6,
		Days:  3,
		Rules: Rules{
			MaxWeeklyJumpCompound:  5,
			MaxWeeklyJumpIsolation: 2,
			DeloadFloorRatio:       0.80,
			BackoffLowRatio:        0.80,
			BackoffHighRatio:       0.85,
		},
		Exercises: []Exercise{
			{Name: "bench press", MuscleGroup: "chest", Equipment: EquipmentBarbell, Class: ClassCompound},
			{Name: "overhead press", MuscleGroup: "shoulders", Equipment: EquipmentBarbell, Class: ClassCompound},
			{Name: "incline dumbbell press", MuscleGroup: "chest", Equipment: EquipmentDumbbell, Class: ClassCompound},
			{Name: "triceps pushdown", MuscleGroup: "triceps", Equipment: EquipmentMachine, Class: ClassIsolation},
			{Name: "squat", MuscleGroup: "legs", Equipment: EquipmentBarbell, Class: ClassCompound},
			{Name: "romanian deadlift", MuscleGroup: "hamstrings", Equipment: EquipmentBarbell, Class: ClassCompound},
			{Name: "leg press", MuscleGroup: "legs", Equipment: EquipmentMachine, Class: ClassCompound},
			{Name: "leg curl", MuscleGroup: "hamstrings", Equipment: EquipmentMachine, Class: ClassIsolation},
			// heavy pulls move slower week to week, but deadlift can take more than +5
			{Name: "deadlift", MuscleGroup: "back", Equipment: EquipmentBarbell, Class: ClassCompound, MaxWeeklyJump: 10},
			{Name: "lat pulldown", MuscleGroup: "back", Equipment: EquipmentMachine, Class: ClassCompound},
			{Name: "dumbbell row", MuscleGroup: "back", Equipment: EquipmentDumbbell, Class: ClassCompound},
			{Name: "biceps curl", MuscleGroup: "biceps", Equipment: EquipmentDumbbell, Class: ClassIsolation},
		},
		Slots: []Slot{
			// day 1: push
			{Exercise: "bench press", Day: 1, SetTypes: []SetType{SetTypeWarmup, SetTypeHeavy, SetTypeBackoff}},
			{Exercise: "overhead press", Day: 1, SetTypes: []SetType{SetTypeWorking}},
			{Exercise: "incline dumbbell press", Day: 1, SetTypes: []SetType{SetTypeWorking}},
			{Exercise: "triceps pushdown", Day: 1, SetTypes: []SetType{SetTypeWorking, SetTypeDropset}},
			// day 2: legs
			{Exercise: "squat", Day: 2, SetTypes: []SetType{SetTypeWarmup, SetTypeHeavy, SetTypeBackoff}},
			{Exercise: "romanian deadlift", Day: 2, SetTypes: []SetType{SetTypeWorking}},
			{Exercise: "leg press", Day: 2, SetTypes: []SetType{SetTypeWorking}},
			{Exercise: "leg curl", Day: 2, SetTypes: []SetType{SetTypeWorking, SetTypeDropset}},
			// day 3: pull, plus a light bench revisit
			{Exercise: "deadlift", Day: 3, SetTypes: []SetType{SetTypeWarmup, SetTypeHeavy}},
			{Exercise: "lat pulldown", Day: 3, SetTypes: []SetType{SetTypeWorking}},
			{Exercise: "dumbbell row", Day: 3, SetTypes: []SetType{SetTypeWorking}},
			{Exercise: "bench press", Day: 3, SetTypes: []SetType{SetTypeWorking}},
			{Exercise: "biceps curl", Day: 3, SetTypes: []SetType{SetTypeWorking, SetTypeDropset}},
		},
	}

	if err := p.init(); err != nil {
		// the table above is static, a failure here is a programming error
		panic(fmt.Sprintf("default program: %s", err))
	}

	return p
}
