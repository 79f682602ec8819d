package models

import (
	"errors"
	"fmt"
)

// Archetype is a named ideological profile. It matches a respondent when
// every axis named in Conditions has exactly the required tier.
type Archetype struct {
	Name         string        // Display name
	DominantAxes []Axis        // Descriptive only, not used for matching
	Conditions   map[Axis]Tier // Required tier per relevant axis
	Description  string        // One-sentence summary
}

// Validate checks if the archetype has all required fields
func (a *Archetype) Validate() error {
	if a.Name == "" {
		return errors.New("archetype name is required")
	}
	if len(a.Conditions) == 0 {
		return errors.New("archetype must have at least one condition")
	}
	for axis, tier := range a.Conditions {
		if !axis.Valid() {
			return fmt.Errorf("condition references invalid axis %d", int(axis))
		}
		if !tier.Valid() {
			return fmt.Errorf("condition on %s has invalid tier %d", axis, int(tier))
		}
	}
	for _, axis := range a.DominantAxes {
		if !axis.Valid() {
			return fmt.Errorf("dominant axis %d is invalid", int(axis))
		}
	}
	return nil
}

// Satisfied reports whether every condition holds for the given tiers.
// Axes not named in Conditions are not consulted.
func (a *Archetype) Satisfied(tiers TierMap) bool {
	for axis, required := range a.Conditions {
		if tiers[axis] != required {
			return false
		}
	}
	return true
}

// ConditionAxes returns the conditioned axes in canonical order
func (a *Archetype) ConditionAxes() []Axis {
	var axes []Axis
	for _, axis := range AllAxes() {
		if _, ok := a.Conditions[axis]; ok {
			axes = append(axes, axis)
		}
	}
	return axes
}
