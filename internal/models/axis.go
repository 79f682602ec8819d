package models

import (
	"fmt"
	"strings"
)

// Axis identifies one ideological dimension measured by the questionnaire.
// The set is closed; tables reference axes through these constants only.
type Axis int

const (
	EconomicPolicy Axis = iota
	CulturalValues
	AuthorityGovernance
	SocialSafety
	GlobalLocal
	TechEcoBalance
	ChangeTolerance
	MoralFoundations

	axisCount int = iota
)

var axisNames = [axisCount]string{
	"economic_policy",
	"cultural_values",
	"authority_governance",
	"social_safety",
	"global_local",
	"tech_eco_balance",
	"change_tolerance",
	"moral_foundations",
}

// AllAxes returns every axis in canonical order.
// The returned slice is a fresh copy and may be modified by the caller.
func AllAxes() []Axis {
	axes := make([]Axis, axisCount)
	for i := range axes {
		axes[i] = Axis(i)
	}
	return axes
}

// Valid reports whether a is one of the defined axes
func (a Axis) Valid() bool {
	return a >= 0 && int(a) < axisCount
}

// String returns the snake_case identifier of the axis
func (a Axis) String() string {
	if !a.Valid() {
		return fmt.Sprintf("axis(%d)", int(a))
	}
	return axisNames[a]
}

// Label returns the axis name with underscores replaced by spaces,
// e.g. "economic policy". Used as the chart subject.
func (a Axis) Label() string {
	return strings.ReplaceAll(a.String(), "_", " ")
}

// ParseAxis converts a snake_case identifier (or its spaced label) to an Axis.
func ParseAxis(s string) (Axis, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
	for i, name := range axisNames {
		if name == normalized {
			return Axis(i), nil
		}
	}
	return 0, fmt.Errorf("unknown axis %q", s)
}

// MarshalText implements encoding.TextMarshaler so axes can be used as
// map keys in YAML and JSON output.
func (a Axis) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("invalid axis %d", int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (a *Axis) UnmarshalText(text []byte) error {
	parsed, err := ParseAxis(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
