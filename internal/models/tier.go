package models

import (
	"fmt"
	"strings"
)

// Tier is the discretized low/mid/high classification of an axis score.
// The zero value is deliberately not a tier, so an unset entry never
// equals a required tier.
type Tier int

const (
	TierLow Tier = iota + 1
	TierMid
	TierHigh
)

// String returns "low", "mid" or "high"
func (t Tier) String() string {
	switch t {
	case TierLow:
		return "low"
	case TierMid:
		return "mid"
	case TierHigh:
		return "high"
	default:
		return "unknown"
	}
}

// Valid reports whether t is one of the three defined tiers
func (t Tier) Valid() bool {
	return t >= TierLow && t <= TierHigh
}

// ParseTier converts "low", "mid" or "high" (case-insensitive) to a Tier
func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return TierLow, nil
	case "mid":
		return TierMid, nil
	case "high":
		return TierHigh, nil
	default:
		return 0, fmt.Errorf("unknown tier %q, must be one of: low, mid, high", s)
	}
}

// MarshalText implements encoding.TextMarshaler
func (t Tier) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid tier %d", int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *Tier) UnmarshalText(text []byte) error {
	parsed, err := ParseTier(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// TierMap holds the tier of every axis for one respondent
type TierMap map[Axis]Tier
