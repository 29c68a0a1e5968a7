package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPremiumLevel is returned when input names no defined level.
var ErrUnknownPremiumLevel = errors.New("unknown premium level")

// PremiumLevel is the premium feature tier attached to a selection.
// Any level other than PremiumNone carries the flat surcharge.
type PremiumLevel string

const (
	PremiumNone                PremiumLevel = "None"
	PremiumExclusiveFacilities PremiumLevel = "Exclusive Facilities"
	PremiumSpecializedTraining PremiumLevel = "Specialized Training"
)

// PremiumLevels lists the closed set of levels in menu order.
var PremiumLevels = []PremiumLevel{
	PremiumNone,
	PremiumExclusiveFacilities,
	PremiumSpecializedTraining,
}

// Valid reports whether the level is one of the defined values.
func (l PremiumLevel) Valid() bool {
	switch l {
	case PremiumNone, PremiumExclusiveFacilities, PremiumSpecializedTraining:
		return true
	}
	return false
}

// Surcharged reports whether the level carries the premium surcharge.
// The zero value behaves like PremiumNone.
func (l PremiumLevel) Surcharged() bool {
	return l != "" && l != PremiumNone
}

// ParsePremiumLevel maps user input to a level. It accepts the canonical
// value case-insensitively, plus kebab and snake spellings for flag input.
func ParsePremiumLevel(s string) (PremiumLevel, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.ReplaceAll(key, "-", " ")
	key = strings.ReplaceAll(key, "_", " ")
	switch key {
	case "none":
		return PremiumNone, nil
	case "exclusive facilities":
		return PremiumExclusiveFacilities, nil
	case "specialized training":
		return PremiumSpecializedTraining, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPremiumLevel, s)
}
