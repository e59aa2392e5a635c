// Package letters maps symbolic letters to their six fixed kinetic types.
//
// Classification is a pure table lookup: the type of a letter never depends
// on sequence context, and the table is versioned together with the dataset
// rather than configurable at runtime.
package letters

import (
	"github.com/austencloud/tka-engine/logger"
)

// Type is one of the six letter classification buckets.
type Type int

const (
	Type1 Type = iota + 1 // Dual-shift: both hands shift
	Type2                 // Shift: one hand shifts, the other is static
	Type3                 // Cross-shift: one hand shifts, the other dashes
	Type4                 // Dash: one hand dashes, the other is static
	Type5                 // Dual-dash: both hands dash
	Type6                 // Static: both hands hold position
)

// All lists the six types in display order.
var All = []Type{Type1, Type2, Type3, Type4, Type5, Type6}

func (t Type) String() string {
	switch t {
	case Type1:
		return "Type1"
	case Type2:
		return "Type2"
	case Type3:
		return "Type3"
	case Type4:
		return "Type4"
	case Type5:
		return "Type5"
	case Type6:
		return "Type6"
	}
	return "Type?"
}

// Description returns the kinetic name of the type.
func (t Type) Description() string {
	switch t {
	case Type1:
		return "dual-shift"
	case Type2:
		return "shift"
	case Type3:
		return "cross-shift"
	case Type4:
		return "dash"
	case Type5:
		return "dual-dash"
	case Type6:
		return "static"
	}
	return "unknown"
}

// byLetter is the static classification table. The "-" suffix marks the
// dash variant of a shift letter (Type3) or of a dash letter (Type5).
var byLetter = map[string]Type{
	// Type1: dual shifts A..V
	"A": Type1, "B": Type1, "C": Type1, "D": Type1, "E": Type1, "F": Type1,
	"G": Type1, "H": Type1, "I": Type1, "J": Type1, "K": Type1, "L": Type1,
	"M": Type1, "N": Type1, "O": Type1, "P": Type1, "Q": Type1, "R": Type1,
	"S": Type1, "T": Type1, "U": Type1, "V": Type1,

	// Type2: shift + static
	"W": Type2, "X": Type2, "Y": Type2, "Z": Type2,
	"Σ": Type2, "Δ": Type2, "θ": Type2, "Ω": Type2,

	// Type3: shift + dash
	"W-": Type3, "X-": Type3, "Y-": Type3, "Z-": Type3,
	"Σ-": Type3, "Δ-": Type3, "θ-": Type3, "Ω-": Type3,

	// Type4: dash + static
	"Φ": Type4, "Ψ": Type4, "Λ": Type4,

	// Type5: dual dash
	"Φ-": Type5, "Ψ-": Type5, "Λ-": Type5,

	// Type6: dual static
	"α": Type6, "β": Type6, "Γ": Type6,
}

// Classify maps a letter to its type. Letters outside the table fall back
// to Type1 so future dataset letters keep rendering in the default section.
// The fallback is logged because it can also mask a misspelled letter in
// the dataset.
func Classify(letter string) Type {
	if t, ok := byLetter[letter]; ok {
		return t
	}
	logger.Debugw("letter missing from classification table, defaulting to Type1",
		"letter", letter)
	return Type1
}

// Known reports whether the letter is present in the classification table.
func Known(letter string) bool {
	_, ok := byLetter[letter]
	return ok
}
