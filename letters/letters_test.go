package letters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyTable(t *testing.T) {
	cases := map[string]Type{
		"A":  Type1,
		"D":  Type1,
		"V":  Type1,
		"W":  Type2,
		"Ω":  Type2,
		"W-": Type3,
		"θ-": Type3,
		"Φ":  Type4,
		"Λ":  Type4,
		"Φ-": Type5,
		"Λ-": Type5,
		"α":  Type6,
		"Γ":  Type6,
	}
	for letter, want := range cases {
		assert.Equal(t, want, Classify(letter), "letter %s", letter)
	}
}

func TestClassifyTotality(t *testing.T) {
	// Every table entry classifies into exactly one of the six types
	for letter := range byLetter {
		got := Classify(letter)
		assert.Contains(t, All, got, "letter %s", letter)
	}
}

func TestClassifyUnknownFallsBackToType1(t *testing.T) {
	assert.Equal(t, Type1, Classify("π"))
	assert.Equal(t, Type1, Classify(""))
	assert.False(t, Known("π"))
}

func TestClassifyIsPure(t *testing.T) {
	// Same letter, same answer, every time
	for i := 0; i < 3; i++ {
		assert.Equal(t, Type3, Classify("Σ-"))
	}
}

func TestDescriptions(t *testing.T) {
	assert.Equal(t, "dual-shift", Type1.Description())
	assert.Equal(t, "static", Type6.Description())
	assert.Equal(t, "Type4", Type4.String())
}
