package manabase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorCombinationEquality(t *testing.T) {
	a := NewColorCombination(Red, Red, Black)
	b := NewColorCombination(Black, Red, Red)
	assert.Equal(t, a, b, "insertion order must not matter")
	assert.Equal(t, 3, a.Size())
	assert.True(t, a.Contains(Red, 2))
	assert.False(t, a.Contains(Red, 3))
}

func TestColorCombinationString(t *testing.T) {
	cc := NewColorCombination(Red, Red, Black)
	assert.Equal(t, "RRB", cc.String())
}

func TestNonEmptySubMultisets(t *testing.T) {
	combos := nonEmptySubMultisets([]Color{Red, Red, Black})
	var rendered []string
	for _, cc := range combos {
		rendered = append(rendered, cc.String())
	}
	assert.ElementsMatch(t, []string{"R", "B", "RR", "RB", "RRB"}, rendered)
}

func TestColorByCode(t *testing.T) {
	c, ok := ColorByCode("G")
	assert.True(t, ok)
	assert.Equal(t, Green, c)

	_, ok = ColorByCode("Z")
	assert.False(t, ok)
}
