package manabase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLandBasicTypes(t *testing.T) {
	l := NewLand("Sunbaked Canyon", "Legendary Land", []Color{Red, White}, Tango, true)
	assert.Empty(t, l.BasicLandTypes())
	assert.True(t, l.Painful)
}

func TestLandBasicLandTypeDetection(t *testing.T) {
	l := NewLand("Clifftop Retreat", "Land", []Color{Red, White}, Check, false)
	assert.Empty(t, l.BasicLandTypes())

	l = NewLand("Plains", "Basic Land - Plains", []Color{White}, Basic, false)
	assert.Equal(t, []BasicLandType{PlainsType}, l.BasicLandTypes())
	assert.Equal(t, 100, l.MaxCopies())
}

func TestLandCanProduceAny(t *testing.T) {
	l := NewLand("Mystic Gate", "Land", []Color{White, Blue}, Filter, false)
	assert.True(t, l.CanProduceAny(NewColorCombination(White, White)))
	assert.False(t, l.CanProduceAny(NewColorCombination(Black)))
}

func TestLandHasAnyBasicLandType(t *testing.T) {
	sharer := NewLand("Hinterland Harbor", "Land", []Color{Blue, Green}, Check, false)
	needed := sharer.basicLandTypesNeeded()
	assert.ElementsMatch(t, []BasicLandType{IslandType, ForestType}, needed)

	forest := NewLand("Forest", "Basic Land - Forest", []Color{Green}, Basic, false)
	assert.True(t, forest.HasAnyBasicLandType(needed))

	mountain := NewLand("Mountain", "Basic Land - Mountain", []Color{Red}, Basic, false)
	assert.False(t, mountain.HasAnyBasicLandType(needed))
}

func TestMaxCopiesNonBasic(t *testing.T) {
	l := NewLand("Steam Vents", "Land", []Color{Blue, Red}, Pain, true)
	assert.Equal(t, 4, l.MaxCopies())
}
