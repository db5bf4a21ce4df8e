package manabase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeckValidation(t *testing.T) {
	t.Run("rejects empty constraints", func(t *testing.T) {
		_, err := NewDeck(nil, 60)
		assert.Error(t, err)
	})

	t.Run("rejects unsupported deck size", func(t *testing.T) {
		_, err := NewDeck([]Constraint{NewConstraint(NewManaCost(ColorPip(White)), 1)}, 52)
		assert.Error(t, err)
	})

	t.Run("rejects turn below 1", func(t *testing.T) {
		_, err := NewDeck([]Constraint{{Required: NewManaCost(ColorPip(White)), Turn: 0}}, 60)
		assert.Error(t, err)
	})

	t.Run("accepts a well-formed deck", func(t *testing.T) {
		deck, err := NewDeck([]Constraint{NewConstraint(NewManaCost(ColorPip(White)), 1)}, 60)
		require.NoError(t, err)
		assert.Equal(t, 60, deck.DeckSize)
	})
}

func TestDeckColors(t *testing.T) {
	deck, err := NewDeck([]Constraint{
		NewConstraint(NewManaCost(ColorPip(White)), 1),
		NewConstraint(NewManaCost(ColorPip(Blue), ColorPip(White)), 2),
	}, 60)
	require.NoError(t, err)
	assert.Equal(t, []Color{White, Blue}, deck.Colors())
}

func TestDeckMaxTurn(t *testing.T) {
	deck, err := NewDeck([]Constraint{
		NewConstraint(NewManaCost(ColorPip(White)), 1),
		NewConstraint(NewManaCost(ColorPip(White), ColorPip(White)), 4),
	}, 60)
	require.NoError(t, err)
	assert.Equal(t, 4, deck.MaxTurn())
}
