package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bakert/manabase/internal/manabase"
)

func TestAllHasNoDuplicateNames(t *testing.T) {
	seen := map[string]bool{}
	for _, l := range All() {
		require.False(t, seen[l.Name], "duplicate land name %q", l.Name)
		seen[l.Name] = true
	}
	assert.NotEmpty(t, seen)
}

func TestByNameIndexesAll(t *testing.T) {
	byName := ByName()
	assert.Len(t, byName, len(All()))

	plains, ok := byName["Plains"]
	require.True(t, ok)
	assert.Equal(t, manabase.Basic, plains.Kind)
	assert.True(t, plains.CanProduce(manabase.White))
}

// TestPortTownIsASnarl pins down a classification that is easy to get
// wrong: Port Town is a Kaladesh-block hand-check Snarl, not a man-land.
func TestPortTownIsASnarl(t *testing.T) {
	portTown, ok := ByName()["Port Town"]
	require.True(t, ok)
	assert.Equal(t, manabase.Snarl, portTown.Kind)
	assert.True(t, portTown.CanProduce(manabase.White))
	assert.True(t, portTown.CanProduce(manabase.Blue))
}

func TestFiveColorLandsProduceEveryColor(t *testing.T) {
	for _, l := range FiveColorLands {
		t.Run(l.Name, func(t *testing.T) {
			for _, c := range []manabase.Color{manabase.White, manabase.Blue, manabase.Black, manabase.Red, manabase.Green} {
				assert.True(t, l.CanProduce(c), "%s should produce %s", l.Name, c)
			}
		})
	}
}

func TestVividCragIsNotPainful(t *testing.T) {
	vivid, ok := ByName()["Vivid Crag"]
	require.True(t, ok)
	assert.False(t, vivid.Painful)
}

func TestPainLandsAreAllPainful(t *testing.T) {
	for _, l := range PainLands {
		assert.True(t, l.Painful, "%s should be painful", l.Name)
	}
}

func TestRiverOfTearsIsItsOwnKind(t *testing.T) {
	river, ok := ByName()["River of Tears"]
	require.True(t, ok)
	assert.Equal(t, manabase.RiverOfTearsLike, river.Kind)
}

func TestBasicsCoverEveryColorPlusWastes(t *testing.T) {
	byName := ByName()
	for name, color := range map[string]manabase.Color{
		"Plains": manabase.White, "Island": manabase.Blue, "Swamp": manabase.Black,
		"Mountain": manabase.Red, "Forest": manabase.Green, "Wastes": manabase.Colorless,
	} {
		l, ok := byName[name]
		require.True(t, ok, name)
		assert.Equal(t, manabase.Basic, l.Kind)
		assert.True(t, l.CanProduce(color))
	}
}
