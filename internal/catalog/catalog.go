// Package catalog is the curated static land list: the "external
// collaborator" manabase spec §6 calls out as out of scope for the core
// model. Nothing in internal/manabase imports this package; callers that
// want the built-in list (the CLI, the server, tests) import catalog and
// pass its lands into manabase.Solve explicitly.
package catalog

import "github.com/bakert/manabase/internal/manabase"

func land(name, typeline string, produces []manabase.Color, kind manabase.Kind, painful bool) manabase.Land {
	return manabase.NewLand(name, typeline, produces, kind, painful)
}

var (
	w = manabase.White
	u = manabase.Blue
	b = manabase.Black
	r = manabase.Red
	g = manabase.Green
	c = manabase.Colorless
)

// Basics are the five basic land types plus Wastes.
var Basics = []manabase.Land{
	land("Wastes", "Basic Land", []manabase.Color{c}, manabase.Basic, false),
	land("Plains", "Basic Land - Plains", []manabase.Color{w}, manabase.Basic, false),
	land("Island", "Basic Land - Island", []manabase.Color{u}, manabase.Basic, false),
	land("Swamp", "Basic Land - Swamp", []manabase.Color{b}, manabase.Basic, false),
	land("Mountain", "Basic Land - Mountain", []manabase.Color{r}, manabase.Basic, false),
	land("Forest", "Basic Land - Forest", []manabase.Color{g}, manabase.Basic, false),
}

// Checks are the Innistrad battlefield-check duals.
var Checks = []manabase.Land{
	land("Clifftop Retreat", "Land", []manabase.Color{r, w}, manabase.Check, false),
	land("Dragonskull Summit", "Land", []manabase.Color{b, r}, manabase.Check, false),
	land("Drowned Catacomb", "Land", []manabase.Color{u, b}, manabase.Check, false),
	land("Glacial Fortress", "Land", []manabase.Color{w, u}, manabase.Check, false),
	land("Hinterland Harbor", "Land", []manabase.Color{g, u}, manabase.Check, false),
	land("Isolated Chapel", "Land", []manabase.Color{w, b}, manabase.Check, false),
	land("Rootbound Crag", "Land", []manabase.Color{r, g}, manabase.Check, false),
	land("Sulfur Falls", "Land", []manabase.Color{u, r}, manabase.Check, false),
	land("Sunpetal Grove", "Land", []manabase.Color{g, w}, manabase.Check, false),
	land("Woodland Cemetery", "Land", []manabase.Color{b, g}, manabase.Check, false),
}

// Snarls are the Kaladesh/Shadows hand-check duals.
var Snarls = []manabase.Land{
	land("Choked Estuary", "Land", []manabase.Color{u, b}, manabase.Snarl, false),
	land("Foreboding Ruins", "Land", []manabase.Color{b, r}, manabase.Snarl, false),
	land("Fortified Village", "Land", []manabase.Color{g, w}, manabase.Snarl, false),
	land("Frostboil Snarl", "Land", []manabase.Color{u, r}, manabase.Snarl, false),
	land("Furycalm Snarl", "Land", []manabase.Color{r, w}, manabase.Snarl, false),
	land("Game Trail", "Land", []manabase.Color{r, g}, manabase.Snarl, false),
	land("Necroblossom Snarl", "Land", []manabase.Color{b, g}, manabase.Snarl, false),
	land("Port Town", "Land", []manabase.Color{w, u}, manabase.Snarl, false),
	land("Shineshadow Snarl", "Land", []manabase.Color{w, b}, manabase.Snarl, false),
	land("Vineglimmer Snarl", "Land", []manabase.Color{g, u}, manabase.Snarl, false),
}

// Filters are the Ravnica/Shadowmoor mana-transmuting duals. Produces is
// ordered (M, N) to match the two-color contribution rules in spec §4.1.
var Filters = []manabase.Land{
	land("Cascade Bluffs", "Land", []manabase.Color{u, r}, manabase.Filter, false),
	land("Fetid Heath", "Land", []manabase.Color{w, b}, manabase.Filter, false),
	land("Fire-Lit Thicket", "Land", []manabase.Color{r, g}, manabase.Filter, false),
	land("Flooded Grove", "Land", []manabase.Color{g, u}, manabase.Filter, false),
	land("Graven Cairns", "Land", []manabase.Color{b, r}, manabase.Filter, false),
	land("Mystic Gate", "Land", []manabase.Color{w, u}, manabase.Filter, false),
	land("Rugged Prairie", "Land", []manabase.Color{r, w}, manabase.Filter, false),
	land("Sunken Ruins", "Land", []manabase.Color{u, b}, manabase.Filter, false),
	land("Twilight Mire", "Land", []manabase.Color{b, g}, manabase.Filter, false),
	land("Wooded Bastion", "Land", []manabase.Color{w, g}, manabase.Filter, false),
}

// Bicycles are the Amonkhet cycling duals, typelined with both basic
// types so Check/Snarl populations elsewhere in the catalog see them.
var Bicycles = []manabase.Land{
	land("Canyon Slough", "Land - Swamp Mountain", []manabase.Color{b, r}, manabase.Bicycle, false),
	land("Fetid Pools", "Land - Island Swamp", []manabase.Color{u, b}, manabase.Bicycle, false),
	land("Irrigated Farmland", "Land - Plains Island", []manabase.Color{w, u}, manabase.Bicycle, false),
	land("Scattered Groves", "Land - Forest Plains", []manabase.Color{g, w}, manabase.Bicycle, false),
	land("Sheltered Thicket", "Land - Mountain Forest", []manabase.Color{r, g}, manabase.Bicycle, false),
}

// CreatureLands are the Worldwake/BFZ man-lands: always tapped, like any
// other Tapland, plus a creature ability the model does not represent.
var CreatureLands = []manabase.Land{
	land("Celestial Colonnade", "Land", []manabase.Color{w, u}, manabase.Tapland, false),
	land("Creeping Tar Pit", "Land", []manabase.Color{u, b}, manabase.Tapland, false),
	land("Hissing Quagmire", "Land", []manabase.Color{b, g}, manabase.Tapland, false),
	land("Lavaclaw Reaches", "Land", []manabase.Color{b, r}, manabase.Tapland, false),
	land("Lumbering Falls", "Land", []manabase.Color{g, u}, manabase.Tapland, false),
	land("Needle Spires", "Land", []manabase.Color{r, w}, manabase.Tapland, false),
	land("Raging Ravine", "Land", []manabase.Color{r, g}, manabase.Tapland, false),
	land("Shambling Vent", "Land", []manabase.Color{w, b}, manabase.Tapland, false),
	land("Stirring Wildwood", "Land", []manabase.Color{g, w}, manabase.Tapland, false),
	land("Wandering Fumarole", "Land", []manabase.Color{u, r}, manabase.Tapland, false),
}

// Tangos are the Battle for Zendikar "battle lands".
var Tangos = []manabase.Land{
	land("Canopy Vista", "Land", []manabase.Color{g, w, u}, manabase.Tango, false),
	land("Cinder Glade", "Land", []manabase.Color{r, g, b}, manabase.Tango, false),
	land("Prairie Stream", "Land", []manabase.Color{w, u}, manabase.Tango, false),
	land("Smoldering Marsh", "Land", []manabase.Color{b, r, g}, manabase.Tango, false),
	land("Sunken Hollow", "Land", []manabase.Color{u, b, r}, manabase.Tango, false),
}

// PainLands are the Odyssey/Apocalypse painlands.
var PainLands = []manabase.Land{
	land("Adarkar Wastes", "Land", []manabase.Color{w, u}, manabase.Pain, true),
	land("Battlefield Forge", "Land", []manabase.Color{r, w}, manabase.Pain, true),
	land("Brushland", "Land", []manabase.Color{g, w}, manabase.Pain, true),
	land("Caves of Koilos", "Land", []manabase.Color{w, b}, manabase.Pain, true),
	land("Karplusan Forest", "Land", []manabase.Color{r, g}, manabase.Pain, true),
	land("Llanowar Wastes", "Land", []manabase.Color{b, g}, manabase.Pain, true),
	land("Shivan Reef", "Land", []manabase.Color{u, r}, manabase.Pain, true),
	land("Sulfurous Springs", "Land", []manabase.Color{b, r}, manabase.Pain, true),
	land("Underground River", "Land", []manabase.Color{u, b}, manabase.Pain, true),
	land("Yavimaya Coast", "Land", []manabase.Color{g, u}, manabase.Pain, true),
}

// FiveColorLands are the always-untapped multicolor utility lands. Grand
// Coliseum's painful life loss is real; Vivid Crag's charge-counter
// exhaustion is not modeled (manabase spec §9 open questions) so it is
// treated as unlimited and non-painful here.
var FiveColorLands = []manabase.Land{
	land("Grand Coliseum", "Land", []manabase.Color{w, u, b, r, g}, manabase.Pain, true),
	land("Vivid Crag", "Land", []manabase.Color{w, u, b, r, g}, manabase.Pain, false),
	land("City of Brass", "Land", []manabase.Color{w, u, b, r, g}, manabase.Pain, true),
	land("Mana Confluence", "Land", []manabase.Color{w, u, b, r, g}, manabase.Pain, true),
}

// Special is the handful of named one-offs too distinct to group above.
var Special = []manabase.Land{
	land("Crumbling Necropolis", "Land", []manabase.Color{u, b, r}, manabase.Tapland, false),
	land("River of Tears", "Land", []manabase.Color{u, b}, manabase.RiverOfTearsLike, false),
}

// All is every land this package curates, in a stable order.
func All() []manabase.Land {
	var out []manabase.Land
	for _, group := range [][]manabase.Land{
		Basics, Checks, Snarls, Filters, Bicycles, CreatureLands, Tangos, PainLands, FiveColorLands, Special,
	} {
		out = append(out, group...)
	}
	return out
}

// ByName indexes All() by Land.Name for lookups from config/CLI input.
func ByName() map[string]manabase.Land {
	out := map[string]manabase.Land{}
	for _, l := range All() {
		out[l.Name] = l
	}
	return out
}
