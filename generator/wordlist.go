package generator

// wordList is the built in passphrase vocabulary, it is never modified
var wordList = []string{
	"acorn", "amber", "anchor", "apex", "aster", "aurora", "badge", "bamboo", "beacon", "binary",
	"blossom", "breeze", "canyon", "cascade", "cedar", "citadel", "cobalt", "coral", "crystal", "dawn",
	"delta", "dune", "ember", "falcon", "fable", "flint", "forest", "galaxy", "garnet", "glimmer",
	"grove", "harbor", "harvest", "horizon", "hydra", "inspire", "iris", "island", "jade", "journey",
	"juniper", "keystone", "lagoon", "lantern", "legend", "lilac", "meadow", "meteor", "nebula", "nectar",
	"onyx", "oracle", "oxygen", "pebble", "pinnacle", "plume", "prism", "quartz", "quill", "raven",
	"ripple", "saffron", "solstice", "spruce", "stellar", "summit", "sunrise", "tidal", "topaz", "umbra",
	"valor", "velvet", "vertex", "violet", "voyage", "willow", "wisdom", "xenon", "yonder", "zenith",
}

// WordList returns a copy of the built in passphrase vocabulary
func WordList() []string {
	list := make([]string, len(wordList))
	copy(list, wordList)

	return list
}
