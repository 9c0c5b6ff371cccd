package spell

// seedCorrections maps common whole-phrase misspellings to their
// corrected forms. Keys and values are in normalized title form.
var seedCorrections = map[string]string{
	"harry poter":        "harry potter",
	"hary potter":        "harry potter",
	"harry pottr":        "harry potter",
	"starwars":           "star wars",
	"star wars episode":  "star wars",
	"lord of the ring":   "lord of the rings",
	"lordoftherings":     "lord of the rings",
	"game of throne":     "game of thrones",
	"shakespear":         "shakespeare",
	"shakespere":         "shakespeare",
	"micheal":            "michael",
	"beethovan":          "beethoven",
	"mozart symphonies":  "mozart symphony",
	"pride and prejudis": "pride and prejudice",
	"pride prejudice":    "pride and prejudice",
}

// seedSplits maps common run-together queries to their split forms.
// Checked before the greedy vocabulary split.
var seedSplits = map[string]string{
	"harrypotter":     "harry potter",
	"lordoftherings":  "lord of the rings",
	"starwars":        "star wars",
	"gameofthrones":   "game of thrones",
	"prideandprejudice": "pride and prejudice",
}

// seedWords is the initial word frequency table. Frequencies are rough
// priors; learned words accumulate real counts on top.
var seedWords = map[string]uint64{
	"the": 100, "and": 80, "of": 80, "a": 70, "in": 50,
	"harry": 20, "potter": 20, "star": 20, "wars": 20,
	"lord": 15, "rings": 15, "game": 15, "thrones": 15,
	"pride": 10, "prejudice": 10, "romeo": 10, "juliet": 10,
	"hamlet": 10, "macbeth": 10, "symphony": 10, "sonata": 8,
	"adventures": 8, "tale": 8, "story": 8, "great": 8,
	"shakespeare": 12, "austen": 8, "dickens": 8, "beethoven": 8,
	"mozart": 8, "sherlock": 8, "holmes": 8,
}
