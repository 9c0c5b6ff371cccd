package spell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorrector_SeededPhrases(t *testing.T) {
	c := NewCorrector()

	tests := []struct {
		query string
		want  string
	}{
		{"harry poter", "harry potter"},
		{"Harry Poter", "harry potter"},
		{"hary potter", "harry potter"},
		{"starwars", "star wars"},
		{"shakespear", "shakespeare"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Correct(tt.query))
		})
	}
}

func TestCorrector_CleanQueryUnchanged(t *testing.T) {
	c := NewCorrector()
	c.AddKnownTitles("Pride and Prejudice")

	assert.Equal(t, "pride and prejudice", c.Correct("Pride and Prejudice"))
}

func TestCorrector_Idempotent(t *testing.T) {
	c := NewCorrector()
	c.AddKnownTitles("Pride and Prejudice", "The Great Gatsby")

	queries := []string{"harry poter", "pride and prejudise", "grate symphony", "romeojuliet"}
	for _, q := range queries {
		once := c.Correct(q)
		twice := c.Correct(once)
		assert.Equal(t, once, twice, "correction of %q should be idempotent", q)
	}
}

func TestCorrector_SnapsToKnownTitle(t *testing.T) {
	c := NewCorrector()
	c.AddKnownTitles("Pride and Prejudice")

	assert.Equal(t, "pride and prejudice", c.Correct("pride and prejudise"))
}

func TestCorrector_PerWordCorrection(t *testing.T) {
	c := NewCorrector()

	// "grate" is within edit distance 2 of the vocabulary word "great";
	// "symphony" is already known and stays put.
	assert.Equal(t, "great symphony", c.Correct("grate symphony"))
}

func TestCorrector_PerWordCorrection_PrefersCloserLength(t *testing.T) {
	c := NewCorrector()

	// "grate" is distance 2 from both "great" and the more frequent
	// "game"; the same-length candidate wins the tiebreak.
	assert.Equal(t, "great", c.Correct("grate"))
}

func TestCorrector_ShortWordsLeftAlone(t *testing.T) {
	c := NewCorrector()

	assert.Equal(t, "xy potter", c.Correct("xy potter"))
}

func TestCorrector_WordSplit(t *testing.T) {
	c := NewCorrector()

	t.Run("seeded split", func(t *testing.T) {
		assert.Equal(t, "harry potter", c.Correct("harrypotter"))
	})

	t.Run("greedy vocabulary split", func(t *testing.T) {
		assert.Equal(t, "romeo juliet", c.Correct("romeojuliet"))
	})

	t.Run("unsplittable token survives", func(t *testing.T) {
		got := c.Correct("zqxjkvbnwp")
		assert.NotEmpty(t, got)
	})
}

func TestCorrector_LearnFromSelection(t *testing.T) {
	c := NewCorrector()

	c.LearnFromSelection("teh grate gatsby", "The Great Gatsby")

	assert.Equal(t, "the great gatsby", c.Correct("teh grate gatsby"))
	// The selected title is now known and passes through untouched.
	assert.Equal(t, "the great gatsby", c.Correct("The Great Gatsby"))
}

func TestCorrector_Suggestions(t *testing.T) {
	c := NewCorrector()
	c.AddKnownTitles("Harry Potter", "Hamlet", "Macbeth")

	got := c.Suggestions("harry pottr", 2)
	require.NotEmpty(t, got)
	assert.Equal(t, "harry potter", got[0])
	assert.LessOrEqual(t, len(got), 2)
}

func TestCorrector_Suggestions_Empty(t *testing.T) {
	c := NewCorrector()

	assert.Empty(t, c.Suggestions("", 3))
	assert.Empty(t, c.Suggestions("hamlet", 0))
}

func TestCorrector_SnapshotRestore(t *testing.T) {
	c := NewCorrector()
	c.AddKnownTitles("Pride and Prejudice")
	c.LearnFromSelection("teh grate gatsby", "The Great Gatsby")

	snap := c.Snapshot()
	require.NotNil(t, snap)
	assert.Contains(t, snap.KnownTitles, "pride and prejudice")
	assert.Equal(t, "the great gatsby", snap.Corrections["teh grate gatsby"])

	restored := NewCorrector()
	restored.Restore(snap)

	assert.Equal(t, "the great gatsby", restored.Correct("teh grate gatsby"))
	assert.Equal(t, "pride and prejudice", restored.Correct("pride and prejudise"))
}

func TestCorrector_RestoreNil(t *testing.T) {
	c := NewCorrector()
	c.Restore(nil) // must not panic
	assert.Equal(t, "harry potter", c.Correct("harry poter"))
}

func TestCorrector_ConcurrentAccess(t *testing.T) {
	c := NewCorrector()
	c.AddKnownTitles("Pride and Prejudice")

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			c.LearnFromSelection("teh grate gatsby", "The Great Gatsby")
		}
	}()
	for i := 0; i < 100; i++ {
		_ = c.Correct("pride and prejudise")
	}
	<-done
}
