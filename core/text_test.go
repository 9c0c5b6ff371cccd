package core

import (
	"testing"
)

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "lowercases and trims",
			title: "  Pride And Prejudice  ",
			want:  "pride and prejudice",
		},
		{
			name:  "strips punctuation",
			title: "Harry Potter: The Philosopher's Stone!",
			want:  "harry potter the philosopher's stone",
		},
		{
			name:  "collapses whitespace",
			title: "A   Tale\tof   Two Cities",
			want:  "a tale of two cities",
		},
		{
			name:  "keeps hyphens and digits",
			title: "Catch-22 (1961)",
			want:  "catch-22 1961",
		},
		{
			name:  "decomposes accents",
			title: "Les Misérables",
			want:  "les miserables",
		},
		{
			name:  "empty",
			title: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeTitle(tt.title); got != tt.want {
				t.Errorf("NormalizeTitle(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestNormalizeTitle_Idempotent(t *testing.T) {
	inputs := []string{"Pride & Prejudice", "Les Misérables", "CATCH-22", "the great gatsby"}
	for _, in := range inputs {
		once := NormalizeTitle(in)
		twice := NormalizeTitle(once)
		if once != twice {
			t.Errorf("NormalizeTitle not idempotent for %q: %q vs %q", in, once, twice)
		}
	}
}

func TestNormalizeCreator(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "strips honorific",
			in:   "Dr. Seuss",
			want: "seuss",
		},
		{
			name: "strips sir",
			in:   "Sir Arthur Conan Doyle",
			want: "arthur conan doyle",
		},
		{
			name: "plain name unchanged",
			in:   "Jane Austen",
			want: "jane austen",
		},
		{
			name: "honorific alone is kept",
			in:   "Prof",
			want: "prof",
		},
		{
			name: "collapses whitespace",
			in:   "  William   Shakespeare ",
			want: "william shakespeare",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeCreator(tt.in); got != tt.want {
				t.Errorf("NormalizeCreator(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	got := Tokenize("the great gatsby")
	want := []string{"the", "great", "gatsby"}
	if len(got) != len(want) {
		t.Fatalf("Tokenize() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Tokenize()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
