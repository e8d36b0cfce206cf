package feedback

import (
	"strings"
	"unicode"

	"lexicam/internal/backend"

	"github.com/antzucaro/matchr"
)

// Similarity thresholds on the Jaro-Winkler score.
const (
	phoneticThreshold = 0.70 // when Double Metaphone codes overlap
	fuzzyThreshold    = 0.85 // when they don't
)

// LetterResult is the verdict for one letter of the expected word.
type LetterResult struct {
	Letter  rune
	Correct bool
}

// Similarity compares the expected word and what was heard by sound.
type Similarity struct {
	// Score is the Jaro-Winkler similarity in [0, 1].
	Score float64

	// SoundsAlike is true when the Double Metaphone codes overlap.
	SoundsAlike bool

	// Match is the overall verdict.
	Match bool
}

// Analysis is the local comparison shown next to the backend feedback.
type Analysis struct {
	Word     string
	Spoken   string
	Letters  []LetterResult
	Accuracy float64
	Sound    Similarity
}

// Analyze compares word with the spoken text in c. It returns false when the
// check failed, since there is nothing to compare.
func Analyze(word string, c backend.Check) (Analysis, bool) {
	if c.Failed() || !HasName(word) {
		return Analysis{}, false
	}
	letters := Letters(word, c.SpokenText)
	return Analysis{
		Word:     word,
		Spoken:   c.SpokenText,
		Letters:  letters,
		Accuracy: Accuracy(letters),
		Sound:    Phonetic(word, c.SpokenText),
	}, true
}

// Letters compares expected and spoken position by position, ignoring case
// and whitespace. Letters past the end of spoken are incorrect.
func Letters(expected, spoken string) []LetterResult {
	want := normalize(expected)
	got := normalize(spoken)

	out := make([]LetterResult, len(want))
	for i, r := range want {
		out[i] = LetterResult{
			Letter:  r,
			Correct: i < len(got) && got[i] == r,
		}
	}
	return out
}

// Accuracy is the percentage of correct letters, 0 for an empty word.
func Accuracy(letters []LetterResult) float64 {
	if len(letters) == 0 {
		return 0
	}
	n := 0
	for _, l := range letters {
		if l.Correct {
			n++
		}
	}
	return float64(n) / float64(len(letters)) * 100
}

// Phonetic scores how alike expected and spoken sound.
func Phonetic(expected, spoken string) Similarity {
	a := strings.ToLower(strings.Join(strings.Fields(expected), ""))
	b := strings.ToLower(strings.Join(strings.Fields(spoken), ""))
	if a == "" || b == "" {
		return Similarity{}
	}

	score := matchr.JaroWinkler(a, b, false)
	alike := codesOverlap(a, b)

	threshold := fuzzyThreshold
	if alike {
		threshold = phoneticThreshold
	}
	return Similarity{
		Score:       score,
		SoundsAlike: alike,
		Match:       score >= threshold,
	}
}

func codesOverlap(a, b string) bool {
	ap, as := matchr.DoubleMetaphone(a)
	bp, bs := matchr.DoubleMetaphone(b)
	for _, x := range []string{ap, as} {
		if x == "" {
			continue
		}
		if x == bp || x == bs {
			return true
		}
	}
	return false
}

func normalize(s string) []rune {
	var out []rune
	for _, r := range strings.ToUpper(s) {
		if unicode.IsSpace(r) {
			continue
		}
		out = append(out, r)
	}
	return out
}
