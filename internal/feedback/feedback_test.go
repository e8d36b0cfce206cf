package feedback

import (
	"encoding/json"
	"testing"

	"lexicam/internal/backend"
)

func TestLabel(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"cat", "Detected Object: cat"},
		{"water bottle", "Detected Object: water bottle"},
		{"", "Detected Object: —"},
		{Placeholder, "Detected Object: —"},
	}
	for _, tt := range tests {
		if got := Label(tt.name); got != tt.want {
			t.Errorf("Label(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestHasName(t *testing.T) {
	if HasName("") || HasName(Placeholder) {
		t.Error("HasName true for empty or placeholder")
	}
	if !HasName("dog") {
		t.Error("HasName(dog) = false")
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		name  string
		check backend.Check
		want  string
	}{
		{
			name:  "feedback object",
			check: backend.Check{SpokenText: "cat", Feedback: json.RawMessage(`{"score":0.9}`)},
			want:  "🗣 You said: cat\nFeedback: {\"score\":0.9}",
		},
		{
			name:  "error wins",
			check: backend.Check{Error: "no audio", SpokenText: "cat"},
			want:  "⚠️ no audio",
		},
		{
			name:  "feedback compacted",
			check: backend.Check{SpokenText: "cat", Feedback: json.RawMessage("{\n  \"C\": \"correct\",\n  \"A\": \"incorrect\"\n}")},
			want:  "🗣 You said: cat\nFeedback: {\"C\":\"correct\",\"A\":\"incorrect\"}",
		},
		{
			name:  "feedback string",
			check: backend.Check{SpokenText: "bottle", Feedback: json.RawMessage(`"Great job!"`)},
			want:  "🗣 You said: bottle\nFeedback: \"Great job!\"",
		},
		{
			name:  "no feedback",
			check: backend.Check{SpokenText: "cat"},
			want:  "🗣 You said: cat\nFeedback: null",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.check); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSpell(t *testing.T) {
	if got, want := Spell("Bottle"), "B · O · T · T · L · E"; got != want {
		t.Errorf("Spell = %q, want %q", got, want)
	}
	if got, want := Spell("ice cream"), "I · C · E · C · R · E · A · M"; got != want {
		t.Errorf("Spell = %q, want %q", got, want)
	}
	if got := Spell(""); got != "" {
		t.Errorf("Spell(\"\") = %q", got)
	}
}

func TestLetters(t *testing.T) {
	got := Letters("bottle", "bot tle")
	if len(got) != 6 {
		t.Fatalf("len = %d, want 6", len(got))
	}
	for _, l := range got {
		if !l.Correct {
			t.Errorf("letter %q marked incorrect", l.Letter)
		}
	}
	if acc := Accuracy(got); acc != 100 {
		t.Errorf("Accuracy = %v, want 100", acc)
	}
}

func TestLetters_PartialAndShort(t *testing.T) {
	got := Letters("Cat", "cut")
	want := []bool{true, false, true}
	for i, l := range got {
		if l.Correct != want[i] {
			t.Errorf("letter %d (%q) correct = %v, want %v", i, l.Letter, l.Correct, want[i])
		}
	}

	short := Letters("cat", "c")
	if short[0].Correct != true || short[1].Correct || short[2].Correct {
		t.Errorf("Letters(cat, c) = %+v", short)
	}
	if acc := Accuracy(short); acc < 33.3 || acc > 33.4 {
		t.Errorf("Accuracy = %v, want ~33.3", acc)
	}
}

func TestLetters_RepeatedLettersKeptSeparately(t *testing.T) {
	got := Letters("tt", "tx")
	if !got[0].Correct || got[1].Correct {
		t.Errorf("Letters(tt, tx) = %+v", got)
	}
}

func TestAccuracy_Empty(t *testing.T) {
	if acc := Accuracy(nil); acc != 0 {
		t.Errorf("Accuracy(nil) = %v", acc)
	}
}

func TestPhonetic(t *testing.T) {
	same := Phonetic("cat", "Cat")
	if !same.Match || !same.SoundsAlike || same.Score < 0.999 {
		t.Errorf("Phonetic(cat, Cat) = %+v", same)
	}

	far := Phonetic("cat", "umbrella")
	if far.Match {
		t.Errorf("Phonetic(cat, umbrella) matched: %+v", far)
	}

	if empty := Phonetic("cat", ""); empty.Match || empty.Score != 0 {
		t.Errorf("Phonetic(cat, \"\") = %+v", empty)
	}
}

func TestAnalyze(t *testing.T) {
	a, ok := Analyze("cat", backend.Check{SpokenText: "cat"})
	if !ok {
		t.Fatal("Analyze ok = false")
	}
	if a.Accuracy != 100 || !a.Sound.Match {
		t.Errorf("Analyze = %+v", a)
	}

	if _, ok := Analyze("cat", backend.Check{Error: "no audio"}); ok {
		t.Error("Analyze ok for failed check")
	}
	if _, ok := Analyze(Placeholder, backend.Check{SpokenText: "cat"}); ok {
		t.Error("Analyze ok without a detected word")
	}
}
