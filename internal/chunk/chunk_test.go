package chunk

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func numberedWords(n int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = fmt.Sprintf("w%d", i)
	}
	return strings.Join(words, " ")
}

func TestClipsPreservesEveryWord(t *testing.T) {
	inputs := []string{
		"one",
		"  Hello friends.\n\nAre you\tfinding it harder   to keep up?  ",
		numberedWords(47),
		numberedWords(45),
	}

	for _, in := range inputs {
		clips := Clips(in, DefaultWordsPerClip)
		if got, want := strings.Join(clips, " "), Normalize(in); got != want {
			t.Fatalf("rejoined clips mismatch\n got: %q\nwant: %q", got, want)
		}
	}
}

func TestClipsBlankInput(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\t \r\n"} {
		if clips := Clips(in, DefaultWordsPerClip); len(clips) != 0 {
			t.Fatalf("expected no clips for %q, got %d", in, len(clips))
		}
	}
}

func TestClipsExactMultiple(t *testing.T) {
	clips := Clips(numberedWords(45), 15)
	if len(clips) != 3 {
		t.Fatalf("expected 3 clips, got %d", len(clips))
	}
	for i, c := range clips {
		if n := WordCount(c); n != 15 {
			t.Fatalf("clip %d: expected 15 words, got %d", i, n)
		}
	}
}

func TestClipsKeepsRemainder(t *testing.T) {
	clips := Clips(numberedWords(47), 15)
	if len(clips) != 4 {
		t.Fatalf("expected 4 clips, got %d", len(clips))
	}
	if n := WordCount(clips[3]); n != 2 {
		t.Fatalf("expected final clip of 2 words, got %d", n)
	}
}

func TestClipsGrouping(t *testing.T) {
	got := Clips("a b  c\nd e", 2)
	want := []string{"a b", "c d", "e"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("clips mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitBounds(t *testing.T) {
	segments := Split(numberedWords(31), 10)
	want := []Segment{
		{Index: 0, StartToken: 0, EndToken: 10},
		{Index: 1, StartToken: 10, EndToken: 20},
		{Index: 2, StartToken: 20, EndToken: 30},
		{Index: 3, StartToken: 30, EndToken: 31},
	}
	if diff := cmp.Diff(want, segments, cmpopts.IgnoreFields(Segment{}, "Text")); diff != "" {
		t.Fatalf("segment bounds mismatch (-want +got):\n%s", diff)
	}
	if segments[3].Text != "w30" {
		t.Fatalf("unexpected last segment text %q", segments[3].Text)
	}
}

func TestSplitInvalidSize(t *testing.T) {
	if got := Split("a b c", 0); got != nil {
		t.Fatalf("expected nil for zero size, got %+v", got)
	}
	if got := Clips("a b c", -3); got != nil {
		t.Fatalf("expected nil for negative size, got %+v", got)
	}
}

func TestClipsDeterministic(t *testing.T) {
	text := numberedWords(100)
	first := Clips(text, 7)
	second := Clips(text, 7)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("chunking is not deterministic:\n%s", diff)
	}
}

func TestSplitHugeGroupSize(t *testing.T) {
	segments := Split("a b c", math.MaxInt)
	want := []Segment{{Index: 0, StartToken: 0, EndToken: 3, Text: "a b c"}}
	if diff := cmp.Diff(want, segments); diff != "" {
		t.Fatalf("unexpected segments (-want +got):\n%s", diff)
	}
	if got := Clips("a b", math.MaxInt); len(got) != 1 || got[0] != "a b" {
		t.Fatalf("unexpected clips %q", got)
	}
}

// Splitting follows unicode.IsSpace: NEL separates words, ZWNBSP does not.
func TestClipsUnicodeSeparators(t *testing.T) {
	got := Clips("a\u0085b\ufeffc", DefaultWordsPerClip)
	want := []string{"a b\ufeffc"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected clips (-want +got):\n%s", diff)
	}
}
