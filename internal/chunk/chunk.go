package chunk

import "strings"

// DefaultWordsPerClip matches the spoken pace of one 8s clip at 110-120 wpm.
const DefaultWordsPerClip = 15

type Segment struct {
	Index      int
	StartToken int
	EndToken   int
	Text       string
}

func Split(text string, wordsPerClip int) []Segment {
	if wordsPerClip <= 0 {
		return nil
	}

	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return nil
	}
	// Larger groups change nothing and would overflow the index arithmetic.
	if wordsPerClip > len(tokens) {
		wordsPerClip = len(tokens)
	}

	segments := make([]Segment, 0, (len(tokens)+wordsPerClip-1)/wordsPerClip)
	for start := 0; start < len(tokens); start += wordsPerClip {
		end := start + wordsPerClip
		if end > len(tokens) {
			end = len(tokens)
		}
		segments = append(segments, Segment{
			Index:      len(segments),
			StartToken: start,
			EndToken:   end,
			Text:       strings.Join(tokens[start:end], " "),
		})
	}

	return segments
}

// Clips returns the text of each word group in source order. Blank input
// yields an empty result.
func Clips(text string, wordsPerClip int) []string {
	segments := Split(text, wordsPerClip)
	if len(segments) == 0 {
		return nil
	}
	out := make([]string, len(segments))
	for i, s := range segments {
		out[i] = s.Text
	}
	return out
}

func Normalize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

func WordCount(text string) int {
	return len(strings.Fields(text))
}
