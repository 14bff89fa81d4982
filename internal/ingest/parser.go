package ingest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// MaxScriptBytes bounds plain-text input read from a stream.
const MaxScriptBytes = 8 << 20

var ErrUnsupported = errors.New("unsupported file type")

type Parsed struct {
	Title      string
	SourcePath string
	Text       string
}

type extractor func(path string) (string, error)

var extractors = map[string]extractor{
	"":      textFile,
	".txt":  textFile,
	".md":   textFile,
	".docx": docxFile,
	".pdf":  pdfText,
}

// ParseFile picks an extractor by extension and returns the script with one
// paragraph per line.
func ParseFile(path string) (*Parsed, error) {
	ext := strings.ToLower(filepath.Ext(path))
	extract, ok := extractors[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, ext)
	}
	text, err := extract(path)
	if err != nil {
		return nil, err
	}
	return &Parsed{
		Title:      titleFromPath(path),
		SourcePath: path,
		Text:       normalizeWhitespace(text),
	}, nil
}

// ParseReader reads a plain-text script, e.g. stdin or a request body.
func ParseReader(name string, r io.Reader) (*Parsed, error) {
	raw, err := io.ReadAll(io.LimitReader(r, MaxScriptBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	if len(raw) > MaxScriptBytes {
		return nil, fmt.Errorf("script exceeds %d bytes", MaxScriptBytes)
	}
	text, err := decodeText(raw)
	if err != nil {
		return nil, err
	}
	return &Parsed{Title: titleFromPath(name), Text: normalizeWhitespace(text)}, nil
}

func textFile(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return decodeText(raw)
}

func decodeText(raw []byte) (string, error) {
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))
	if !utf8.Valid(raw) {
		return "", errors.New("script is not valid UTF-8")
	}
	return string(raw), nil
}

func titleFromPath(path string) string {
	if path == "" || path == "-" {
		return "stdin"
	}
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

// normalizeWhitespace collapses runs of blanks inside each line and drops
// empty lines.
func normalizeWhitespace(text string) string {
	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strings.Join(words, " "))
	}
	return b.String()
}
