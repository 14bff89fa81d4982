package ingest

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const docxBody = "word/document.xml"

func docxFile(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return docxText(raw)
}

// docxText returns the paragraphs of a .docx archive, one per line. Tabs and
// breaks inside a paragraph read as spaces.
func docxText(raw []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}
	rc, err := zr.Open(docxBody)
	if err != nil {
		return "", fmt.Errorf("docx has no %s: %w", docxBody, err)
	}
	defer rc.Close()
	return docxParagraphs(rc)
}

func docxParagraphs(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)
	var (
		lines  []string
		para   strings.Builder
		inText int
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("decode %s: %w", docxBody, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText++
			case "tab", "br", "cr":
				para.WriteByte(' ')
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				if inText > 0 {
					inText--
				}
			case "p":
				lines = append(lines, para.String())
				para.Reset()
			}
		case xml.CharData:
			if inText > 0 {
				para.Write(t)
			}
		}
	}
	if para.Len() > 0 {
		lines = append(lines, para.String())
	}
	return strings.Join(lines, "\n"), nil
}
