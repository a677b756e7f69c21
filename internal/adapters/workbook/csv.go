package workbook

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// readDelimited parses comma, semicolon or tab separated text.
func readDelimited(data []byte, filename string) ([][]string, error) {
	text, err := io.ReadAll(decodeText(data))
	if err != nil {
		return nil, fmt.Errorf("decode text: %w", err)
	}

	r := csv.NewReader(bytes.NewReader(text))
	r.Comma = sniffDelimiter(text, filename)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return rows, nil
}

// decodeText honours a UTF-8/UTF-16 BOM and falls back to Windows-1252 for
// bytes that are not valid UTF-8 (older spreadsheet "Save as CSV" output).
func decodeText(data []byte) io.Reader {
	var fallback transform.Transformer = unicode.UTF8.NewDecoder()
	if !utf8.Valid(data) {
		fallback = charmap.Windows1252.NewDecoder()
	}
	return transform.NewReader(bytes.NewReader(data), unicode.BOMOverride(fallback))
}

func sniffDelimiter(text []byte, filename string) rune {
	if strings.EqualFold(filepath.Ext(filename), ".tsv") {
		return '\t'
	}

	// Look at the widest of the first few lines; banner rows above the header are narrow.
	sc := bufio.NewScanner(bytes.NewReader(text))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	best, bestCount := ',', 0
	for n := 0; n < 20 && sc.Scan(); n++ {
		line := sc.Text()
		for _, d := range []rune{',', ';', '\t'} {
			if c := strings.Count(line, string(d)); c > bestCount {
				best, bestCount = d, c
			}
		}
	}
	return best
}
