package workbook

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"food-rescue-dashboard/internal/domain"
	"food-rescue-dashboard/internal/platform/obs"
	"io"
	"iter"
	"path/filepath"
	"strconv"
	"strings"
)

type format int

const (
	formatUnknown format = iota
	formatXLSX
	formatXLS
	formatCSV
)

var (
	zipMagic = []byte("PK\x03\x04")
	oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0}
)

// Reader implements ports.WorkbookReader for xlsx, legacy xls and delimited text.
// It holds no state and is safe for concurrent use.
type Reader struct {
	// MaxBytes caps how much of an upload is read. Zero means no cap.
	MaxBytes int64
}

func NewReader(maxBytes int64) *Reader {
	return &Reader{MaxBytes: maxBytes}
}

// ReadRows parses the first sheet eagerly and returns a lazy row sequence.
func (r *Reader) ReadRows(
	ctx context.Context,
	file io.Reader,
	filename string,
	headerRow int,
) (_ iter.Seq2[int, domain.RawRow], err error) {
	defer obs.Time(ctx, "workbook.ReadRows")(&err)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if file == nil {
		return nil, &domain.ParseError{FileName: filename, Reason: "no file"}
	}
	if headerRow < 0 {
		return nil, fmt.Errorf("read rows: header row must not be negative (got %d)", headerRow)
	}

	src := file
	if r.MaxBytes > 0 {
		src = io.LimitReader(file, r.MaxBytes+1)
	}
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, &domain.ParseError{FileName: filename, Reason: "read upload", Err: err}
	}
	if r.MaxBytes > 0 && int64(len(data)) > r.MaxBytes {
		return nil, &domain.ParseError{FileName: filename, Reason: fmt.Sprintf("exceeds %d bytes", r.MaxBytes), Err: domain.ErrFileTooLarge}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &domain.ParseError{FileName: filename, Reason: "file is empty"}
	}

	var cells [][]string
	switch detectFormat(filename, data) {
	case formatXLSX:
		cells, err = readXLSX(data)
	case formatXLS:
		cells, err = readXLS(data)
	case formatCSV:
		cells, err = readDelimited(data, filename)
	default:
		err = errors.New("unrecognized file format")
	}
	if err != nil {
		return nil, &domain.ParseError{FileName: filename, Reason: "unreadable workbook", Err: err}
	}

	s, err := newSheet(cells, headerRow)
	if err != nil {
		return nil, &domain.ParseError{FileName: filename, Reason: err.Error()}
	}

	return s.rows(), nil
}

// detectFormat trusts a known extension and sniffs magic bytes otherwise.
func detectFormat(filename string, data []byte) format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		return formatXLSX
	case ".xls":
		// Some exporters write HTML or CSV with an .xls name; only OLE files go to the xls parser.
		if bytes.HasPrefix(data, oleMagic) {
			return formatXLS
		}
	case ".csv", ".tsv", ".txt":
		return formatCSV
	}

	switch {
	case bytes.HasPrefix(data, zipMagic):
		return formatXLSX
	case bytes.HasPrefix(data, oleMagic):
		return formatXLS
	case looksLikeText(data):
		return formatCSV
	}
	return formatUnknown
}

func looksLikeText(data []byte) bool {
	n := min(len(data), 512)
	for _, b := range data[:n] {
		if b == 0 {
			// NUL bytes only show up in text as UTF-16, which always carries a BOM.
			return bytes.HasPrefix(data, []byte{0xFF, 0xFE}) || bytes.HasPrefix(data, []byte{0xFE, 0xFF})
		}
	}
	return true
}

// sheet is a fully parsed grid plus its resolved column headers.
type sheet struct {
	headers   []string
	cells     [][]string
	headerRow int
}

func newSheet(cells [][]string, headerRow int) (*sheet, error) {
	if headerRow >= len(cells) {
		return nil, fmt.Errorf("header row %d not found (sheet has %d rows)", headerRow+1, len(cells))
	}

	raw := cells[headerRow]
	headers := make([]string, len(raw))
	seen := make(map[string]int, len(raw))
	named := 0
	for i, h := range raw {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		if n, ok := seen[h]; ok {
			seen[h] = n + 1
			h = h + "_" + strconv.Itoa(n)
		} else {
			seen[h] = 1
		}
		headers[i] = h
		named++
	}
	if named == 0 {
		return nil, fmt.Errorf("header row %d is empty", headerRow+1)
	}

	return &sheet{headers: headers, cells: cells, headerRow: headerRow}, nil
}

// rows yields 1-based sheet row numbers; rows with no populated cell are skipped.
func (s *sheet) rows() iter.Seq2[int, domain.RawRow] {
	return func(yield func(int, domain.RawRow) bool) {
		for i := s.headerRow + 1; i < len(s.cells); i++ {
			row := s.rawRow(s.cells[i])
			if len(row) == 0 {
				continue
			}
			if !yield(i+1, row) {
				return
			}
		}
	}
}

func (s *sheet) rawRow(cells []string) domain.RawRow {
	row := make(domain.RawRow, len(s.headers))
	for i, v := range cells {
		if i >= len(s.headers) || s.headers[i] == "" {
			continue
		}
		if strings.TrimSpace(v) == "" {
			continue
		}
		row[s.headers[i]] = v
	}
	return row
}
