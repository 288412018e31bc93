package dataset

import (
	"bytes"
	"encoding/csv"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/transform"
)

// Options controls how a dataset file is read.
type Options struct {
	// Encoding of delimited text files. Defaults to cp949.
	Encoding string
	// Delimiter for CSV. If 0, sniffed from the header line.
	Delimiter rune
	// Number recognition; see NumberFormat.
	Number NumberFormat
	// Sheet selects an xlsx worksheet by name; SheetIndex (1-based) is used when empty.
	Sheet      string
	SheetIndex int
}

// DefaultOptions returns the options for the provincial registration export.
func DefaultOptions() Options {
	return Options{
		Encoding:   DefaultEncoding,
		SheetIndex: 1,
	}
}

// Load reads a CSV/TSV or XLSX file into a Table. A missing file yields a
// *NotFoundError; every other failure is wrapped with context.
func Load(path string, opt Options) (*Table, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, errors.Wrap(err, "stat dataset")
	}
	var (
		header []string
		rows   [][]string
		err    error
	)
	if strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		header, rows, err = readXLSX(path, opt.Sheet, opt.SheetIndex)
	} else {
		header, rows, err = readDelimited(path, opt)
	}
	if err != nil {
		return nil, err
	}
	return build(filepath.Base(path), header, rows, opt.Number), nil
}

// Parse reads delimited, already opened content. The reader is decoded with opt.Encoding.
func Parse(name string, r io.Reader, opt Options) (*Table, error) {
	header, rows, err := decodeDelimited(name, r, opt)
	if err != nil {
		return nil, err
	}
	return build(name, header, rows, opt.Number), nil
}

func readDelimited(path string, opt Options) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open csv")
	}
	defer f.Close()
	return decodeDelimited(path, f, opt)
}

func decodeDelimited(name string, r io.Reader, opt Options) ([]string, [][]string, error) {
	enc, err := LookupEncoding(opt.Encoding)
	if err != nil {
		return nil, nil, err
	}
	data, err := io.ReadAll(transform.NewReader(r, enc.NewDecoder()))
	if err != nil {
		return nil, nil, errors.Wrapf(err, "decode %s as %s", filepath.Base(name), opt.Encoding)
	}
	data = bytes.TrimPrefix(data, []byte("\uFEFF"))

	delim := opt.Delimiter
	if delim == 0 {
		delim = sniffDelimiter(name, data)
	}
	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comma = delim

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, errors.New("dataset is empty")
		}
		return nil, nil, errors.Wrap(err, "read header")
	}
	header = append([]string(nil), header...)
	var rows [][]string
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, nil, errors.Wrapf(err, "read row %d", len(rows)+1)
		}
		rows = append(rows, rec)
	}
	return header, rows, nil
}

// build trims cells and normalizes row width to the header width.
func build(name string, header []string, raw [][]string, nf NumberFormat) *Table {
	ncol := len(header)
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	rows := make([][]string, 0, len(raw))
	for _, rec := range raw {
		if isBlankRecord(rec) {
			continue
		}
		row := make([]string, ncol)
		for j := 0; j < ncol && j < len(rec); j++ {
			row[j] = strings.TrimSpace(rec[j])
		}
		rows = append(rows, row)
	}
	return newTable(name, header, rows, nf)
}

func isBlankRecord(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func sniffDelimiter(name string, data []byte) rune {
	if strings.HasSuffix(strings.ToLower(name), ".tsv") {
		return '\t'
	}
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}
	best, bestCount := ',', 0
	for _, d := range []rune{',', ';', '\t'} {
		if n := bytes.Count(line, []byte(string(d))); n > bestCount {
			best, bestCount = d, n
		}
	}
	return best
}
