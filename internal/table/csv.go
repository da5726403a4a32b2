package table

import (
	"encoding/csv"
	"io"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// CSVOptions configures the CSV parser.
type CSVOptions struct {
	Delimiter  rune   // default ','
	Charset    string // WHATWG label, e.g. "windows-1252"; empty means UTF-8
	Comment    rune   // comment character (0 = none)
	LazyQuotes bool   // allow bare quotes inside unquoted fields
	TrimSpace  bool   // trim surrounding whitespace from every field
}

// ReadCSV parses r into a Table. The first record is the header. A leading
// UTF-8 byte order mark is dropped.
func ReadCSV(r io.Reader, opts CSVOptions) (*Table, error) {
	decoded, err := decodeCharset(r, opts.Charset)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(decoded)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	if opts.Comment != 0 {
		reader.Comment = opts.Comment
	}
	reader.LazyQuotes = opts.LazyQuotes
	reader.FieldsPerRecord = -1 // shape is checked by Validate

	t := &Table{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, adapterf(err, "csv: read row")
		}

		if opts.TrimSpace {
			for i, field := range record {
				record[i] = strings.TrimSpace(field)
			}
		}

		if t.Header == nil {
			t.Header = record
			continue
		}
		t.Rows = append(t.Rows, record)
	}

	if t.Header == nil {
		return nil, adapterf(nil, "csv: input is empty")
	}
	return t, nil
}

func decodeCharset(r io.Reader, charset string) (io.Reader, error) {
	if charset == "" || strings.EqualFold(charset, "utf-8") || strings.EqualFold(charset, "utf8") {
		return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())), nil
	}
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return nil, adapterf(err, "csv: unsupported charset %q", charset)
	}
	return enc.NewDecoder().Reader(r), nil
}

// WriteCSV writes the header and rows of t to w.
func WriteCSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(t.Header); err != nil {
		return adapterf(err, "csv: write header")
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return adapterf(err, "csv: write row")
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return adapterf(err, "csv: flush")
	}
	return nil
}
