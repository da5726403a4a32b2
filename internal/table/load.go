package table

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// LoadOptions configures Load.
type LoadOptions struct {
	CSV     CSVOptions
	XLSX    XLSXOptions
	Fetcher *HTTPFetcher // used for http(s) sources; nil means a default fetcher
}

// IsURL reports whether source should be downloaded rather than opened.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// IsXLSX reports whether name has a workbook extension.
func IsXLSX(name string) bool {
	if IsURL(name) {
		if u, err := url.Parse(name); err == nil {
			name = u.Path
		}
		return strings.EqualFold(path.Ext(name), ".xlsx")
	}
	return strings.EqualFold(filepath.Ext(name), ".xlsx")
}

// Load reads a table from a local path or an http(s) URL and validates its
// shape. Files ending in .xlsx are read as workbooks, everything else as CSV.
func Load(ctx context.Context, source string, opts LoadOptions) (*Table, error) {
	var (
		t   *Table
		err error
	)
	if IsURL(source) {
		t, err = loadURL(ctx, source, opts)
	} else {
		t, err = loadFile(source, opts)
	}
	if err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func loadFile(name string, opts LoadOptions) (*Table, error) {
	if _, err := os.Stat(name); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, adapterf(nil, "file not found: %s", name)
		}
		return nil, adapterf(err, "stat %s", name)
	}

	if IsXLSX(name) {
		return ReadXLSX(name, opts.XLSX)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, adapterf(err, "open %s", name)
	}
	defer f.Close() //nolint:errcheck
	return ReadCSV(f, opts.CSV)
}

func loadURL(ctx context.Context, source string, opts LoadOptions) (*Table, error) {
	fetcher := opts.Fetcher
	if fetcher == nil {
		fetcher = NewHTTPFetcher(HTTPOptions{})
	}

	body, err := fetcher.Download(ctx, source)
	if err != nil {
		return nil, err
	}
	defer body.Close() //nolint:errcheck

	if IsXLSX(source) {
		b, err := io.ReadAll(body)
		if err != nil {
			return nil, adapterf(err, "read %s", source)
		}
		return ReadXLSXBytes(b, opts.XLSX)
	}
	return ReadCSV(body, opts.CSV)
}

// Save writes t to name, as a workbook when name ends in .xlsx and as CSV
// otherwise.
func Save(name string, t *Table) error {
	if IsXLSX(name) {
		return WriteXLSX(name, t)
	}

	f, err := os.Create(name)
	if err != nil {
		return adapterf(err, "create output file %s", name)
	}
	if err := WriteCSV(f, t); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return adapterf(err, "close output file %s", name)
	}
	return nil
}
