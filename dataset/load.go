package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// Load reads the project CSV at path. A missing file is not an error: the
// synthetic dataset is returned instead, with a Notice for the dashboard.
// Any other failure (unreadable file, missing column, bad numeric field,
// ragged row) is returned as an error and should abort startup.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		ds := Generate()
		ds.Notice = fmt.Sprintf("CSV file %q not found. Using sample data.", path)
		return ds, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	records, err := parseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return New(records, "file"), nil
}

func parseCSV(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	// Map each required column name to its position. Extra columns are
	// ignored; missing ones are fatal.
	idx := make(map[string]int, len(header))
	for i, col := range header {
		idx[strings.TrimSpace(strings.ToLower(col))] = i
	}
	for _, col := range Columns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("missing column %q", col)
		}
	}

	var records []Record
	for rowNum := 2; ; rowNum++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		rec, err := parseRow(row, idx)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseRow(row []string, idx map[string]int) (Record, error) {
	field := func(name string) string { return strings.TrimSpace(row[idx[name]]) }

	rec := Record{
		Title:       field("title"),
		Category:    field("category"),
		Description: field("description"),
	}

	var err error
	if rec.X, err = parseFloat("x", field("x")); err != nil {
		return Record{}, err
	}
	if rec.Y, err = parseFloat("y", field("y")); err != nil {
		return Record{}, err
	}
	if rec.Z, err = parseFloat("z", field("z")); err != nil {
		return Record{}, err
	}
	if rec.LaunchYear, err = parseInt("launch_year", field("launch_year")); err != nil {
		return Record{}, err
	}
	if rec.TeamSize, err = parseInt("team_size", field("team_size")); err != nil {
		return Record{}, err
	}
	if rec.Funding, err = parseFloat("funding", field("funding")); err != nil {
		return Record{}, err
	}
	if rec.SuccessRate, err = parseFloat("success_rate", field("success_rate")); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func parseFloat(name, val string) (float64, error) {
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("column %s: invalid number %q", name, val)
	}
	return f, nil
}

func parseInt(name, val string) (int, error) {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("column %s: invalid integer %q", name, val)
	}
	return n, nil
}
