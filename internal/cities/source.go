package cities

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pedraamn/poison-ivy-removal/internal/model"
)

// Source supplies the ordered city table that drives per-city page
// generation.
type Source interface {
	Cities() ([]model.CityRecord, error)
}

// StaticSource serves a fixed in-memory city list.
type StaticSource []model.CityRecord

// NewStatic normalizes rows into a StaticSource.
func NewStatic(rows []model.CityRecord) StaticSource {
	out := make([]model.CityRecord, len(rows))
	for i, r := range rows {
		out[i] = normalize(r)
	}
	return StaticSource(out)
}

func (s StaticSource) Cities() ([]model.CityRecord, error) {
	return []model.CityRecord(s), nil
}

// FileSource loads the city table from a CSV file. The header must contain
// the columns city, state, and col (cost-of-living multiplier), in any
// order; extra columns are ignored.
type FileSource struct {
	Path string
}

func (f FileSource) Cities() ([]model.CityRecord, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("open cities file: %w", err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read cities file %s: %w", f.Path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("cities file %s: missing header row", f.Path)
	}

	idx := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, col := range []string{"city", "state", "col"} {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("cities file %s: header must contain city,state,col (found: %s)",
				f.Path, strings.Join(rows[0], ","))
		}
	}

	records := make([]model.CityRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		line := i + 2 // header is line 1

		city := field(row, idx["city"])
		state := field(row, idx["state"])
		colRaw := field(row, idx["col"])

		var missing []string
		if city == "" {
			missing = append(missing, "city")
		}
		if state == "" {
			missing = append(missing, "state")
		}
		if colRaw == "" {
			missing = append(missing, "col")
		}
		if len(missing) > 0 {
			return nil, fmt.Errorf("cities file %s: missing %s at line %d",
				f.Path, strings.Join(missing, ", "), line)
		}

		col, err := strconv.ParseFloat(colRaw, 64)
		if err != nil {
			return nil, fmt.Errorf("cities file %s: invalid col value %q at line %d: %w",
				f.Path, colRaw, line, err)
		}

		records = append(records, normalize(model.CityRecord{
			City:           city,
			State:          state,
			CostMultiplier: col,
		}))
	}

	return records, nil
}

func field(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// normalize fixes up display casing and defaults the multiplier. Slugs are
// computed from the normalized value later, so casing never affects paths.
func normalize(r model.CityRecord) model.CityRecord {
	r.City = cases.Title(language.English).String(strings.TrimSpace(r.City))
	r.State = strings.ToUpper(strings.TrimSpace(r.State))
	if r.CostMultiplier == 0 {
		r.CostMultiplier = 1.0
	}
	return r
}
