package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/rendis/triptap/internal/engine/storage"
	"github.com/rendis/triptap/internal/model"
)

// CSV column headers expected in a dataset file.
const (
	ColName     = "Name"
	ColCity     = "City"
	ColZone     = "Zone"
	ColType     = "Type"
	ColFee      = "Entrance Fee in INR"
	ColRating   = "Google review rating"
	ColBestTime = "Best Time to visit"
	ColDSLR     = "DSLR Allowed"
)

var requiredColumns = []string{
	ColName, ColCity, ColZone, ColType, ColFee, ColRating, ColBestTime, ColDSLR,
}

// Load reads a dataset from a .csv or .db file. Rows whose entrance fee is
// missing, non-numeric or negative are dropped; everything else is kept in
// file order.
func Load(path string) ([]model.Destination, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(path)
	case ".db":
		return loadDB(path)
	default:
		return nil, fmt.Errorf("unsupported dataset file %q (want .csv or .db)", path)
	}
}

// LoadCSV reads a delimited dataset file into memory.
func LoadCSV(path string) ([]model.Destination, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // tolerate ragged rows; short rows are dropped below

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading dataset header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("dataset %s is missing required columns: %s",
			path, strings.Join(missing, ", "))
	}

	maxIdx := 0
	for _, i := range idx {
		if i > maxIdx {
			maxIdx = i
		}
	}

	var table []model.Destination
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading dataset: %w", err)
		}
		if len(rec) <= maxIdx {
			continue
		}

		fee, err := strconv.ParseFloat(strings.TrimSpace(rec[idx[ColFee]]), 64)
		if err != nil || fee < 0 {
			// Fee is the one column we require to be clean; drop the whole row.
			continue
		}

		// Rating is display-only, keep the row even if unparseable.
		rating, _ := strconv.ParseFloat(strings.TrimSpace(rec[idx[ColRating]]), 64)

		table = append(table, model.Destination{
			Name:     strings.TrimSpace(rec[idx[ColName]]),
			City:     strings.TrimSpace(rec[idx[ColCity]]),
			Zone:     strings.TrimSpace(rec[idx[ColZone]]),
			Type:     strings.TrimSpace(rec[idx[ColType]]),
			Fee:      fee,
			Rating:   rating,
			BestTime: strings.TrimSpace(rec[idx[ColBestTime]]),
			DSLR:     strings.TrimSpace(rec[idx[ColDSLR]]),
		})
	}

	return table, nil
}

func loadDB(path string) ([]model.Destination, error) {
	store, err := storage.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset db: %w", err)
	}
	defer store.Close()
	return store.LoadAll()
}

// Zones returns the sorted distinct non-empty zones present in the table.
func Zones(table []model.Destination) []string {
	return distinct(table, func(d model.Destination) string { return d.Zone })
}

// Types returns the sorted distinct non-empty types present in the table.
func Types(table []model.Destination) []string {
	return distinct(table, func(d model.Destination) string { return d.Type })
}

func distinct(table []model.Destination, key func(model.Destination) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, d := range table {
		k := key(d)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
