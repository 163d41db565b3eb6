package cards

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Columns is the batch CSV header. Consumers round-trip files built from the
// downloaded template, so the order is fixed.
var Columns = []string{
	"name", "job_title", "company", "email", "phone", "website", "address",
	"template", "color_scheme", "include_qr",
}

// LoadRowsFromFile reads a batch CSV from disk.
func LoadRowsFromFile(path string) ([]Row, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	rows, err := ReadRows(fp)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return rows, nil
}

// ReadRows parses a batch CSV. Columns are matched by header name in any
// order; unknown columns are ignored and missing ones read as empty. Rows
// without a name are labelled "Card N" (1-based).
func ReadRows(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("csv has no header")
	}

	cols := map[string]int{}
	for i, h := range records[0] {
		h = strings.TrimPrefix(h, "\ufeff")
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}

	get := func(row []string, name string) string {
		if idx, ok := cols[name]; ok && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	out := make([]Row, 0, len(records)-1)
	for i, row := range records[1:] {
		if isBlank(row) {
			continue
		}
		c := Row{
			Contact: Contact{
				Name:     get(row, "name"),
				JobTitle: get(row, "job_title"),
				Company:  get(row, "company"),
				Email:    get(row, "email"),
				Phone:    get(row, "phone"),
				Website:  get(row, "website"),
				Address:  get(row, "address"),
			},
			Template:  get(row, "template"),
			Palette:   get(row, "color_scheme"),
			IncludeQR: get(row, "include_qr"),
		}
		if c.Name == "" {
			c.Name = "Card " + strconv.Itoa(i+1)
		}
		out = append(out, c)
	}
	return out, nil
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
