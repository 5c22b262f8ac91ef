// Package catalog builds lookup tables out of harvested medicines and joins
// them into a denormalized table ready for database import.
package catalog

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"medharvest/internal/model"
)

// Table is an in-memory CSV: a name (doubling as the SQL table name), a
// header row and data rows.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}

// Manufacturers extracts the unique manufacturer names in first-seen order.
// The returned map resolves a source name to its generated row id.
func Manufacturers(meds []model.Medicine) (Table, map[string]string) {
	return uniqueNames("manufacturers", meds, func(m model.Medicine) string { return m.Manufacturer })
}

// Generics extracts the unique generic names in first-seen order.
func Generics(meds []model.Medicine) (Table, map[string]string) {
	return uniqueNames("generic_names", meds, func(m model.Medicine) string { return m.GenericName })
}

func uniqueNames(table string, meds []model.Medicine, field func(model.Medicine) string) (Table, map[string]string) {
	t := Table{Name: table, Header: []string{"id", "name", "slug", "status"}}
	ids := make(map[string]string)
	for _, m := range meds {
		name := field(m)
		if name == "" {
			continue
		}
		if _, ok := ids[name]; ok {
			continue
		}
		id := uuid.New().String()
		ids[name] = id
		t.Rows = append(t.Rows, []string{id, name, slugify(name), "1"})
	}
	return t, ids
}

// Strengths extracts the unique strength descriptions, split into quantity
// (first token) and unit (the rest).
func Strengths(meds []model.Medicine) (Table, map[string]string) {
	t := Table{Name: "medicine_strengths", Header: []string{"id", "quantity", "unit", "name", "status"}}
	ids := make(map[string]string)
	for _, m := range meds {
		if m.Strength == "" {
			continue
		}
		if _, ok := ids[m.Strength]; ok {
			continue
		}
		parts := strings.Fields(m.Strength)
		quantity, unit := "", ""
		if len(parts) > 0 {
			quantity = parts[0]
			unit = strings.Join(parts[1:], " ")
		}
		id := uuid.New().String()
		ids[m.Strength] = id
		t.Rows = append(t.Rows, []string{id, quantity, unit, strings.TrimSpace(quantity + " " + unit), "1"})
	}
	return t, ids
}

// Medicines joins each record against the lookup maps, replacing names with
// catalog row ids. Unresolvable names leave the id column empty.
func Medicines(meds []model.Medicine, companyIDs, genericIDs, strengthIDs map[string]string) Table {
	t := Table{Name: "medicines", Header: []string{"id", "name", "company_id", "generic_id", "strength_id", "unit_price", "status"}}
	for _, m := range meds {
		t.Rows = append(t.Rows, []string{
			uuid.New().String(),
			m.ProductName,
			companyIDs[m.Manufacturer],
			genericIDs[m.GenericName],
			strengthIDs[m.Strength],
			m.PriceInfo.UnitPrice,
			"1",
		})
	}
	return t
}

// WriteCSV writes the table to dir/<name>.csv, creating dir if needed.
func WriteCSV(dir string, t Table) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, t.Name+".csv")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.Header); err != nil {
		return "", err
	}
	if err := w.WriteAll(t.Rows); err != nil {
		return "", err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

func slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}
