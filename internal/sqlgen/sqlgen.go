// Package sqlgen turns catalog CSVs into INSERT statements, either written
// to .sql files or executed directly against Postgres.
package sqlgen

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"medharvest/internal/catalog"
)

// FromCSV reads a CSV written by the catalog package back into a Table.
// The table name comes from the file's base name.
func FromCSV(path string) (catalog.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return catalog.Table{}, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return catalog.Table{}, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return catalog.Table{}, fmt.Errorf("read %s: no header row", path)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return catalog.Table{Name: name, Header: records[0], Rows: records[1:]}, nil
}

// Statements renders one INSERT per row, stamping each with created_at.
func Statements(t catalog.Table) []string {
	createdAt := time.Now().Format("2006-01-02 15:04:05")
	columns := strings.Join(append(append([]string{}, t.Header...), "created_at"), ", ")

	stmts := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		values := make([]string, 0, len(row)+1)
		for _, v := range row {
			values = append(values, quote(v))
		}
		values = append(values, quote(createdAt))
		stmts = append(stmts, fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);", t.Name, columns, strings.Join(values, ", ")))
	}
	return stmts
}

// WriteFile saves the table's statements to dir/<name>.sql.
func WriteFile(dir string, t catalog.Table) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, t.Name+".sql")
	content := strings.Join(Statements(t), "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// Execute runs pre-rendered statements over database/sql.
func Execute(db *sql.DB, stmts []string) error {
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt, err)
		}
	}
	return nil
}

// LoadTable inserts a table's rows through pgx with bound parameters.
func LoadTable(ctx context.Context, conn *pgx.Conn, t catalog.Table) error {
	placeholders := make([]string, len(t.Header))
	for i := range t.Header {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	query := fmt.Sprintf(
		"INSERT INTO %s (%s, created_at) VALUES (%s, now())",
		t.Name,
		strings.Join(t.Header, ", "),
		strings.Join(placeholders, ", "),
	)

	for _, row := range t.Rows {
		args := make([]any, len(row))
		for i, v := range row {
			args[i] = v
		}
		if _, err := conn.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("insert into %s: %w", t.Name, err)
		}
	}
	return nil
}

func quote(v string) string {
	return "'" + strings.ReplaceAll(v, "'", "''") + "'"
}
