package dictionary

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/sandeshlim1992/dictionary-api/internal/database"
)

// ErrUnknownLanguage is returned when from_language does not name a column
// of the translations table.
var ErrUnknownLanguage = errors.New("unknown language")

// suggestLimit caps the number of autocomplete suggestions per request.
const suggestLimit = 10

// Store defines the read-only queries over the dictionary table.
type Store interface {
	Languages(ctx context.Context) ([]string, error)
	Search(ctx context.Context, fromLanguage string, query string) (*Entry, error)
	Suggest(ctx context.Context, fromLanguage string, query string) ([]string, error)
	Diagnose(ctx context.Context) Diagnosis
}

// DBStore implements Store over a SQLite translations table. Every call
// opens its own connection and closes it before returning; nothing is
// shared or cached between requests.
type DBStore struct {
	open  database.Opener
	table string
}

var _ Store = (*DBStore)(nil)

// NewDBStore creates a new DBStore for the named table.
func NewDBStore(open database.Opener, table string) *DBStore {
	return &DBStore{open: open, table: table}
}

type tableColumn struct {
	Name string `db:"name"`
	Type string `db:"type"`
	PK   int    `db:"pk"`
}

// schema reads the live column set of the translations table.
func (s *DBStore) schema(ctx context.Context, db *sqlx.DB) (Schema, error) {
	var columns []tableColumn
	if err := db.SelectContext(ctx, &columns,
		"SELECT name, type, pk FROM pragma_table_info(?)", s.table); err != nil {
		return nil, fmt.Errorf("read schema of table %q: %w", s.table, err)
	}

	schema := make(Schema, 0, len(columns))
	for _, column := range columns {
		schema = append(schema, Column{
			Name:       column.Name,
			Type:       column.Type,
			PrimaryKey: column.PK > 0,
		})
	}
	return schema, nil
}

// Languages returns the language columns of the translations table in
// table order.
func (s *DBStore) Languages(ctx context.Context) ([]string, error) {
	db, err := s.open()
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	defer db.Close()

	schema, err := s.schema(ctx, db)
	if err != nil {
		return nil, err
	}
	return schema.Languages(), nil
}

// Search finds the first row whose fromLanguage column contains query as a
// case-insensitive substring. It returns (nil, nil) when no row matches.
func (s *DBStore) Search(ctx context.Context, fromLanguage string, query string) (*Entry, error) {
	db, err := s.open()
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	defer db.Close()

	schema, err := s.schema(ctx, db)
	if err != nil {
		return nil, err
	}
	column, ok := schema.ResolveLanguage(fromLanguage)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLanguage, fromLanguage)
	}

	stmt := fmt.Sprintf("SELECT * FROM %s WHERE %s LIKE ? COLLATE NOCASE LIMIT 1",
		quoteIdentifier(s.table), quoteIdentifier(column))
	row := make(map[string]any)
	if err := db.QueryRowxContext(ctx, stmt, "%"+strings.TrimSpace(query)+"%").MapScan(row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("search column %q: %w", column, err)
	}

	return newEntry(schema, row)
}

// Suggest returns up to suggestLimit values of the fromLanguage column that
// start with query, matched without regard to letter case. An empty or
// all-whitespace query returns an empty list without touching the store.
func (s *DBStore) Suggest(ctx context.Context, fromLanguage string, query string) ([]string, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return []string{}, nil
	}

	db, err := s.open()
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	defer db.Close()

	schema, err := s.schema(ctx, db)
	if err != nil {
		return nil, err
	}
	column, ok := schema.ResolveLanguage(fromLanguage)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLanguage, fromLanguage)
	}

	stmt := fmt.Sprintf("SELECT %s FROM %s WHERE %s LIKE ? COLLATE NOCASE LIMIT %d",
		quoteIdentifier(column), quoteIdentifier(s.table), quoteIdentifier(column), suggestLimit)
	var values []sql.NullString
	if err := db.SelectContext(ctx, &values, stmt, trimmed+"%"); err != nil {
		return nil, fmt.Errorf("suggest from column %q: %w", column, err)
	}

	suggestions := make([]string, 0, len(values))
	for _, value := range values {
		if value.Valid {
			suggestions = append(suggestions, value.String)
		}
	}
	return suggestions, nil
}

// Diagnose checks the store step by step: connection, schema, identifier
// column, and one sample row. It never returns an error; every failure is
// reported inside the Diagnosis.
func (s *DBStore) Diagnose(ctx context.Context) Diagnosis {
	db, err := s.open()
	if err != nil {
		return Diagnosis{Status: StatusError, Detail: fmt.Sprintf("cannot open the store: %v", err)}
	}
	defer db.Close()

	schema, err := s.schema(ctx, db)
	if err != nil {
		return Diagnosis{Status: StatusError, Detail: fmt.Sprintf("cannot read columns: %v", err)}
	}
	if len(schema) == 0 {
		return Diagnosis{
			Status: StatusError,
			Detail: fmt.Sprintf("the table %q has no columns or does not exist", s.table),
		}
	}

	columns := make([]string, 0, len(schema))
	for _, column := range schema {
		columns = append(columns, column.Name)
	}

	row := make(map[string]any)
	stmt := fmt.Sprintf("SELECT * FROM %s LIMIT 1", quoteIdentifier(s.table))
	if err := db.QueryRowxContext(ctx, stmt).MapScan(row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Diagnosis{
				Status: StatusSuccess,
				Detail: fmt.Sprintf("connected to the table %q, but the table is empty", s.table),
			}
		}
		return Diagnosis{Status: StatusError, Detail: fmt.Sprintf("cannot fetch a sample row: %v", err)}
	}

	if _, ok := schema.IdentifierColumn(); !ok {
		return Diagnosis{
			Status:  StatusError,
			Detail:  fmt.Sprintf("no identifier column was found. Available columns are: %v", columns),
			Columns: columns,
		}
	}

	firstRow := make(map[string]any, len(row))
	for name, value := range row {
		firstRow[name] = jsonValue(value)
	}
	return Diagnosis{
		Status:   StatusSuccess,
		Detail:   "store connection and basic queries are working correctly",
		Columns:  columns,
		FirstRow: firstRow,
	}
}

// newEntry applies the fixed row transformation: the identifier column
// becomes EntryID and every remaining schema column becomes a key of
// Translations, including the column that was searched on.
func newEntry(schema Schema, row map[string]any) (*Entry, error) {
	identifier, ok := schema.IdentifierColumn()
	if !ok {
		return nil, errors.New("no identifier column in the translations table")
	}

	entry := Entry{Translations: make(map[string]*string, len(schema)-1)}
	for _, column := range schema {
		value := row[column.Name]
		if column.Name == identifier {
			id, ok := value.(int64)
			if !ok {
				return nil, fmt.Errorf("identifier column %q holds %T, not an integer", identifier, value)
			}
			entry.EntryID = id
			continue
		}
		entry.Translations[column.Name] = nullableString(value)
	}
	return &entry, nil
}

func nullableString(value any) *string {
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		return &v
	case []byte:
		s := string(v)
		return &s
	default:
		s := fmt.Sprint(v)
		return &s
	}
}

func jsonValue(value any) any {
	if b, ok := value.([]byte); ok {
		return string(b)
	}
	return value
}

// quoteIdentifier makes a name safe to splice into an identifier position.
// Table names come from configuration and column names from the live
// schema, so this guards quoting, not untrusted input.
func quoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
