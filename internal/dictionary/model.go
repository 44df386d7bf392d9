// Package dictionary implements read-only queries over the translations table.
package dictionary

import "strings"

// Status values reported by Diagnosis.
const (
	StatusSuccess = "SUCCESS"
	StatusError   = "ERROR"
)

// Identifier-like column names are never treated as languages.
var identifierColumns = map[string]struct{}{
	"id":      {},
	"entryid": {},
	"rowid":   {},
}

// Column describes one column of the translations table.
type Column struct {
	Name       string
	Type       string
	PrimaryKey bool
}

// Schema is the ordered column set of the translations table. It is read
// from the store on every request, never cached.
type Schema []Column

// Languages returns the column names that hold translations, in table order.
func (s Schema) Languages() []string {
	languages := make([]string, 0, len(s))
	for _, column := range s {
		if _, ok := identifierColumns[strings.ToLower(column.Name)]; ok {
			continue
		}
		languages = append(languages, column.Name)
	}
	return languages
}

// ResolveLanguage matches name against the language columns without regard
// to letter case and returns the column's exact name.
func (s Schema) ResolveLanguage(name string) (string, bool) {
	for _, language := range s.Languages() {
		if strings.EqualFold(language, name) {
			return language, true
		}
	}
	return "", false
}

// IdentifierColumn returns the first column recognized as the row identifier.
func (s Schema) IdentifierColumn() (string, bool) {
	for _, column := range s {
		if _, ok := identifierColumns[strings.ToLower(column.Name)]; ok {
			return column.Name, true
		}
	}
	return "", false
}

// Entry pairs a row identifier with its translations across every language
// column. An untranslated language maps to nil.
type Entry struct {
	EntryID      int64              `json:"entry_id"`
	Translations map[string]*string `json:"translations"`
}

// Diagnosis reports the outcome of each step of the store self-check.
type Diagnosis struct {
	Status   string         `json:"status"`
	Detail   string         `json:"detail"`
	Columns  []string       `json:"columns,omitempty"`
	FirstRow map[string]any `json:"first_row,omitempty"`
}
