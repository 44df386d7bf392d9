package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchema_Languages(t *testing.T) {
	tests := []struct {
		name   string
		schema Schema
		want   []string
	}{
		{
			name: "keeps table order",
			schema: Schema{
				{Name: "ID", Type: "INTEGER", PrimaryKey: true},
				{Name: "english", Type: "TEXT"},
				{Name: "french", Type: "TEXT"},
				{Name: "german", Type: "TEXT"},
			},
			want: []string{"english", "french", "german"},
		},
		{
			name: "excludes every identifier spelling regardless of case",
			schema: Schema{
				{Name: "id"},
				{Name: "EntryId"},
				{Name: "ROWID"},
				{Name: "spanish"},
			},
			want: []string{"spanish"},
		},
		{
			name:   "empty schema",
			schema: Schema{},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.schema.Languages())
		})
	}
}

func TestSchema_ResolveLanguage(t *testing.T) {
	schema := Schema{
		{Name: "ID", PrimaryKey: true},
		{Name: "English"},
		{Name: "french"},
	}

	tests := []struct {
		name     string
		language string
		want     string
		wantOK   bool
	}{
		{name: "exact name", language: "french", want: "french", wantOK: true},
		{name: "case-insensitive match returns the column's exact name", language: "english", want: "English", wantOK: true},
		{name: "unknown name", language: "klingon", wantOK: false},
		{name: "identifier column is not a language", language: "id", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := schema.ResolveLanguage(tt.language)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSchema_IdentifierColumn(t *testing.T) {
	t.Run("finds the identifier in any letter case", func(t *testing.T) {
		schema := Schema{
			{Name: "english"},
			{Name: "EntryID"},
		}
		got, ok := schema.IdentifierColumn()
		assert.True(t, ok)
		assert.Equal(t, "EntryID", got)
	})

	t.Run("no identifier column", func(t *testing.T) {
		schema := Schema{{Name: "english"}, {Name: "french"}}
		_, ok := schema.IdentifierColumn()
		assert.False(t, ok)
	})
}
