package datatable

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTablesOrder(t *testing.T) {
	tables := Tables()
	require.Len(t, tables, 4)

	names := make([]string, 0, len(tables))
	for _, d := range tables {
		names = append(names, d.Table)
	}
	assert.Equal(t, []string{"courses", "profiles", "questions", "answers"}, names)
}

func TestLookup(t *testing.T) {
	d, ok := Lookup("courses")
	require.True(t, ok)
	assert.Equal(t, "Courses", d.DisplayName)

	// Nama tabel tidak case-sensitive
	_, ok = Lookup("Profiles")
	assert.True(t, ok)

	_, ok = Lookup("users")
	assert.False(t, ok)
}

func TestSearchableFieldsExcludeIDAndCreatedAt(t *testing.T) {
	for _, d := range Tables() {
		fields := d.SearchableFields()
		assert.NotContains(t, fields, "id", d.Table)
		assert.NotContains(t, fields, "created_at", d.Table)
		assert.NotEmpty(t, fields, d.Table)
	}

	courses, _ := Lookup("courses")
	assert.Equal(t, []string{"title", "slug", "description"}, courses.SearchableFields())

	questions, _ := Lookup("questions")
	assert.Equal(t, []string{"question", "course_id", "user_id"}, questions.SearchableFields())
}

func TestEditableFieldsMatchSearchable(t *testing.T) {
	for _, d := range Tables() {
		assert.Equal(t, d.SearchableFields(), d.EditableFields(), d.Table)
	}
}

func TestRoleIsConstrained(t *testing.T) {
	profiles, _ := Lookup("profiles")
	assert.Equal(t, []string{"user", "admin"}, profiles.ConstrainedFields["role"])

	courses, _ := Lookup("courses")
	assert.Empty(t, courses.ConstrainedFields)
}

func TestHasField(t *testing.T) {
	courses, _ := Lookup("courses")
	assert.True(t, courses.HasField("title"))
	assert.False(t, courses.HasField("password"))
	assert.False(t, courses.HasField("title; DROP TABLE courses"))
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "pendek", TruncateText("pendek"))

	exact := strings.Repeat("a", TruncateLimit)
	assert.Equal(t, exact, TruncateText(exact))

	long := strings.Repeat("a", TruncateLimit+1)
	assert.Equal(t, exact+"...", TruncateText(long))

	// Pemotongan per rune, bukan per byte
	multibyte := strings.Repeat("é", TruncateLimit+10)
	got := TruncateText(multibyte)
	assert.Equal(t, strings.Repeat("é", TruncateLimit)+"...", got)
}

func TestExportFilename(t *testing.T) {
	courses, _ := Lookup("courses")
	assert.Equal(t, "Courses_2026-08-30.xlsx", courses.ExportFilename("2026-08-30"))
}
