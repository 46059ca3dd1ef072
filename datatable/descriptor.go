// Package datatable berisi logika data browser admin: descriptor tabel,
// pembangun query (cari/urut/halaman), dan aturan tampilan grid.
package datatable

import (
	"strings"
	"unicode/utf8"
)

// TruncateLimit: panjang maksimal field teks panjang di grid.
const TruncateLimit = 50

// Descriptor memetakan satu tabel database ke tampilan data browser.
type Descriptor struct {
	Table       string
	DisplayName string
	// Kolom yang tampil di grid, urut.
	Fields []string
	// Kolom teks panjang: dipotong 50 karakter di grid, utuh di form edit.
	LongTextFields []string
	// Kolom dengan pilihan tertutup di form edit (mis. role).
	ConstrainedFields map[string][]string
	// Seluruh kolom tabel sesuai urutan di database, dipakai untuk export.
	ExportColumns []string
}

// SearchableFields: kolom pencarian substring = kolom tampil minus
// id dan created_at.
func (d Descriptor) SearchableFields() []string {
	fields := make([]string, 0, len(d.Fields))
	for _, f := range d.Fields {
		if f == "id" || f == "created_at" {
			continue
		}
		fields = append(fields, f)
	}
	return fields
}

// EditableFields: kolom pada form edit = kolom tampil minus id dan
// created_at.
func (d Descriptor) EditableFields() []string {
	return d.SearchableFields()
}

func (d Descriptor) HasField(field string) bool {
	for _, f := range d.Fields {
		if f == field {
			return true
		}
	}
	return false
}

func (d Descriptor) IsLongText(field string) bool {
	for _, f := range d.LongTextFields {
		if f == field {
			return true
		}
	}
	return false
}

// TruncateText memotong teks panjang untuk sel grid menjadi 50 karakter
// plus elipsis. Aman untuk UTF-8.
func TruncateText(s string) string {
	if utf8.RuneCountInString(s) <= TruncateLimit {
		return s
	}
	runes := []rune(s)
	return string(runes[:TruncateLimit]) + "..."
}

// ExportFilename menghasilkan nama file export: {DisplayName}_{YYYY-MM-DD}.xlsx
func (d Descriptor) ExportFilename(isoDate string) string {
	return d.DisplayName + "_" + isoDate + ".xlsx"
}

var tableOrder = []string{"courses", "profiles", "questions", "answers"}

var registry = map[string]Descriptor{
	"courses": {
		Table:          "courses",
		DisplayName:    "Courses",
		Fields:         []string{"id", "title", "slug", "description", "created_at"},
		LongTextFields: []string{"description"},
		ExportColumns:  []string{"id", "slug", "title", "description", "pdf_url", "image_url", "created_at", "updated_at"},
	},
	"profiles": {
		Table:       "profiles",
		DisplayName: "Profiles",
		Fields:      []string{"id", "full_name", "role", "created_at"},
		ConstrainedFields: map[string][]string{
			"role": {"user", "admin"},
		},
		ExportColumns: []string{"id", "full_name", "role", "avatar_url", "phone", "last_active", "created_at", "updated_at"},
	},
	"questions": {
		Table:          "questions",
		DisplayName:    "Questions",
		Fields:         []string{"id", "question", "course_id", "user_id", "created_at"},
		LongTextFields: []string{"question"},
		ExportColumns:  []string{"id", "course_id", "user_id", "question", "created_at"},
	},
	"answers": {
		Table:          "answers",
		DisplayName:    "Answers",
		Fields:         []string{"id", "answer", "question_id", "user_id", "created_at"},
		LongTextFields: []string{"answer"},
		ExportColumns:  []string{"id", "question_id", "user_id", "answer", "created_at"},
	},
}

// Lookup mencari descriptor berdasarkan nama tabel.
func Lookup(table string) (Descriptor, bool) {
	d, ok := registry[strings.ToLower(table)]
	return d, ok
}

// Tables mengembalikan semua descriptor dengan urutan tetap.
func Tables() []Descriptor {
	out := make([]Descriptor, 0, len(tableOrder))
	for _, name := range tableOrder {
		out = append(out, registry[name])
	}
	return out
}
