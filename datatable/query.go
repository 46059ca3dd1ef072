package datatable

import (
	"strings"

	"gorm.io/gorm"
)

// Query: satu permintaan halaman data yang sudah dinormalisasi.
type Query struct {
	Search    string
	SortField string
	SortDir   string // "asc" | "desc"
	Page      int
	Limit     int
}

// Normalize memastikan nilai halaman dan limit masuk akal
// (page minimal 1, limit default 10).
func (q Query) Normalize() Query {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit <= 0 {
		q.Limit = 10
	}
	if q.SortDir != "desc" {
		q.SortDir = "asc"
	}
	return q
}

func (q Query) Offset() int {
	return (q.Page - 1) * q.Limit
}

// EscapeLike meng-escape karakter khusus pola LIKE/ILIKE (%, _, \)
// supaya teks pencarian pengguna selalu dicocokkan apa adanya.
func EscapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

// SearchPattern membungkus teks pencarian menjadi pola substring.
func SearchPattern(search string) string {
	return "%" + EscapeLike(search) + "%"
}

// Scope menerapkan filter pencarian: substring case-insensitive yang
// digabung OR di semua kolom pencarian. Teks dikirim sebagai bind
// parameter, bukan disisipkan ke SQL.
func (q Query) Scope(d Descriptor) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if q.Search == "" {
			return db
		}

		fields := d.SearchableFields()
		if len(fields) == 0 {
			return db
		}

		pattern := SearchPattern(q.Search)
		conds := make([]string, 0, len(fields))
		args := make([]interface{}, 0, len(fields))
		for _, f := range fields {
			// Kolom non-teks (uuid) di-cast dulu supaya ILIKE jalan
			conds = append(conds, f+"::text ILIKE ?")
			args = append(args, pattern)
		}

		return db.Where(strings.Join(conds, " OR "), args...)
	}
}

// OrderClause: urutkan sesuai sort aktif, fallback created_at DESC.
// Nama kolom diperiksa terhadap descriptor (whitelist) supaya tidak ada
// injeksi lewat parameter sort.
func (q Query) OrderClause(d Descriptor) string {
	if q.SortField != "" && d.HasField(q.SortField) {
		dir := "ASC"
		if q.SortDir == "desc" {
			dir = "DESC"
		}
		return q.SortField + " " + dir
	}
	return "created_at DESC"
}
