package datatable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryNormalize(t *testing.T) {
	q := Query{Page: 0, Limit: 0, SortDir: "banana"}.Normalize()
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.Limit)
	assert.Equal(t, "asc", q.SortDir)

	q = Query{Page: -3, Limit: 25, SortDir: "desc"}.Normalize()
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 25, q.Limit)
	assert.Equal(t, "desc", q.SortDir)
}

func TestQueryOffset(t *testing.T) {
	assert.Equal(t, 0, Query{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 20, Query{Page: 3, Limit: 10}.Offset())
	assert.Equal(t, 50, Query{Page: 6, Limit: 10}.Offset())
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "koperasi", EscapeLike("koperasi"))
	assert.Equal(t, `100\%`, EscapeLike("100%"))
	assert.Equal(t, `a\_b`, EscapeLike("a_b"))
	assert.Equal(t, `c:\\temp`, EscapeLike(`c:\temp`))
	assert.Equal(t, `\\\%\_`, EscapeLike(`\%_`))
}

func TestSearchPattern(t *testing.T) {
	assert.Equal(t, "%simpan pinjam%", SearchPattern("simpan pinjam"))
	// Wildcard dari pengguna di-escape, pembungkus substring tidak
	assert.Equal(t, `%50\%%`, SearchPattern("50%"))
}

func TestOrderClause(t *testing.T) {
	courses, _ := Lookup("courses")

	q := Query{SortField: "title", SortDir: "asc"}.Normalize()
	assert.Equal(t, "title ASC", q.OrderClause(courses))

	q = Query{SortField: "title", SortDir: "desc"}.Normalize()
	assert.Equal(t, "title DESC", q.OrderClause(courses))

	// Tanpa sort aktif: default terbaru dulu
	q = Query{}.Normalize()
	assert.Equal(t, "created_at DESC", q.OrderClause(courses))

	// Kolom di luar descriptor tidak pernah sampai ke SQL
	q = Query{SortField: "title; DROP TABLE courses--", SortDir: "asc"}.Normalize()
	assert.Equal(t, "created_at DESC", q.OrderClause(courses))
}
