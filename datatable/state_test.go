package datatable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBrowserState(t *testing.T) {
	s := NewBrowserState()
	assert.Equal(t, "courses", s.Table)
	assert.Equal(t, "asc", s.SortDir)
	assert.Equal(t, 1, s.Page)
	assert.Equal(t, 10, s.PerPage)
	assert.Empty(t, s.SearchTerm)
}

func TestSelectTableResetsEverything(t *testing.T) {
	s := NewBrowserState()
	s.SetSearchInput("abc")
	s.CommitSearch()
	s.Sort("title")
	s.Sort("title") // desc
	s.GoToPage(5)

	s.SelectTable("questions")

	assert.Equal(t, "questions", s.Table)
	assert.Empty(t, s.SearchInput)
	assert.Empty(t, s.SearchTerm)
	assert.Empty(t, s.SortField)
	assert.Equal(t, "asc", s.SortDir)
	assert.Equal(t, 1, s.Page)
}

func TestSearchCommitsOnlyOnSubmit(t *testing.T) {
	s := NewBrowserState()
	s.GoToPage(4)

	// Mengetik saja belum mengubah filter aktif
	s.SetSearchInput("koperasi")
	assert.Empty(t, s.SearchTerm)
	assert.Equal(t, 4, s.Page)

	s.CommitSearch()
	assert.Equal(t, "koperasi", s.SearchTerm)
	assert.Equal(t, 1, s.Page)
}

func TestSortToggle(t *testing.T) {
	s := NewBrowserState()
	s.GoToPage(3)

	s.Sort("title")
	assert.Equal(t, "title", s.SortField)
	assert.Equal(t, "asc", s.SortDir)
	assert.Equal(t, 1, s.Page)

	// Klik kolom sama: balik arah
	s.Sort("title")
	assert.Equal(t, "desc", s.SortDir)

	s.Sort("title")
	assert.Equal(t, "asc", s.SortDir)

	// Kolom baru selalu mulai ascending
	s.Sort("title")
	s.Sort("created_at")
	assert.Equal(t, "created_at", s.SortField)
	assert.Equal(t, "asc", s.SortDir)
}

func TestSetPerPageResetsPage(t *testing.T) {
	s := NewBrowserState()
	s.GoToPage(7)

	s.SetPerPage(25)
	assert.Equal(t, 25, s.PerPage)
	assert.Equal(t, 1, s.Page)

	s.SetPerPage(0)
	assert.Equal(t, 10, s.PerPage)
}

func TestGoToPageFloorsAtOne(t *testing.T) {
	s := NewBrowserState()
	s.GoToPage(0)
	assert.Equal(t, 1, s.Page)
	s.GoToPage(-2)
	assert.Equal(t, 1, s.Page)
}

func TestStateQuery(t *testing.T) {
	s := NewBrowserState()
	s.SetSearchInput("umkm")
	s.CommitSearch()
	s.Sort("full_name")
	s.Sort("full_name")
	s.GoToPage(2)

	q := s.Query()
	assert.Equal(t, "umkm", q.Search)
	assert.Equal(t, "full_name", q.SortField)
	assert.Equal(t, "desc", q.SortDir)
	assert.Equal(t, 2, q.Page)
	assert.Equal(t, 10, q.Limit)
}
