package datatable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(1, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 5, TotalPages(41, 10))
	assert.Equal(t, 0, TotalPages(100, 0))
}

func TestPageNumbersMiddle(t *testing.T) {
	got := PageNumbers(10, 20)
	assert.Equal(t, []interface{}{1, Ellipsis, 8, 9, 10, 11, 12, Ellipsis, 20}, got)
}

func TestPageNumbersNearStart(t *testing.T) {
	assert.Equal(t, []interface{}{1, 2, 3, 4, Ellipsis, 10}, PageNumbers(2, 10))
	assert.Equal(t, []interface{}{1, 2, 3, 4, 5, Ellipsis, 10}, PageNumbers(3, 10))
}

func TestPageNumbersNearEnd(t *testing.T) {
	assert.Equal(t, []interface{}{1, Ellipsis, 17, 18, 19, 20}, PageNumbers(19, 20))
	assert.Equal(t, []interface{}{1, Ellipsis, 16, 17, 18, 19, 20}, PageNumbers(18, 20))
}

func TestPageNumbersFewPages(t *testing.T) {
	// Semua halaman tampil tanpa elipsis
	assert.Equal(t, []interface{}{1}, PageNumbers(1, 1))
	assert.Equal(t, []interface{}{1, 2}, PageNumbers(1, 2))
	assert.Equal(t, []interface{}{1, 2, 3}, PageNumbers(2, 3))
	assert.Equal(t, []interface{}{1, 2, 3, 4, 5}, PageNumbers(3, 5))
}
