package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestBuildWorkbook(t *testing.T) {
	created := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	columns := []string{"id", "title", "created_at"}
	rows := []map[string]interface{}{
		{"id": "abc-123", "title": "Dasar Koperasi", "created_at": created},
		{"id": "def-456", "title": "Simpan Pinjam", "created_at": nil},
	}

	f, err := BuildWorkbook("Courses", columns, rows)
	require.NoError(t, err)

	sheets := f.GetSheetList()
	require.Equal(t, []string{"Courses"}, sheets)

	// Baris pertama: header sesuai urutan kolom
	for i, col := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		got, err := f.GetCellValue("Courses", cell)
		require.NoError(t, err)
		assert.Equal(t, col, got)
	}

	got, err := f.GetCellValue("Courses", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Dasar Koperasi", got)

	// Timestamp ditulis sebagai teks RFC3339
	got, err = f.GetCellValue("Courses", "C2")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-30T10:00:00Z", got)

	// Nilai nil jadi sel kosong
	got, err = f.GetCellValue("Courses", "C3")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestBuildWorkbookEmpty(t *testing.T) {
	f, err := BuildWorkbook("Answers", []string{"id", "answer"}, nil)
	require.NoError(t, err)

	got, err := f.GetCellValue("Answers", "A1")
	require.NoError(t, err)
	assert.Equal(t, "id", got)

	got, err = f.GetCellValue("Answers", "A2")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}
