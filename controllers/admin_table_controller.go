package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yoanfkransyh/e-learning-koperasi-backend/config"
	"github.com/yoanfkransyh/e-learning-koperasi-backend/datatable"
	"github.com/yoanfkransyh/e-learning-koperasi-backend/services"
)

// lookupTable memvalidasi parameter :table terhadap registry descriptor.
func lookupTable(c *gin.Context) (datatable.Descriptor, bool) {
	d, ok := datatable.Lookup(c.Param("table"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tabel tidak dikenal"})
		return datatable.Descriptor{}, false
	}
	return d, true
}

// GET /api/admin/tables — daftar tabel yang bisa dikelola data browser.
func ListTables(c *gin.Context) {
	tables := make([]gin.H, 0)
	for _, d := range datatable.Tables() {
		tables = append(tables, gin.H{
			"table":        d.Table,
			"display_name": d.DisplayName,
			"fields":       d.Fields,
		})
	}
	c.JSON(http.StatusOK, gin.H{"data": tables})
}

// GET /api/admin/tables/:table — satu halaman grid: pencarian substring
// OR di semua kolom pencarian, sort (fallback created_at DESC), dan
// range halaman. Field teks panjang dipotong 50 karakter untuk grid.
func GetTableRows(c *gin.Context) {
	d, ok := lookupTable(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	query := datatable.Query{
		Search:    c.Query("search"),
		SortField: c.Query("sort"),
		SortDir:   c.DefaultQuery("dir", "asc"),
		Page:      page,
		Limit:     limit,
	}.Normalize()

	base := config.DB.Table(d.Table).Scopes(query.Scope(d))

	var total int64
	if err := base.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menghitung jumlah baris"})
		return
	}

	// Hasil kosong bukan error; grid cukup menampilkan 0 baris
	var rows []map[string]interface{}
	if err := base.
		Select(d.Fields).
		Order(query.OrderClause(d)).
		Limit(query.Limit).
		Offset(query.Offset()).
		Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil data tabel"})
		return
	}

	for _, row := range rows {
		for _, f := range d.LongTextFields {
			if s, ok := row[f].(string); ok {
				row[f] = datatable.TruncateText(s)
			}
		}
	}

	totalPages := datatable.TotalPages(total, query.Limit)

	c.JSON(http.StatusOK, gin.H{
		"data":         rows,
		"total":        total,
		"page":         query.Page,
		"limit":        query.Limit,
		"pages":        totalPages,
		"page_numbers": datatable.PageNumbers(query.Page, totalPages),
	})
}

// GET /api/admin/tables/:table/:id — satu baris utuh (tanpa pemotongan)
// untuk form edit, plus daftar field yang boleh diedit.
func GetTableRow(c *gin.Context) {
	d, ok := lookupTable(c)
	if !ok {
		return
	}

	rowID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID tidak valid"})
		return
	}

	var row map[string]interface{}
	if err := config.DB.Table(d.Table).
		Select(d.Fields).
		Where("id = ?", rowID).
		Take(&row).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Baris tidak ditemukan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":               row,
		"editable_fields":    d.EditableFields(),
		"constrained_fields": d.ConstrainedFields,
	})
}

// PUT /api/admin/tables/:table/:id — update parsial: hanya field yang
// boleh diedit yang dipakai; id dan created_at tidak pernah tersentuh.
func UpdateTableRow(c *gin.Context) {
	d, ok := lookupTable(c)
	if !ok {
		return
	}

	rowID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID tidak valid"})
		return
	}

	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data tidak valid"})
		return
	}

	updates := make(map[string]interface{})
	for _, f := range d.EditableFields() {
		value, present := body[f]
		if !present {
			continue
		}

		// Field dengan pilihan tertutup (mis. role) diperiksa nilainya
		if options, constrained := d.ConstrainedFields[f]; constrained {
			s, isString := value.(string)
			if !isString || !contains(options, s) {
				c.JSON(http.StatusBadRequest, gin.H{
					"error": fmt.Sprintf("Nilai %s harus salah satu dari %v", f, options),
				})
				return
			}
		}

		updates[f] = value
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tidak ada field yang bisa diperbarui"})
		return
	}

	res := config.DB.Table(d.Table).Where("id = ?", rowID).Updates(updates)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal memperbarui data: " + res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Baris tidak ditemukan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Data berhasil diperbarui."})
}

// DELETE /api/admin/tables/:table/:id — hapus satu baris. Konfirmasi
// ada di sisi client; endpoint ini hanya dipanggil setelah pengguna
// menekan tombol Hapus.
func DeleteTableRow(c *gin.Context) {
	d, ok := lookupTable(c)
	if !ok {
		return
	}

	rowID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID tidak valid"})
		return
	}

	// Nama tabel berasal dari registry (whitelist), bukan dari input
	res := config.DB.Exec("DELETE FROM "+d.Table+" WHERE id = ?", rowID)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menghapus data: " + res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Baris tidak ditemukan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Data berhasil dihapus."})
}

// GET /api/admin/tables/:table/export — unduh SELURUH isi tabel
// (mengabaikan pencarian/sort/halaman yang sedang aktif) sebagai satu
// workbook xlsx bernama {DisplayName}_{YYYY-MM-DD}.xlsx.
func ExportTable(c *gin.Context) {
	d, ok := lookupTable(c)
	if !ok {
		return
	}

	var rows []map[string]interface{}
	if err := config.DB.Table(d.Table).
		Select(d.ExportColumns).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil data untuk export"})
		return
	}

	f, err := services.BuildWorkbook(d.DisplayName, d.ExportColumns, rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menyusun file export: " + err.Error()})
		return
	}

	filename := d.ExportFilename(time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menulis file export"})
		return
	}
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
