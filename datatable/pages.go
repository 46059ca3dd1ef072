package datatable

import "math"

// Ellipsis: penanda gap halaman yang dilipat.
const Ellipsis = "..."

// TotalPages = ceil(total / perPage).
func TotalPages(total int64, perPage int) int {
	if perPage <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(perPage)))
}

// PageNumbers menyusun deret nomor halaman untuk kontrol pagination:
// halaman pertama dan terakhir selalu tampil, maksimal 2 halaman di kiri
// dan kanan halaman aktif, gap lebih dari satu halaman dilipat jadi satu
// elipsis. Contoh halaman 10 dari 20: 1 ... 8 9 10 11 12 ... 20.
func PageNumbers(current, totalPages int) []interface{} {
	const delta = 2

	var middle []int
	for i := max(2, current-delta); i <= min(totalPages-1, current+delta); i++ {
		middle = append(middle, i)
	}

	pages := make([]interface{}, 0, len(middle)+4)
	if current-delta > 2 {
		pages = append(pages, 1, Ellipsis)
	} else {
		pages = append(pages, 1)
	}

	for _, p := range middle {
		pages = append(pages, p)
	}

	if current+delta < totalPages-1 {
		pages = append(pages, Ellipsis, totalPages)
	} else if totalPages > 1 {
		pages = append(pages, totalPages)
	}

	return pages
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
