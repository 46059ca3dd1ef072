package utils

import "strings"

// SanitizeSlug membuang semua spasi dari slug masukan. Sesuai perilaku
// form kursus: slug tidak divalidasi lebih jauh.
func SanitizeSlug(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), " ", "")
}
