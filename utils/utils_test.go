package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeSlug(t *testing.T) {
	assert.Equal(t, "dasar-koperasi", SanitizeSlug("dasar-koperasi"))
	assert.Equal(t, "dasarkoperasi", SanitizeSlug("dasar koperasi"))
	assert.Equal(t, "abc", SanitizeSlug("  a b c  "))
	assert.Equal(t, "", SanitizeSlug("   "))
}

func TestRandomToken(t *testing.T) {
	tok1, err := RandomToken()
	require.NoError(t, err)
	assert.Len(t, tok1, 64)

	tok2, err := RandomToken()
	require.NoError(t, err)
	assert.NotEqual(t, tok1, tok2)
}

func TestParseStorageURL(t *testing.T) {
	bucket, object, err := ParseStorageURL(
		"https://proj.supabase.co/storage/v1/object/public/course-thumbnails/dasar-koperasi-thumbnail-1756500000.jpg")
	require.NoError(t, err)
	assert.Equal(t, "course-thumbnails", bucket)
	assert.Equal(t, "dasar-koperasi-thumbnail-1756500000.jpg", object)

	// URL tanpa segmen public/
	bucket, object, err = ParseStorageURL(
		"https://proj.supabase.co/storage/v1/object/course-materials/materi.pdf")
	require.NoError(t, err)
	assert.Equal(t, "course-materials", bucket)
	assert.Equal(t, "materi.pdf", object)

	// Query string dibuang
	_, object, err = ParseStorageURL(
		"https://proj.supabase.co/storage/v1/object/public/profile-pictures/u-1.jpg?t=123")
	require.NoError(t, err)
	assert.Equal(t, "u-1.jpg", object)

	_, _, err = ParseStorageURL("https://example.com/bukan/storage")
	assert.Error(t, err)

	_, _, err = ParseStorageURL("https://proj.supabase.co/storage/v1/object/public/cuma-bucket")
	assert.Error(t, err)
}
