package services

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gambar uji: kiri merah, kanan biru, supaya hasil crop bisa diperiksa
func testImagePNG(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x < w/2 {
				img.Set(x, y, color.RGBA{R: 255, A: 255})
			} else {
				img.Set(x, y, color.RGBA{B: 255, A: 255})
			}
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodeJPEG(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := jpeg.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img
}

func TestCropThumbnailDimensions(t *testing.T) {
	src := testImagePNG(t, 800, 600)

	out, err := CropThumbnail(bytes.NewReader(src), FullCrop())
	require.NoError(t, err)

	img := decodeJPEG(t, out)
	assert.Equal(t, ThumbnailWidth, img.Bounds().Dx())
	assert.Equal(t, ThumbnailHeight, img.Bounds().Dy())
}

func TestCropAvatarDimensions(t *testing.T) {
	src := testImagePNG(t, 300, 500)

	out, err := CropAvatar(bytes.NewReader(src), FullCrop())
	require.NoError(t, err)

	img := decodeJPEG(t, out)
	assert.Equal(t, AvatarSize, img.Bounds().Dx())
	assert.Equal(t, AvatarSize, img.Bounds().Dy())
}

func TestCropImageUsesRect(t *testing.T) {
	src := testImagePNG(t, 200, 200)

	// Ambil hanya separuh kiri (merah)
	out, err := CropImage(bytes.NewReader(src), CropRect{X: 0, Y: 0, Width: 0.5, Height: 1}, 100, 100)
	require.NoError(t, err)

	img := decodeJPEG(t, out)
	r, _, b, _ := img.At(50, 50).RGBA()
	assert.Greater(t, r, b, "hasil crop kiri seharusnya dominan merah")
}

func TestCropImageInvalidRect(t *testing.T) {
	src := testImagePNG(t, 100, 100)

	_, err := CropImage(bytes.NewReader(src), CropRect{X: 0.5, Y: 0.5, Width: 0, Height: 0}, 100, 100)
	assert.ErrorIs(t, err, ErrInvalidCrop)

	// Area di luar gambar ter-clamp sampai kosong
	_, err = CropImage(bytes.NewReader(testImagePNG(t, 100, 100)), CropRect{X: 1, Y: 1, Width: 0.5, Height: 0.5}, 100, 100)
	assert.ErrorIs(t, err, ErrInvalidCrop)
}

func TestCropImageRejectsNonImage(t *testing.T) {
	_, err := CropImage(strings.NewReader("bukan gambar"), FullCrop(), 100, 100)
	assert.Error(t, err)
}

func TestCropRectClamp(t *testing.T) {
	r := CropRect{X: -0.2, Y: 0.5, Width: 2, Height: 0.8}.Clamp()
	assert.Equal(t, 0.0, r.X)
	assert.Equal(t, 1.0, r.Width)
	assert.Equal(t, 0.5, r.Y)
	assert.InDelta(t, 0.5, r.Height, 1e-9)

	// Area yang sudah valid tidak berubah
	valid := CropRect{X: 0.1, Y: 0.2, Width: 0.3, Height: 0.4}
	assert.Equal(t, valid, valid.Clamp())
}

func TestCropRectValid(t *testing.T) {
	assert.True(t, FullCrop().Valid())
	assert.False(t, CropRect{Width: 0, Height: 1}.Valid())
	assert.False(t, CropRect{Width: 1, Height: -0.5}.Valid())
}
