package services

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	"io"

	// daftarkan codec untuk image.Decode
	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"
)

// Ukuran raster hasil crop.
const (
	ThumbnailWidth  = 400
	ThumbnailHeight = 225
	AvatarSize      = 256
	JPEGQuality     = 90
)

var ErrInvalidCrop = errors.New("area crop tidak valid")

// CropRect: area crop sebagai persegi ternormalisasi (0..1) terhadap
// gambar sumber.
type CropRect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Clamp memaksa area masuk ke dalam [0,1] tanpa mengubah area yang
// sudah valid.
func (r CropRect) Clamp() CropRect {
	r.X = clamp01(r.X)
	r.Y = clamp01(r.Y)
	if r.Width < 0 {
		r.Width = 0
	}
	if r.Height < 0 {
		r.Height = 0
	}
	if r.X+r.Width > 1 {
		r.Width = 1 - r.X
	}
	if r.Y+r.Height > 1 {
		r.Height = 1 - r.Y
	}
	return r
}

func (r CropRect) Valid() bool {
	return r.Width > 0 && r.Height > 0
}

// FullCrop: seluruh gambar (dipakai jika client tidak mengirim area).
func FullCrop() CropRect {
	return CropRect{X: 0, Y: 0, Width: 1, Height: 1}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// CropImage memotong area rect dari gambar sumber lalu me-resample ke
// raster targetW x targetH (Catmull-Rom) dan meng-encode JPEG
// berkualitas 90. Padanan langkah canvas drawImage + toBlob(0.9) di
// front-end.
func CropImage(src io.Reader, rect CropRect, targetW, targetH int) ([]byte, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return nil, err
	}

	rect = rect.Clamp()
	if !rect.Valid() {
		return nil, ErrInvalidCrop
	}

	b := img.Bounds()
	srcRect := image.Rect(
		b.Min.X+int(rect.X*float64(b.Dx())),
		b.Min.Y+int(rect.Y*float64(b.Dy())),
		b.Min.X+int((rect.X+rect.Width)*float64(b.Dx())),
		b.Min.Y+int((rect.Y+rect.Height)*float64(b.Dy())),
	)
	if srcRect.Dx() < 1 || srcRect.Dy() < 1 {
		return nil, ErrInvalidCrop
	}

	dst := image.NewRGBA(image.Rect(0, 0, targetW, targetH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, srcRect, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CropThumbnail menghasilkan thumbnail kursus 400x225 (rasio 16:9).
func CropThumbnail(src io.Reader, rect CropRect) ([]byte, error) {
	return CropImage(src, rect, ThumbnailWidth, ThumbnailHeight)
}

// CropAvatar menghasilkan foto profil persegi 256x256.
func CropAvatar(src io.Reader, rect CropRect) ([]byte, error) {
	return CropImage(src, rect, AvatarSize, AvatarSize)
}
