package utils

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"strings"

	storage "github.com/supabase-community/storage-go"
)

// Bucket Supabase Storage yang dipakai aplikasi.
const (
	BucketCourseMaterials  = "course-materials"
	BucketCourseThumbnails = "course-thumbnails"
	BucketProfilePictures  = "profile-pictures"
)

func storageClient() *storage.Client {
	supabaseURL := os.Getenv("SUPABASE_URL")
	supabaseKey := os.Getenv("SUPABASE_KEY")
	return storage.NewClient(supabaseURL+"/storage/v1", supabaseKey, nil)
}

func publicURL(bucket, objectPath string) string {
	supabaseURL := strings.TrimRight(os.Getenv("SUPABASE_URL"), "/")
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", supabaseURL, bucket, objectPath)
}

// UploadFileToStorage mengunggah file multipart (mis. materi .pdf) ke bucket
// dan mengembalikan public URL-nya.
func UploadFileToStorage(bucket, objectPath string, fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		return "", err
	}

	contentType := fileHeader.Header.Get("Content-Type")
	options := storage.FileOptions{
		ContentType: &contentType,
	}

	if _, err := storageClient().UploadFile(bucket, objectPath, &buf, options); err != nil {
		return "", err
	}

	return publicURL(bucket, objectPath), nil
}

// UploadBytesToStorage mengunggah data mentah (mis. thumbnail hasil crop).
func UploadBytesToStorage(bucket, objectPath string, data []byte, contentType string) (string, error) {
	options := storage.FileOptions{
		ContentType: &contentType,
	}

	if _, err := storageClient().UploadFile(bucket, objectPath, bytes.NewBuffer(data), options); err != nil {
		return "", err
	}

	return publicURL(bucket, objectPath), nil
}

// DeleteFileFromStorage menerima public URL yang mengandung
// "/storage/v1/object/" dan memanggil API Supabase Storage untuk menghapus
// object-nya. Dipakai best-effort: pemanggil boleh mengabaikan error.
func DeleteFileFromStorage(fileURL string) error {
	if fileURL == "" {
		return nil
	}

	supabaseURL := os.Getenv("SUPABASE_URL")
	supabaseKey := os.Getenv("SUPABASE_KEY")
	if supabaseURL == "" || supabaseKey == "" {
		return fmt.Errorf("SUPABASE_URL atau SUPABASE_KEY belum dikonfigurasi")
	}

	bucket, object, err := ParseStorageURL(fileURL)
	if err != nil {
		return err
	}

	deleteURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", strings.TrimRight(supabaseURL, "/"), bucket, object)

	req, err := http.NewRequest(http.MethodDelete, deleteURL, nil)
	if err != nil {
		return err
	}
	// Supabase minta Authorization: Bearer <key> dan header apikey
	req.Header.Set("Authorization", "Bearer "+supabaseKey)
	req.Header.Set("apikey", supabaseKey)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	// Supabase mengembalikan 200 atau 204 jika berhasil
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("gagal menghapus file storage: status=%d body=%s", resp.StatusCode, string(body))
	}
	return nil
}

// ParseStorageURL memecah public URL menjadi bucket dan path object.
func ParseStorageURL(fileURL string) (bucket, object string, err error) {
	idx := strings.Index(fileURL, "/storage/v1/object/")
	if idx == -1 {
		return "", "", fmt.Errorf("path object tidak ditemukan di URL: %s", fileURL)
	}

	rest := fileURL[idx+len("/storage/v1/object/"):]
	rest = strings.TrimPrefix(rest, "public/")

	parts := strings.SplitN(rest, "/", 2)
	if len(parts) < 2 {
		return "", "", fmt.Errorf("tidak bisa mem-parse bucket/object dari URL: %s", fileURL)
	}
	bucket = parts[0]
	object = parts[1]
	if qIdx := strings.Index(object, "?"); qIdx != -1 {
		object = object[:qIdx]
	}
	if u, err := url.PathUnescape(object); err == nil {
		object = u
	}
	return bucket, object, nil
}
