package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/chrisarpong/TEIN-Registration/internals/configs"
)

const (
	maxUploadBytes = 2 * 1024 * 1024
	maxPhotoWidth  = 800
	webpQuality    = 85
)

// PhotoStore uploads member ID photos to Supabase Storage. Every photo is
// re-encoded to a bounded-size WebP before upload so the bucket never holds
// raw camera output.
type PhotoStore struct {
	baseURL    string
	serviceKey string
	bucket     string
	client     *http.Client
}

func NewPhotoStore(cfg *configs.Config) *PhotoStore {
	return &PhotoStore{
		baseURL:    cfg.SupabaseURL,
		serviceKey: cfg.SupabaseServiceKey,
		bucket:     cfg.PhotoBucket,
		client:     &http.Client{Timeout: 15 * time.Second},
	}
}

// UploadMemberPhoto converts the uploaded image and PUTs it to the bucket.
// Returns the public URL, which must be known before the member row is
// written.
func (s *PhotoStore) UploadMemberPhoto(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	if fh.Size > maxUploadBytes {
		return "", fmt.Errorf("photo exceeds 2MB (%d bytes)", fh.Size)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open photo: %w", err)
	}
	defer src.Close()

	img, _, err := image.Decode(io.LimitReader(src, maxUploadBytes+1))
	if err != nil {
		return "", fmt.Errorf("decode photo: %w", err)
	}

	img = downscale(img, maxPhotoWidth)

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: webpQuality}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	filename := fmt.Sprintf("%s-%s.webp", time.Now().Format("20060102"), uuid.New().String())
	if err := s.put(ctx, filename, buf); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s",
		s.baseURL, s.bucket, url.PathEscape(filename)), nil
}

func (s *PhotoStore) put(ctx context.Context, filename string, data *bytes.Buffer) error {
	if s.baseURL == "" || s.serviceKey == "" {
		return fmt.Errorf("photo storage is not configured")
	}

	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.baseURL, s.bucket, filename)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, data)
	if err != nil {
		return fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.serviceKey)
	req.Header.Set("Content-Type", "image/webp")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("upload photo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("upload photo: status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// downscale caps the image width, preserving aspect ratio.
func downscale(img image.Image, maxWidth int) image.Image {
	b := img.Bounds()
	if b.Dx() <= maxWidth {
		return img
	}
	h := b.Dy() * maxWidth / b.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
