package oss

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	alioss "github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	xdraw "golang.org/x/image/draw"
)

const maxUploadSize = int64(5 * 1024 * 1024)

/* =======================================================================
   OSS client (object storage for thumbnails, media, student documents)
======================================================================= */

type OSSService struct {
	Bucket   *alioss.Bucket
	BaseURL  string // public base, e.g. https://<bucket>.<endpoint>
	Prefix   string // key prefix per deployment, e.g. "campushub/prod"
	endpoint string
}

func NewOSSServiceFromEnv(prefix string) (*OSSService, error) {
	endpoint := strings.TrimSpace(os.Getenv("OSS_ENDPOINT"))
	keyID := strings.TrimSpace(os.Getenv("OSS_ACCESS_KEY_ID"))
	keySecret := strings.TrimSpace(os.Getenv("OSS_ACCESS_KEY_SECRET"))
	bucketName := strings.TrimSpace(os.Getenv("OSS_BUCKET"))
	if endpoint == "" || keyID == "" || keySecret == "" || bucketName == "" {
		return nil, fmt.Errorf("OSS env incomplete (OSS_ENDPOINT/OSS_ACCESS_KEY_ID/OSS_ACCESS_KEY_SECRET/OSS_BUCKET)")
	}

	client, err := alioss.New(endpoint, keyID, keySecret)
	if err != nil {
		return nil, err
	}
	bucket, err := client.Bucket(bucketName)
	if err != nil {
		return nil, err
	}

	base := strings.TrimSpace(os.Getenv("OSS_PUBLIC_BASE_URL"))
	if base == "" {
		base = fmt.Sprintf("https://%s.%s", bucketName, strings.TrimPrefix(endpoint, "https://"))
	}

	return &OSSService{
		Bucket:   bucket,
		BaseURL:  strings.TrimRight(base, "/"),
		Prefix:   strings.Trim(prefix, "/"),
		endpoint: endpoint,
	}, nil
}

func (s *OSSService) PublicURL(key string) string {
	return s.BaseURL + "/" + key
}

// KeyFromPublicURL reverses PublicURL; used when deleting by stored URL.
func (s *OSSService) KeyFromPublicURL(publicURL string) (string, error) {
	u, err := url.Parse(publicURL)
	if err != nil {
		return "", err
	}
	return strings.TrimPrefix(u.Path, "/"), nil
}

func (s *OSSService) objectKey(dir, filename string) string {
	parts := []string{}
	if s.Prefix != "" {
		parts = append(parts, s.Prefix)
	}
	if dir != "" {
		parts = append(parts, strings.Trim(dir, "/"))
	}
	parts = append(parts, filename)
	return strings.Join(parts, "/")
}

/* =======================================================================
   Uploads
======================================================================= */

// UploadAsWebP re-encodes an uploaded image (jpeg/png/webp) to WebP and
// stores it under dir. Returns the public URL and the object key.
func (s *OSSService) UploadAsWebP(ctx context.Context, fh *multipart.FileHeader, dir string) (string, string, error) {
	if fh == nil {
		return "", "", fmt.Errorf("file missing")
	}
	if fh.Size > maxUploadSize {
		return "", "", fmt.Errorf("file exceeds %d bytes", maxUploadSize)
	}
	f, err := fh.Open()
	if err != nil {
		return "", "", err
	}
	defer f.Close()

	data, err := ConvertToWebP(f, fh.Filename)
	if err != nil {
		return "", "", err
	}

	key := s.objectKey(dir, uniqueFilename(fh.Filename, ".webp"))
	if err := s.Bucket.PutObject(key, bytes.NewReader(data),
		alioss.ContentType("image/webp")); err != nil {
		return "", "", err
	}
	return s.PublicURL(key), key, nil
}

// UploadRaw stores the file as-is (videos, PDFs, spreadsheets).
func (s *OSSService) UploadRaw(ctx context.Context, fh *multipart.FileHeader, dir string) (string, string, error) {
	if fh == nil {
		return "", "", fmt.Errorf("file missing")
	}
	f, err := fh.Open()
	if err != nil {
		return "", "", err
	}
	defer f.Close()

	ct := fh.Header.Get("Content-Type")
	if ct == "" {
		ct = "application/octet-stream"
	}
	key := s.objectKey(dir, uniqueFilename(fh.Filename, ""))
	if err := s.Bucket.PutObject(key, f, alioss.ContentType(ct)); err != nil {
		return "", "", err
	}
	return s.PublicURL(key), key, nil
}

func (s *OSSService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	key, err := s.KeyFromPublicURL(publicURL)
	if err != nil {
		return err
	}
	return s.Bucket.DeleteObject(key)
}

/* =======================================================================
   Image decode + WebP encode
======================================================================= */

func ConvertToWebP(file multipart.File, filename string) ([]byte, error) {
	all, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	img, err := decodeImage(all, filename)
	if err != nil {
		return nil, err
	}
	img = downscaleIfNeeded(img, 1600, 1600)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: 80}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeImage(all []byte, filename string) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	switch {
	case strings.Contains(ct, "jpeg"):
		return jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		return png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		return webp.Decode(bytes.NewReader(all))
	}

	// fallback by extension
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return jpeg.Decode(bytes.NewReader(all))
	case ".png":
		return png.Decode(bytes.NewReader(all))
	case ".webp":
		return webp.Decode(bytes.NewReader(all))
	}
	return nil, fmt.Errorf("unsupported image format: %s", ct)
}

// downscaleIfNeeded keeps aspect ratio; CatmullRom for quality.
func downscaleIfNeeded(src image.Image, maxW, maxH int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if (maxW <= 0 || w <= maxW) && (maxH <= 0 || h <= maxH) {
		return src
	}
	scale := 1.0
	if maxW > 0 {
		scale = math.Min(scale, float64(maxW)/float64(w))
	}
	if maxH > 0 {
		scale = math.Min(scale, float64(maxH)/float64(h))
	}
	nw := int(math.Round(float64(w) * scale))
	nh := int(math.Round(float64(h) * scale))
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)
	return dst
}

/* =======================================================================
   Filenames
======================================================================= */

var unsafeFilenameRe = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(filename string) string {
	return unsafeFilenameRe.ReplaceAllString(filename, "_")
}

func uniqueFilename(original, forceExt string) string {
	base := sanitizeFilename(strings.TrimSuffix(original, filepath.Ext(original)))
	ext := forceExt
	if ext == "" {
		ext = strings.ToLower(filepath.Ext(original))
	}
	return fmt.Sprintf("%s-%s-%s%s", time.Now().Format("20060102"), uuid.New().String(), base, ext)
}
