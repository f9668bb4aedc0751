package services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// MediaService processes catalog images and stores them with resized variants
type MediaService struct {
	storage StorageService
}

// NewMediaService creates a new media service
func NewMediaService(storage StorageService) *MediaService {
	return &MediaService{storage: storage}
}

// MediaVariantConfig defines one resized rendition
type MediaVariantConfig struct {
	Name   string
	Width  int
	Height int
}

// Default variants generated for every uploaded image
var DefaultMediaVariants = []MediaVariantConfig{
	{Name: "thumbnail", Width: 150, Height: 150},
	{Name: "medium", Width: 400, Height: 300},
	{Name: "large", Width: 800, Height: 600},
}

const (
	// MaxMediaSize is the upload size limit for catalog images
	MaxMediaSize = 10 << 20 // 10 MB

	jpegQuality = 85
)

// UploadImage validates, processes and stores an image with its variants.
// Variant failures are logged and skipped; the original must succeed.
func (s *MediaService) UploadImage(ctx context.Context, reader io.Reader, filename string) (*MediaUploadResult, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}

	if int64(len(data)) > MaxMediaSize {
		return nil, fmt.Errorf("image size %d bytes exceeds maximum of %d bytes", len(data), int64(MaxMediaSize))
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	if !isSupportedImageFormat(format) {
		return nil, fmt.Errorf("unsupported image format: %s", format)
	}

	keyPrefix := generateMediaKey(filename)
	bounds := img.Bounds()

	originalData, err := encodeImage(img, format)
	if err != nil {
		return nil, fmt.Errorf("failed to process original image: %w", err)
	}

	originalKey := fmt.Sprintf("%s/original.%s", keyPrefix, format)
	originalURL, err := s.upload(ctx, originalKey, originalData, mediaContentType(format))
	if err != nil {
		return nil, fmt.Errorf("failed to upload original image: %w", err)
	}

	original := MediaMetadata{
		Key:         originalKey,
		URL:         originalURL,
		Size:        int64(len(originalData)),
		ContentType: mediaContentType(format),
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		UploadedAt:  time.Now(),
	}

	variants := make([]MediaVariant, 0, len(DefaultMediaVariants))
	for _, config := range DefaultMediaVariants {
		variant, err := s.createVariant(ctx, img, keyPrefix, config, format)
		if err != nil {
			log.Printf("failed to create variant %s: %v", config.Name, err)
			continue
		}
		variants = append(variants, *variant)
	}

	return &MediaUploadResult{
		Original: original,
		Variants: variants,
	}, nil
}

func (s *MediaService) createVariant(ctx context.Context, img image.Image, keyPrefix string, config MediaVariantConfig, format string) (*MediaVariant, error) {
	resized := imaging.Fit(img, config.Width, config.Height, imaging.Lanczos)

	data, err := encodeImage(resized, format)
	if err != nil {
		return nil, fmt.Errorf("failed to process variant image: %w", err)
	}

	variantKey := fmt.Sprintf("%s/%s.%s", keyPrefix, config.Name, format)
	variantURL, err := s.upload(ctx, variantKey, data, mediaContentType(format))
	if err != nil {
		return nil, fmt.Errorf("failed to upload variant: %w", err)
	}

	bounds := resized.Bounds()
	return &MediaVariant{
		Name:   config.Name,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Key:    variantKey,
		URL:    variantURL,
	}, nil
}

// DeleteImage deletes an image and all its variants. Individual delete
// failures are logged and skipped.
func (s *MediaService) DeleteImage(ctx context.Context, keyPrefix string, format string) error {
	originalKey := fmt.Sprintf("%s/original.%s", keyPrefix, format)
	if err := s.storage.Delete(ctx, originalKey); err != nil {
		log.Printf("failed to delete original image %s: %v", originalKey, err)
	}

	for _, config := range DefaultMediaVariants {
		variantKey := fmt.Sprintf("%s/%s.%s", keyPrefix, config.Name, format)
		if err := s.storage.Delete(ctx, variantKey); err != nil {
			log.Printf("failed to delete variant %s: %v", variantKey, err)
		}
	}

	return nil
}

func (s *MediaService) upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	return s.storage.Upload(ctx, key, bytes.NewReader(data), contentType, int64(len(data)))
}

func encodeImage(img image.Image, format string) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case "jpeg", "jpg":
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
			return nil, fmt.Errorf("failed to encode JPEG: %w", err)
		}
	case "png":
		encoder := &png.Encoder{CompressionLevel: png.DefaultCompression}
		if err := encoder.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("failed to encode PNG: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format for encoding: %s", format)
	}

	return buf.Bytes(), nil
}

// generateMediaKey builds a date-partitioned storage key with a short unique
// suffix (e.g. catalog/2026/08/31/tee-black-a1b2c3d4)
func generateMediaKey(filename string) string {
	id := uuid.New().String()

	baseName := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	baseName = strings.ToLower(strings.ReplaceAll(baseName, " ", "-"))

	timestamp := time.Now().Format("2006/01/02")

	return fmt.Sprintf("catalog/%s/%s-%s", timestamp, baseName, id[:8])
}

func isSupportedImageFormat(format string) bool {
	switch format {
	case "jpeg", "jpg", "png":
		return true
	default:
		return false
	}
}

func mediaContentType(format string) string {
	switch format {
	case "jpeg", "jpg":
		return "image/jpeg"
	case "png":
		return "image/png"
	default:
		return "application/octet-stream"
	}
}
