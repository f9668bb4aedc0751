package services

import (
	"context"
	"io"
	"time"
)

// StorageService defines the interface for media file storage
type StorageService interface {
	// Upload stores a file and returns its public URL
	Upload(ctx context.Context, key string, reader io.Reader, contentType string, size int64) (string, error)

	// Delete removes a file from storage
	Delete(ctx context.Context, key string) error

	// GetURL returns the public URL for a file
	GetURL(key string) string

	// Exists checks whether a file exists in storage
	Exists(ctx context.Context, key string) (bool, error)
}

// MediaMetadata describes an uploaded media file
type MediaMetadata struct {
	Key         string    `json:"key"`
	URL         string    `json:"url"`
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type"`
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// MediaVariant is a resized rendition of an uploaded image
type MediaVariant struct {
	Name   string `json:"name"` // thumbnail, medium, large
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Key    string `json:"key"`
	URL    string `json:"url"`
}

// MediaUploadResult is the outcome of a media upload
type MediaUploadResult struct {
	Original MediaMetadata  `json:"original"`
	Variants []MediaVariant `json:"variants"`
}
