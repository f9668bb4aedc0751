package models

import (
	"errors"
	"strings"
	"time"
)

// SocialLinks holds the optional social media links for an artist
type SocialLinks struct {
	Instagram string `json:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
}

// HasInstagram reports whether an Instagram link is set
func (s SocialLinks) HasInstagram() bool { return s.Instagram != "" }

// HasTwitter reports whether a Twitter link is set
func (s SocialLinks) HasTwitter() bool { return s.Twitter != "" }

// HasFacebook reports whether a Facebook link is set
func (s SocialLinks) HasFacebook() bool { return s.Facebook != "" }

// Artist represents a featured artist profile
type Artist struct {
	ID          string      `json:"id" db:"id"`
	Name        string      `json:"name" db:"name"`
	Bio         string      `json:"bio" db:"bio"`
	Image       *string     `json:"image" db:"image"`
	Gallery     []string    `json:"gallery" db:"gallery"`
	SocialLinks SocialLinks `json:"social_links" db:"social_links"`
	Genre       *string     `json:"genre" db:"genre"`
	Featured    bool        `json:"featured" db:"featured"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at" db:"updated_at"`
}

// ArtistCreateRequest represents the data needed to create a new artist
type ArtistCreateRequest struct {
	Name        string      `json:"name"`
	Bio         string      `json:"bio"`
	Image       *string     `json:"image"`
	Gallery     []string    `json:"gallery"`
	SocialLinks SocialLinks `json:"social_links"`
	Genre       *string     `json:"genre"`
	Featured    bool        `json:"featured"`
}

// ArtistUpdateRequest represents the data that can be updated for an artist
type ArtistUpdateRequest struct {
	Name        string      `json:"name"`
	Bio         string      `json:"bio"`
	Image       *string     `json:"image"`
	Gallery     []string    `json:"gallery"`
	SocialLinks SocialLinks `json:"social_links"`
	Genre       *string     `json:"genre"`
	Featured    bool        `json:"featured"`
}

// Validate validates artist creation data
func (req *ArtistCreateRequest) Validate() error {
	return validateArtistName(req.Name)
}

// Validate validates artist update data
func (req *ArtistUpdateRequest) Validate() error {
	return validateArtistName(req.Name)
}

// HasImage reports whether a profile image is set
func (a *Artist) HasImage() bool {
	return a.Image != nil && *a.Image != ""
}

// HasGenre reports whether a genre is set
func (a *Artist) HasGenre() bool {
	return a.Genre != nil && *a.Genre != ""
}

func validateArtistName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("artist name is required")
	}
	if len(name) > 255 {
		return errors.New("artist name must be less than 255 characters")
	}
	return nil
}
