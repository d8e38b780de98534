package domain

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	ErrNoMedia          = errors.New("no media selected")
	ErrUnsupportedMedia = errors.New("unsupported media type")
	ErrMediaTooLarge    = errors.New("media too large")
)

var supportedExtensions = map[string]struct{}{
	".mp4": {},
	".mov": {},
	".qt":  {},
}

type Media struct {
	Path string
	Name string
	Size int64
}

// ValidateMedia checks a selected video against the accepted containers and
// the size ceiling.
func ValidateMedia(m Media, maxBytes int64) error {
	if strings.TrimSpace(m.Path) == "" {
		return ErrNoMedia
	}
	ext := strings.ToLower(filepath.Ext(m.Path))
	if _, ok := supportedExtensions[ext]; !ok {
		return fmt.Errorf("%w: %q (use MP4 or MOV)", ErrUnsupportedMedia, ext)
	}
	if m.Size > maxBytes {
		return fmt.Errorf("%w: %d bytes exceeds %d", ErrMediaTooLarge, m.Size, maxBytes)
	}
	return nil
}
