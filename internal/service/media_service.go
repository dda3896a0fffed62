package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

var ErrMediaUnavailable = errors.New("media cloud is not configured")

// MediaService uploads hero images to Cloudinary. With no CLOUDINARY_URL the
// service stays constructed but disabled, and dependent features degrade
// instead of crashing.
type MediaService struct {
	cld *cloudinary.Cloudinary
}

func NewMediaService(cloudinaryURL string) (*MediaService, error) {
	if cloudinaryURL == "" {
		return &MediaService{}, nil
	}
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}
	return &MediaService{cld: cld}, nil
}

// Available reports whether the media cloud is configured.
func (s *MediaService) Available() bool {
	return s != nil && s.cld != nil
}

// UploadHeroImage stores the image under the heroes folder and returns its
// delivery URL.
func (s *MediaService) UploadHeroImage(ctx context.Context, heroID string, file io.Reader) (string, error) {
	if !s.Available() {
		return "", ErrMediaUnavailable
	}

	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID: heroID,
		Folder:   "heroes",
	})
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	return result.SecureURL, nil
}
