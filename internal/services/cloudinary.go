package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryService uploads export backups as raw assets.
type CloudinaryService struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryService(cloudName, apiKey, apiSecret string) (*CloudinaryService, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}

	return &CloudinaryService{
		cld: cld,
	}, nil
}

// UploadRaw uploads data under folder/publicID, replacing an earlier upload
// with the same id, and returns the secure URL.
func (s *CloudinaryService) UploadRaw(ctx context.Context, data []byte, folder, publicID string) (string, error) {
	uploadResult, err := s.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		Folder:       folder,
		PublicID:     publicID + ".json",
		ResourceType: "raw",
		Overwrite:    api.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to Cloudinary: %w", err)
	}
	if uploadResult.Error.Message != "" {
		return "", fmt.Errorf("cloudinary rejected upload: %s", uploadResult.Error.Message)
	}

	return uploadResult.SecureURL, nil
}
