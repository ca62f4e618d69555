package media

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	galleryRepo "randevio/database/repository/gallery"
	"randevio/models"
	"randevio/utils"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MediaService defines business logic for the gallery.
type MediaService interface {
	// Upload stores a gallery image on the media host and records it.
	Upload(businessID string, file multipart.File, caption string) (*models.GalleryImage, error)
	// List retrieves a business's gallery with resolved URLs.
	List(businessID string) ([]models.GalleryImage, error)
	// Delete removes an image from the host and the record.
	Delete(businessID, imageID string) error
}

// DefaultMediaService is the production implementation backed by Cloudinary.
type DefaultMediaService struct {
	Repo galleryRepo.GalleryRepository
}

func (s *DefaultMediaService) Upload(businessID string, file multipart.File, caption string) (*models.GalleryImage, error) {
	cld, err := utils.Cloudinary()
	if err != nil {
		return nil, fmt.Errorf("media host unavailable: %w", err)
	}

	id := uuid.New().String()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:   "gallery/" + businessID,
		PublicID: id,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}

	image := &models.GalleryImage{
		ID:         id,
		BusinessID: businessID,
		PublicID:   result.PublicID,
		URL:        result.SecureURL,
		Caption:    caption,
		CreatedAt:  time.Now(),
	}
	if err := s.Repo.Create(image); err != nil {
		return nil, fmt.Errorf("failed to record gallery image: %w", err)
	}
	utils.GetLogger().Info("gallery image uploaded",
		zap.String("businessID", businessID), zap.String("publicID", result.PublicID))
	return image, nil
}

func (s *DefaultMediaService) List(businessID string) ([]models.GalleryImage, error) {
	images, err := s.Repo.ListByBusiness(businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list gallery: %w", err)
	}

	cld, err := utils.Cloudinary()
	if err != nil {
		return nil, fmt.Errorf("media host unavailable: %w", err)
	}
	for i := range images {
		asset, err := cld.Image(images[i].PublicID)
		if err != nil {
			continue
		}
		if url, err := asset.String(); err == nil {
			images[i].URL = url
		}
	}
	return images, nil
}

func (s *DefaultMediaService) Delete(businessID, imageID string) error {
	image, err := s.Repo.GetByID(businessID, imageID)
	if err != nil {
		return fmt.Errorf("failed to fetch gallery image: %w", err)
	}
	if image == nil {
		return fmt.Errorf("gallery image %s not found", imageID)
	}

	cld, err := utils.Cloudinary()
	if err != nil {
		return fmt.Errorf("media host unavailable: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if _, err := cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: image.PublicID}); err != nil {
		return fmt.Errorf("failed to delete hosted image: %w", err)
	}

	if err := s.Repo.Delete(businessID, imageID); err != nil {
		return fmt.Errorf("failed to delete gallery record: %w", err)
	}
	return nil
}
