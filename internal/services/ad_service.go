package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"

	"classifieds_backend/internal/dto"
	"classifieds_backend/internal/models"
	"classifieds_backend/internal/repositories"
	"classifieds_backend/internal/storage"
	"classifieds_backend/pkg/apperrors"

	"github.com/google/uuid"
)

// anonymousPoster is shown when an ad references a user record that no
// longer resolves.
const anonymousPoster = "Anonymous"

const defaultListLimit = 20

// UploadConfig bounds what the image upload path accepts.
type UploadConfig struct {
	MaxSize      int64
	AllowedTypes []string
}

type AdService interface {
	Create(ctx context.Context, form *dto.CreateAdForm, image *multipart.FileHeader) (*dto.CreateAdResponse, error)
	List(query *dto.ListAdsQuery) (*dto.ListAdsResponse, error)
	// GetAndCountView is a read with a side effect: every call increments
	// the persisted view counter before returning the ad.
	GetAndCountView(ctx context.Context, id string) (*dto.AdResponse, error)
	Deactivate(id, userID string) error
}

type AdServiceImpl struct {
	adRepo       repositories.AdRepository
	userRepo     repositories.UserRepository
	store        storage.Storage
	uploadConfig UploadConfig
}

func NewAdService(adRepo repositories.AdRepository, userRepo repositories.UserRepository, store storage.Storage, uploadConfig UploadConfig) AdService {
	return &AdServiceImpl{
		adRepo:       adRepo,
		userRepo:     userRepo,
		store:        store,
		uploadConfig: uploadConfig,
	}
}

// Create validates the enums, resolves the poster, stores the optional
// image and inserts the ad.
func (s *AdServiceImpl) Create(ctx context.Context, form *dto.CreateAdForm, image *multipart.FileHeader) (*dto.CreateAdResponse, error) {
	if !models.Category(form.Category).Valid() {
		return nil, apperrors.ErrInvalidCategory
	}
	if !models.Location(form.Location).Valid() {
		return nil, apperrors.ErrInvalidLocation
	}

	if _, err := s.userRepo.FindByID(form.UserID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	adID := uuid.NewString()

	var imageURL *string
	if image != nil {
		url, err := s.saveImage(ctx, adID, image)
		if err != nil {
			return nil, err
		}
		imageURL = &url
	}

	ad := &models.Ad{
		BaseModel:   models.BaseModel{ID: adID},
		UserID:      form.UserID,
		Title:       form.Title,
		Description: form.Description,
		Category:    models.Category(form.Category),
		Location:    models.Location(form.Location),
		Age:         form.Age,
		Phone:       form.Phone,
		Whatsapp:    form.Whatsapp,
		ImageURL:    imageURL,
		Active:      true,
		Views:       0,
	}

	if err := s.adRepo.Create(ad); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.CreateAdResponse{
		Message: "Ad created successfully",
		AdID:    adID,
	}, nil
}

// List returns active ads, newest first, annotated with poster names.
func (s *AdServiceImpl) List(query *dto.ListAdsQuery) (*dto.ListAdsResponse, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	skip := query.Skip
	if skip < 0 {
		skip = 0
	}

	ads, err := s.adRepo.FindActive(repositories.AdFilter{
		Category: query.Category,
		Location: query.Location,
		Search:   query.Search,
		Limit:    limit,
		Skip:     skip,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	annotated := make([]dto.AdResponse, 0, len(ads))
	for _, ad := range ads {
		annotated = append(annotated, dto.AdResponse{
			Ad:       ad,
			UserName: s.posterName(ad.UserID),
		})
	}

	return &dto.ListAdsResponse{Ads: annotated}, nil
}

func (s *AdServiceImpl) GetAndCountView(ctx context.Context, id string) (*dto.AdResponse, error) {
	ad, err := s.adRepo.FindActiveByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAdNotFound) {
			return nil, apperrors.ErrAdNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.adRepo.IncrementViews(id); err != nil {
		return nil, apperrors.InternalError(err)
	}
	// Reflect the increment in the response without a second read
	ad.Views++

	return &dto.AdResponse{
		Ad:       *ad,
		UserName: s.posterName(ad.UserID),
	}, nil
}

// Deactivate soft-deletes an ad on behalf of its owner.
func (s *AdServiceImpl) Deactivate(id, userID string) error {
	if err := s.adRepo.Deactivate(id, userID); err != nil {
		if apperrors.Is(err, repositories.ErrAdNotFound) {
			return apperrors.ErrAdNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AdServiceImpl) saveImage(ctx context.Context, adID string, image *multipart.FileHeader) (string, error) {
	if s.uploadConfig.MaxSize > 0 && image.Size > s.uploadConfig.MaxSize {
		return "", apperrors.ErrFileTooLarge
	}

	contentType := image.Header.Get("Content-Type")
	if !s.typeAllowed(contentType) {
		return "", apperrors.ErrInvalidFileType
	}

	file, err := image.Open()
	if err != nil {
		return "", apperrors.ErrStorage(err)
	}
	defer file.Close()

	// Prefix with the ad id to keep names unique across uploads
	name := fmt.Sprintf("%s_%s", adID, filepath.Base(image.Filename))

	if err := s.store.Save(ctx, name, file, contentType); err != nil {
		return "", apperrors.ErrStorage(err)
	}

	url, err := s.store.GetURL(ctx, name)
	if err != nil {
		return "", apperrors.ErrStorage(err)
	}
	return url, nil
}

func (s *AdServiceImpl) typeAllowed(contentType string) bool {
	if len(s.uploadConfig.AllowedTypes) == 0 {
		return true
	}
	for _, t := range s.uploadConfig.AllowedTypes {
		if t == contentType {
			return true
		}
	}
	return false
}

func (s *AdServiceImpl) posterName(userID string) string {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return anonymousPoster
	}
	return user.Name
}
