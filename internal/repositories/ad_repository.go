package repositories

import (
	"errors"
	"strings"

	"classifieds_backend/internal/models"

	"gorm.io/gorm"
)

var ErrAdNotFound = errors.New("ad not found")

// AdFilter narrows a listing query. Empty strings and the "All" sentinel
// mean "no filter".
type AdFilter struct {
	Category string
	Location string
	Search   string
	Limit    int
	Skip     int
}

type AdRepository interface {
	Create(ad *models.Ad) error
	FindActive(filter AdFilter) ([]models.Ad, error)
	FindActiveByID(id string) (*models.Ad, error)
	IncrementViews(id string) error
	Deactivate(id, userID string) error
}

type AdRepositoryImpl struct {
	db *gorm.DB
}

func NewAdRepository(db *gorm.DB) AdRepository {
	return &AdRepositoryImpl{db: db}
}

func (r *AdRepositoryImpl) Create(ad *models.Ad) error {
	return r.db.Create(ad).Error
}

// FindActive lists active ads newest first, with optional equality filters
// and a case-insensitive substring search over title or description.
func (r *AdRepositoryImpl) FindActive(filter AdFilter) ([]models.Ad, error) {
	q := r.db.Where("active = ?", true)

	if filter.Category != "" && filter.Category != models.FilterAll {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Location != "" && filter.Location != models.FilterAll {
		q = q.Where("location = ?", filter.Location)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		q = q.Where("(LOWER(title) LIKE ? OR LOWER(description) LIKE ?)", pattern, pattern)
	}

	var ads []models.Ad
	err := q.Order("created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Skip).
		Find(&ads).Error
	if err != nil {
		return nil, err
	}
	return ads, nil
}

func (r *AdRepositoryImpl) FindActiveByID(id string) (*models.Ad, error) {
	var ad models.Ad
	err := r.db.First(&ad, "id = ? AND active = ?", id, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdNotFound
		}
		return nil, err
	}
	return &ad, nil
}

// IncrementViews bumps the view counter in a single statement so concurrent
// fetches never lose an increment.
func (r *AdRepositoryImpl) IncrementViews(id string) error {
	result := r.db.Model(&models.Ad{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAdNotFound
	}
	return nil
}

// Deactivate soft-deletes an ad. Scoped to the owner so only the poster can
// take an ad down.
func (r *AdRepositoryImpl) Deactivate(id, userID string) error {
	result := r.db.Model(&models.Ad{}).
		Where("id = ? AND user_id = ? AND active = ?", id, userID, true).
		Update("active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAdNotFound
	}
	return nil
}
