package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/LiteBots/VelorieMarket/domain"
)

// ListingRepositoryImpl implements domain.ListingRepository using GORM
type ListingRepositoryImpl struct {
	db *gorm.DB
}

// DBListing represents the database model for Listing
type DBListing struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"index"`
	Title       string `gorm:"size:255"`
	Description string
	Price       int64
	Category    string    `gorm:"index;size:64"`
	CreatedAt   time.Time `gorm:"index"`
}

func (DBListing) TableName() string {
	return "listings"
}

// NewListingRepository creates a new listing repository
func NewListingRepository(db *gorm.DB) domain.ListingRepository {
	return &ListingRepositoryImpl{db: db}
}

// Create implements domain.ListingRepository
func (r *ListingRepositoryImpl) Create(ctx context.Context, listing *domain.Listing) error {
	dbListing := &DBListing{
		UserID:      listing.UserID,
		Title:       listing.Title,
		Description: listing.Description,
		Price:       listing.Price,
		Category:    listing.Category,
	}
	if err := r.db.WithContext(ctx).Create(dbListing).Error; err != nil {
		return err
	}
	listing.ID = dbListing.ID
	listing.CreatedAt = dbListing.CreatedAt
	return nil
}

// List implements domain.ListingRepository, newest first, optionally
// filtered by category.
func (r *ListingRepositoryImpl) List(ctx context.Context, category string) ([]*domain.Listing, error) {
	q := r.db.WithContext(ctx).Order("created_at desc")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var dbListings []DBListing
	if err := q.Find(&dbListings).Error; err != nil {
		return nil, err
	}
	listings := make([]*domain.Listing, 0, len(dbListings))
	for i := range dbListings {
		l := dbListings[i]
		listings = append(listings, &domain.Listing{
			ID:          l.ID,
			UserID:      l.UserID,
			Title:       l.Title,
			Description: l.Description,
			Price:       l.Price,
			Category:    l.Category,
			CreatedAt:   l.CreatedAt,
		})
	}
	return listings, nil
}

// Count implements domain.ListingRepository
func (r *ListingRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&DBListing{}).Count(&count).Error
	return count, err
}
