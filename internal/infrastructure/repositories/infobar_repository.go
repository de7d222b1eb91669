package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/LiteBots/VelorieMarket/domain"
)

// InfoBarRepositoryImpl implements domain.InfoBarRepository using GORM
type InfoBarRepositoryImpl struct {
	db *gorm.DB
}

// DBInfoBar represents the database model for InfoBar, one row per page.
type DBInfoBar struct {
	ID        uint   `gorm:"primaryKey"`
	Page      string `gorm:"uniqueIndex;size:32"`
	IsActive  bool
	Text      string `gorm:"size:255"`
	BgColor   string `gorm:"size:16"`
	TextColor string `gorm:"size:16"`
	LinkURL   string `gorm:"size:255"`
	LinkText  string `gorm:"size:64"`
}

func (DBInfoBar) TableName() string {
	return "info_bars"
}

// NewInfoBarRepository creates a new info bar repository
func NewInfoBarRepository(db *gorm.DB) domain.InfoBarRepository {
	return &InfoBarRepositoryImpl{db: db}
}

// Get implements domain.InfoBarRepository. A page without a bar gets an
// inactive default created on first read.
func (r *InfoBarRepositoryImpl) Get(ctx context.Context, page string) (*domain.InfoBar, error) {
	var bar DBInfoBar
	err := r.db.WithContext(ctx).Where("page = ?", page).First(&bar).Error
	if err == gorm.ErrRecordNotFound {
		bar = defaultBar(page)
		if err := r.db.WithContext(ctx).Create(&bar).Error; err != nil {
			return nil, err
		}
		return r.dbToDomain(&bar), nil
	}
	if err != nil {
		return nil, err
	}
	return r.dbToDomain(&bar), nil
}

// Upsert implements domain.InfoBarRepository, keyed on the page.
func (r *InfoBarRepositoryImpl) Upsert(ctx context.Context, bar *domain.InfoBar) error {
	dbBar := &DBInfoBar{
		Page:      bar.Page,
		IsActive:  bar.IsActive,
		Text:      bar.Text,
		BgColor:   bar.BgColor,
		TextColor: bar.TextColor,
		LinkURL:   bar.LinkURL,
		LinkText:  bar.LinkText,
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "page"}},
		DoUpdates: clause.AssignmentColumns([]string{"is_active", "text", "bg_color", "text_color", "link_url", "link_text"}),
	}).Create(dbBar).Error
	if err != nil {
		return err
	}
	bar.ID = dbBar.ID
	return nil
}

func defaultBar(page string) DBInfoBar {
	text := "Welcome to Velorie!"
	if page == "market" {
		text = "Welcome to the Velorie market!"
	}
	return DBInfoBar{
		Page:      page,
		IsActive:  false,
		Text:      text,
		BgColor:   "#ff0354",
		TextColor: "#ffffff",
	}
}

func (r *InfoBarRepositoryImpl) dbToDomain(bar *DBInfoBar) *domain.InfoBar {
	return &domain.InfoBar{
		ID:        bar.ID,
		Page:      bar.Page,
		IsActive:  bar.IsActive,
		Text:      bar.Text,
		BgColor:   bar.BgColor,
		TextColor: bar.TextColor,
		LinkURL:   bar.LinkURL,
		LinkText:  bar.LinkText,
	}
}
