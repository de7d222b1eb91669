package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/LiteBots/VelorieMarket/domain"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser represents the database model for User (with GORM tags)
type DBUser struct {
	ID                 uint   `gorm:"primaryKey"`
	Username           string `gorm:"index;size:64"`
	Email              string `gorm:"uniqueIndex;size:255"`
	PasswordHash       string `gorm:"column:password"`
	Role               string `gorm:"index;size:64"`
	DiscordID          string `gorm:"index;size:32"`
	Avatar             string `gorm:"size:255"`
	Balance            int64
	IsVerified         bool
	VerificationStatus string `gorm:"index;size:16;default:none"`
	VerifiedUntil      *time.Time
	CreatedAt          time.Time      `gorm:"index"`
	UpdatedAt          time.Time      `gorm:"index"`
	DeletedAt          gorm.DeletedAt `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		return err
	}
	user.ID = dbUser.ID
	return nil
}

// FindByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&dbUser).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbUser).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// Update implements domain.UserRepository
func (r *UserRepositoryImpl) Update(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	return r.db.WithContext(ctx).Save(dbUser).Error
}

// List implements domain.UserRepository
func (r *UserRepositoryImpl) List(ctx context.Context) ([]*domain.User, error) {
	var dbUsers []DBUser
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&dbUsers).Error; err != nil {
		return nil, err
	}
	users := make([]*domain.User, 0, len(dbUsers))
	for i := range dbUsers {
		users = append(users, r.dbToDomain(&dbUsers[i]))
	}
	return users, nil
}

// Count implements domain.UserRepository
func (r *UserRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&DBUser{}).Count(&count).Error
	return count, err
}

// AdjustBalance implements domain.UserRepository. The delta is applied
// atomically and the new balance returned.
func (r *UserRepositoryImpl) AdjustBalance(ctx context.Context, userID uint, delta int64) (int64, error) {
	var balance int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&DBUser{}).Where("id = ?", userID).
			Update("balance", gorm.Expr("balance + ?", delta))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrUserNotFound
		}
		return tx.Model(&DBUser{}).Where("id = ?", userID).
			Select("balance").Scan(&balance).Error
	})
	return balance, err
}

// Delete implements domain.UserRepository
func (r *UserRepositoryImpl) Delete(ctx context.Context, userID uint) error {
	res := r.db.WithContext(ctx).Delete(&DBUser{}, userID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// ListByVerificationStatus implements domain.UserRepository
func (r *UserRepositoryImpl) ListByVerificationStatus(ctx context.Context, statuses ...string) ([]*domain.User, error) {
	var dbUsers []DBUser
	err := r.db.WithContext(ctx).
		Where("verification_status IN ?", statuses).
		Order("created_at desc").
		Find(&dbUsers).Error
	if err != nil {
		return nil, err
	}
	users := make([]*domain.User, 0, len(dbUsers))
	for i := range dbUsers {
		users = append(users, r.dbToDomain(&dbUsers[i]))
	}
	return users, nil
}

// SetVerification implements domain.UserRepository
func (r *UserRepositoryImpl) SetVerification(ctx context.Context, userID uint, state domain.VerificationState) error {
	res := r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", userID).
		Updates(verificationColumns(state))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// SetVerificationByEmail implements domain.UserRepository and returns the
// updated user.
func (r *UserRepositoryImpl) SetVerificationByEmail(ctx context.Context, email string, state domain.VerificationState) (*domain.User, error) {
	res := r.db.WithContext(ctx).Model(&DBUser{}).Where("email = ?", email).
		Updates(verificationColumns(state))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrUserNotFound
	}
	return r.FindByEmail(ctx, email)
}

// verificationColumns builds the update map. A plain struct update would
// skip the zero values that clearing a badge needs to write.
func verificationColumns(state domain.VerificationState) map[string]interface{} {
	return map[string]interface{}{
		"is_verified":         state.IsVerified,
		"verification_status": state.Status,
		"verified_until":      state.Until,
	}
}

// domainToDB converts domain user to database user
func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:                 user.ID,
		Username:           user.Username,
		Email:              user.Email,
		PasswordHash:       user.PasswordHash,
		Role:               user.Role,
		DiscordID:          user.DiscordID,
		Avatar:             user.Avatar,
		Balance:            user.Balance,
		IsVerified:         user.IsVerified,
		VerificationStatus: user.VerificationStatus,
		VerifiedUntil:      user.VerifiedUntil,
	}
}

// dbToDomain converts database user to domain user
func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:                 dbUser.ID,
		Username:           dbUser.Username,
		Email:              dbUser.Email,
		PasswordHash:       dbUser.PasswordHash,
		Role:               dbUser.Role,
		DiscordID:          dbUser.DiscordID,
		Avatar:             dbUser.Avatar,
		Balance:            dbUser.Balance,
		IsVerified:         dbUser.IsVerified,
		VerificationStatus: dbUser.VerificationStatus,
		VerifiedUntil:      dbUser.VerifiedUntil,
		CreatedAt:          dbUser.CreatedAt,
		UpdatedAt:          dbUser.UpdatedAt,
	}
}
