package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/LiteBots/VelorieMarket/domain"
)

// TransactionRepositoryImpl implements domain.TransactionRepository using GORM
type TransactionRepositoryImpl struct {
	db *gorm.DB
}

// DBTransaction represents the database model for Transaction
type DBTransaction struct {
	ID          uint `gorm:"primaryKey"`
	UserID      uint `gorm:"index"`
	Amount      int64
	Type        string `gorm:"index;size:32"`
	Description string `gorm:"size:255"`
	CreatedAt   time.Time `gorm:"index"`
}

func (DBTransaction) TableName() string {
	return "transactions"
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) domain.TransactionRepository {
	return &TransactionRepositoryImpl{db: db}
}

// Create implements domain.TransactionRepository
func (r *TransactionRepositoryImpl) Create(ctx context.Context, tx *domain.Transaction) error {
	dbTx := &DBTransaction{
		UserID:      tx.UserID,
		Amount:      tx.Amount,
		Type:        tx.Type,
		Description: tx.Description,
	}
	if err := r.db.WithContext(ctx).Create(dbTx).Error; err != nil {
		return err
	}
	tx.ID = dbTx.ID
	tx.CreatedAt = dbTx.CreatedAt
	return nil
}

// ListRecent implements domain.TransactionRepository
func (r *TransactionRepositoryImpl) ListRecent(ctx context.Context, limit int) ([]*domain.Transaction, error) {
	var dbTxs []DBTransaction
	if err := r.db.WithContext(ctx).Order("created_at desc").Limit(limit).Find(&dbTxs).Error; err != nil {
		return nil, err
	}
	txs := make([]*domain.Transaction, 0, len(dbTxs))
	for i := range dbTxs {
		t := dbTxs[i]
		txs = append(txs, &domain.Transaction{
			ID:          t.ID,
			UserID:      t.UserID,
			Amount:      t.Amount,
			Type:        t.Type,
			Description: t.Description,
			CreatedAt:   t.CreatedAt,
		})
	}
	return txs, nil
}

// SumSpent implements domain.TransactionRepository: the total of all debits.
func (r *TransactionRepositoryImpl) SumSpent(ctx context.Context) (int64, error) {
	var total *int64
	err := r.db.WithContext(ctx).Model(&DBTransaction{}).
		Where("amount < 0").
		Select("COALESCE(SUM(-amount), 0)").Scan(&total).Error
	if err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}
