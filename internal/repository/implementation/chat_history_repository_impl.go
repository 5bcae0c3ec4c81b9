package implementation

import (
	"context"

	"portfolio-chat-be/internal/model"
	"portfolio-chat-be/internal/repository/contract"

	"gorm.io/gorm"
)

const defaultHistoryLimit = 50

type ChatHistoryRepositoryImpl struct {
	db *gorm.DB
}

func NewChatHistoryRepository(db *gorm.DB) contract.ChatHistoryRepository {
	return &ChatHistoryRepositoryImpl{db: db}
}

func (r *ChatHistoryRepositoryImpl) Create(ctx context.Context, entry *model.ChatHistory) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *ChatHistoryRepositoryImpl) FindByUserId(ctx context.Context, userId string, limit int) ([]*model.ChatHistory, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	var entries []*model.ChatHistory
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("created_at ASC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

func (r *ChatHistoryRepositoryImpl) FindBySessionId(ctx context.Context, sessionId string, limit int) ([]*model.ChatHistory, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	var entries []*model.ChatHistory
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionId).
		Order("created_at ASC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

func (r *ChatHistoryRepositoryImpl) DeleteByUserId(ctx context.Context, userId string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Delete(&model.ChatHistory{})
	return result.RowsAffected, result.Error
}
