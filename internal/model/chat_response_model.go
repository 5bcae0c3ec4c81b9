package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

type ChatResponseCache struct {
	Id        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Query     string          `gorm:"type:text;not null"`
	Response  string          `gorm:"type:text;not null"` // serialized {type,data} envelope
	Category  string          `gorm:"type:varchar(32);index"`
	Intent    string          `gorm:"type:varchar(32)"`
	Embedding pgvector.Vector `gorm:"type:vector(1536)"` // text-embedding-3-small uses 1536 dimensions
	CreatedAt time.Time       `gorm:"autoCreateTime"`
}

func (ChatResponseCache) TableName() string {
	return "chat_responses"
}
