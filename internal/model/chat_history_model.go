package model

import (
	"time"

	"github.com/google/uuid"
)

type ChatHistory struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      string    `gorm:"type:varchar(64);index"`
	SessionId   string    `gorm:"type:varchar(64);index"`
	Message     string    `gorm:"type:text;not null"`
	Response    string    `gorm:"type:text;not null"`
	MessageType string    `gorm:"type:varchar(32);default:'text'"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (ChatHistory) TableName() string {
	return "chat_history"
}
