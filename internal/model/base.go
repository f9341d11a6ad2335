package model

import (
	"time"
)

// BaseEntity 생성/수정 시각. GORM 이 Create / Save 시 채운다.
type BaseEntity struct {
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime"`
}
