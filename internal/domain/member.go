package domain

import (
	"time"
)

// Member 表示餐厅的一名会员（顾客）
type Member struct {
	ID            int64     `json:"id"`
	FullName      string    `json:"fullName"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	LoyaltyPoints int32     `json:"loyaltyPoints"`
	CreatedAt     time.Time `json:"createdAt"`
	Version       int32     `json:"-"`
}
