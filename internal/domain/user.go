package domain

import (
	"time"
)

type Role string

const (
	RoleWaiter  Role = "服务员"
	RoleChef    Role = "厨师"
	RoleManager Role = "经理"
)

// User 表示餐厅的一个员工账号，员工的排班（班次）单独存储
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	Version      int32     `json:"-"`
}
