package model

import (
	"time"
)

// FriendshipStatus 好友关系状态
type FriendshipStatus string

const (
	FriendshipStatusPending  FriendshipStatus = "PENDING"
	FriendshipStatusAccepted FriendshipStatus = "ACCEPTED"
	FriendshipStatusDeclined FriendshipStatus = "DECLINED"
)

// Valid 判断状态值是否合法
func (s FriendshipStatus) Valid() bool {
	switch s {
	case FriendshipStatusPending, FriendshipStatusAccepted, FriendshipStatusDeclined:
		return true
	}
	return false
}

// Friendship 好友关系
// User1UID 为发起方，User2UID 为接收方
// 状态机：PENDING -> ACCEPTED/DECLINED，只有接收方可以响应
// 任意一方都可以删除关系（撤回请求或解除好友）

type Friendship struct {
	ID          uint             `gorm:"primaryKey"`
	User1UID    string           `gorm:"type:varchar(128);not null;index;comment:发起方uid"`
	User2UID    string           `gorm:"type:varchar(128);not null;index;comment:接收方uid"`
	Status      FriendshipStatus `gorm:"type:varchar(32);not null;default:'PENDING';comment:关系状态"`
	RequestedBy string           `gorm:"type:varchar(128);not null;comment:请求发起者uid"`
	RequestedAt time.Time        `gorm:"comment:请求时间"`
	RespondedAt *time.Time       `gorm:"comment:响应时间"`
}

func (Friendship) TableName() string { return "friendship" }
