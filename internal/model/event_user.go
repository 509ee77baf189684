package model

import (
	"time"
)

// EventUserStatus 活动成员状态
type EventUserStatus string

const (
	EventUserStatusPending  EventUserStatus = "PENDING"
	EventUserStatusAccepted EventUserStatus = "ACCEPTED"
	EventUserStatusDeclined EventUserStatus = "DECLINED"
	EventUserStatusCreator  EventUserStatus = "CREATOR"
)

// Valid 判断状态值是否合法
func (s EventUserStatus) Valid() bool {
	switch s {
	case EventUserStatusPending, EventUserStatusAccepted, EventUserStatusDeclined, EventUserStatusCreator:
		return true
	}
	return false
}

// EventUserRole 活动成员角色
type EventUserRole string

const (
	EventUserRoleCreator  EventUserRole = "CREATOR"
	EventUserRoleAttendee EventUserRole = "ATTENDEE"
)

// EventUser 活动-用户关联（邀请/参与记录）
// 约定每个 (EventID, UserUID) 只有一行，服务层先查后写，无唯一约束兜底
// RespondedAt 在用户响应前为空

type EventUser struct {
	ID          uint            `gorm:"primaryKey"`
	EventID     uint            `gorm:"not null;index;comment:活动ID"`
	UserUID     string          `gorm:"type:varchar(128);not null;index;comment:用户uid"`
	Status      EventUserStatus `gorm:"type:varchar(32);not null;default:'PENDING';comment:成员状态"`
	Role        EventUserRole   `gorm:"type:varchar(32);not null;default:'ATTENDEE';comment:成员角色"`
	InvitedAt   time.Time       `gorm:"comment:邀请时间"`
	RespondedAt *time.Time      `gorm:"comment:响应时间"`
}

func (EventUser) TableName() string { return "event_user" }
