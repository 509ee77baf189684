package model

import (
	"time"

	"gorm.io/gorm"
)

// User 用户资料
// uid 由外部身份提供方分配，全局唯一
// 用户名唯一，长度限制4-12在服务层校验
// StripeCustomerID 用于支付时复用Stripe客户

type User struct {
	ID               uint           `gorm:"primaryKey"`
	UID              string         `gorm:"type:varchar(128);not null;uniqueIndex;comment:身份提供方分配的用户ID"`
	Email            string         `gorm:"type:varchar(128);comment:邮箱"`
	Username         string         `gorm:"type:varchar(64);not null;uniqueIndex;comment:用户名"`
	FirstName        string         `gorm:"type:varchar(64);comment:名"`
	LastName         string         `gorm:"type:varchar(64);comment:姓"`
	PhotoURL         string         `gorm:"type:varchar(255);comment:头像URL"`
	StripeCustomerID string         `gorm:"type:varchar(128);comment:Stripe客户ID"`
	CreatedAt        time.Time      `gorm:"comment:创建时间"`
	UpdatedAt        time.Time      `gorm:"comment:更新时间"`
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

func (User) TableName() string { return "user" }
