package model

import (
	"time"

	"gorm.io/gorm"
)

// Event 活动
// ShareCode 格式 IH-XXXXX（X为大写字母或数字），用作活动的分享口令
// 只有 CreatorUID 对应的用户可以修改或删除活动

type Event struct {
	ID          uint           `gorm:"primaryKey"`
	Title       string         `gorm:"type:varchar(128);not null;comment:标题"`
	Description string         `gorm:"type:text;comment:描述"`
	EventDate   string         `gorm:"type:varchar(32);comment:活动日期"`
	EventTime   string         `gorm:"type:varchar(32);comment:活动时间"`
	Location    string         `gorm:"type:varchar(255);comment:地点"`
	CreatorUID  string         `gorm:"type:varchar(128);not null;index;comment:创建者uid"`
	Free        bool           `gorm:"default:true;comment:是否免费"`
	Price       float64        `gorm:"type:decimal(10,2);default:0;comment:票价"`
	ShareCode   string         `gorm:"type:varchar(16);index;comment:分享口令"`
	CreatedAt   time.Time      `gorm:"comment:创建时间"`
	UpdatedAt   time.Time      `gorm:"comment:更新时间"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (Event) TableName() string { return "event" }
