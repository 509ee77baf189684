package model

import (
	"time"
)

// Image 图片元数据
// 图片本体存放在对象存储，这里只记录归属与访问路径
// EventID 为0时表示用户头像等非活动图片

type Image struct {
	ID         uint      `gorm:"primaryKey"`
	EventID    uint      `gorm:"index;comment:所属活动ID"`
	UploaderID string    `gorm:"type:varchar(128);not null;index;comment:上传者uid"`
	ObjectName string    `gorm:"type:varchar(255);not null;comment:对象存储中的对象名"`
	URL        string    `gorm:"type:varchar(512);comment:访问URL"`
	UploadedAt time.Time `gorm:"comment:上传时间"`
}

func (Image) TableName() string { return "image" }
