package service

import (
	"context"
	"io"

	"ihost-backend/internal/model"
)

// 服务层依赖的数据访问接口
// internal/repository 中的gorm实现满足这些接口，测试时用内存实现替换

type UserRepo interface {
	Create(user *model.User) error
	GetByUID(uid string) (*model.User, error)
	ExistsByUsername(username string) (bool, error)
	List() ([]*model.User, error)
	Update(user *model.User) error
}

type EventRepo interface {
	Create(event *model.Event) error
	List() ([]*model.Event, error)
	GetByID(id uint) (*model.Event, error)
	GetByShareCode(code string) (*model.Event, error)
	Update(event *model.Event) error
	Delete(id uint) error
}

type EventUserRepo interface {
	Create(eu *model.EventUser) error
	GetByID(id uint) (*model.EventUser, error)
	GetByEventAndUser(eventID uint, uid string) (*model.EventUser, error)
	ListByEvent(eventID uint, status model.EventUserStatus) ([]*model.EventUser, error)
	ListByUser(uid string, status model.EventUserStatus) ([]*model.EventUser, error)
	Update(eu *model.EventUser) error
	DeleteByEvent(eventID uint) (int64, error)
}

type FriendshipRepo interface {
	Create(f *model.Friendship) error
	GetByID(id uint) (*model.Friendship, error)
	GetBetween(uid1, uid2 string) (*model.Friendship, error)
	ListPendingForUser(uid string) ([]*model.Friendship, error)
	ListSentByUser(uid string) ([]*model.Friendship, error)
	ListAcceptedForUser(uid string) ([]*model.Friendship, error)
	Update(f *model.Friendship) error
	Delete(id uint) error
}

type ImageRepo interface {
	Create(img *model.Image) error
	GetByID(id uint) (*model.Image, error)
	ListByEvent(eventID uint) ([]*model.Image, error)
	Delete(id uint) error
}

// ObjectStorage 图片对象存储接口（pkg/storage.Client 满足）
type ObjectStorage interface {
	Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
	Remove(ctx context.Context, objectName string) error
}
