package repository

import (
	"errors"

	"ihost-backend/internal/model"

	"gorm.io/gorm"
)

// FriendshipRepository 好友关系表访问层
type FriendshipRepository struct {
	orm *gorm.DB
}

func NewFriendshipRepository(orm *gorm.DB) *FriendshipRepository {
	return &FriendshipRepository{orm: orm}
}

func (r *FriendshipRepository) Create(f *model.Friendship) error {
	return r.orm.Create(f).Error
}

func (r *FriendshipRepository) GetByID(id uint) (*model.Friendship, error) {
	var f model.Friendship
	if err := r.orm.First(&f, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

// GetBetween 查询两个用户之间的关系记录，方向与状态不限
func (r *FriendshipRepository) GetBetween(uid1, uid2 string) (*model.Friendship, error) {
	var f model.Friendship
	err := r.orm.Where(
		"(user1_uid = ? AND user2_uid = ?) OR (user1_uid = ? AND user2_uid = ?)",
		uid1, uid2, uid2, uid1,
	).First(&f).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

// ListPendingForUser 用户收到的待处理请求
func (r *FriendshipRepository) ListPendingForUser(uid string) ([]*model.Friendship, error) {
	var fs []*model.Friendship
	err := r.orm.Where("user2_uid = ? AND status = ?", uid, model.FriendshipStatusPending).
		Order("requested_at DESC").Find(&fs).Error
	if err != nil {
		return nil, err
	}
	return fs, nil
}

// ListSentByUser 用户发出的待处理请求
func (r *FriendshipRepository) ListSentByUser(uid string) ([]*model.Friendship, error) {
	var fs []*model.Friendship
	err := r.orm.Where("user1_uid = ? AND status = ?", uid, model.FriendshipStatusPending).
		Order("requested_at DESC").Find(&fs).Error
	if err != nil {
		return nil, err
	}
	return fs, nil
}

// ListAcceptedForUser 用户的全部好友关系（任意一方）
func (r *FriendshipRepository) ListAcceptedForUser(uid string) ([]*model.Friendship, error) {
	var fs []*model.Friendship
	err := r.orm.Where("(user1_uid = ? OR user2_uid = ?) AND status = ?",
		uid, uid, model.FriendshipStatusAccepted).
		Order("responded_at DESC").Find(&fs).Error
	if err != nil {
		return nil, err
	}
	return fs, nil
}

func (r *FriendshipRepository) Update(f *model.Friendship) error {
	return r.orm.Save(f).Error
}

func (r *FriendshipRepository) Delete(id uint) error {
	return r.orm.Delete(&model.Friendship{}, id).Error
}
