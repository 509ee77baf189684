package repository

import (
	"errors"

	"ihost-backend/internal/model"

	"gorm.io/gorm"
)

// EventUserRepository 活动成员表访问层
type EventUserRepository struct {
	orm *gorm.DB
}

func NewEventUserRepository(orm *gorm.DB) *EventUserRepository {
	return &EventUserRepository{orm: orm}
}

func (r *EventUserRepository) Create(eu *model.EventUser) error {
	return r.orm.Create(eu).Error
}

func (r *EventUserRepository) GetByID(id uint) (*model.EventUser, error) {
	var eu model.EventUser
	if err := r.orm.First(&eu, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &eu, nil
}

func (r *EventUserRepository) GetByEventAndUser(eventID uint, uid string) (*model.EventUser, error) {
	var eu model.EventUser
	if err := r.orm.Where("event_id = ? AND user_uid = ?", eventID, uid).First(&eu).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &eu, nil
}

// ListByEvent 列出活动的成员记录，status为空时不过滤
func (r *EventUserRepository) ListByEvent(eventID uint, status model.EventUserStatus) ([]*model.EventUser, error) {
	query := r.orm.Where("event_id = ?", eventID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var eus []*model.EventUser
	if err := query.Order("invited_at ASC").Find(&eus).Error; err != nil {
		return nil, err
	}
	return eus, nil
}

// ListByUser 列出用户的成员记录，status为空时不过滤
func (r *EventUserRepository) ListByUser(uid string, status model.EventUserStatus) ([]*model.EventUser, error) {
	query := r.orm.Where("user_uid = ?", uid)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var eus []*model.EventUser
	if err := query.Order("invited_at DESC").Find(&eus).Error; err != nil {
		return nil, err
	}
	return eus, nil
}

func (r *EventUserRepository) Update(eu *model.EventUser) error {
	return r.orm.Save(eu).Error
}

// DeleteByEvent 删除活动的全部成员记录，返回删除行数
func (r *EventUserRepository) DeleteByEvent(eventID uint) (int64, error) {
	result := r.orm.Where("event_id = ?", eventID).Delete(&model.EventUser{})
	return result.RowsAffected, result.Error
}
