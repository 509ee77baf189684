package repository

import (
	"errors"

	"ihost-backend/internal/model"

	"gorm.io/gorm"
)

// EventRepository 活动表访问层
type EventRepository struct {
	orm *gorm.DB
}

func NewEventRepository(orm *gorm.DB) *EventRepository {
	return &EventRepository{orm: orm}
}

func (r *EventRepository) Create(event *model.Event) error {
	return r.orm.Create(event).Error
}

func (r *EventRepository) List() ([]*model.Event, error) {
	var events []*model.Event
	if err := r.orm.Order("created_at DESC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *EventRepository) GetByID(id uint) (*model.Event, error) {
	var e model.Event
	if err := r.orm.First(&e, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *EventRepository) GetByShareCode(code string) (*model.Event, error) {
	var e model.Event
	if err := r.orm.Where("share_code = ?", code).First(&e).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *EventRepository) Update(event *model.Event) error {
	return r.orm.Save(event).Error
}

func (r *EventRepository) Delete(id uint) error {
	return r.orm.Delete(&model.Event{}, id).Error
}
