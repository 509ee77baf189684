package service

import (
	"fmt"
	"time"

	"ihost-backend/internal/model"
	"ihost-backend/pkg/redis"
	"ihost-backend/pkg/sharecode"

	"go.uber.org/zap"
)

// EventService 活动服务
// 创建活动时同时写入创建者的成员记录
// 修改和删除只允许创建者操作
type EventService struct {
	eventRepo EventRepo
	euRepo    EventUserRepo
}

func NewEventService(eventRepo EventRepo, euRepo EventUserRepo) *EventService {
	return &EventService{eventRepo: eventRepo, euRepo: euRepo}
}

// CreateEventRequest 创建活动请求
type CreateEventRequest struct {
	Title       string
	Description string
	EventDate   string
	EventTime   string
	Location    string
	Free        bool
	Price       float64
}

// Create 创建活动
// 生成分享口令，落库后为创建者写入成员记录（状态/角色均为CREATOR，响应时间立即生效）
func (s *EventService) Create(creatorUID string, req CreateEventRequest) (*model.Event, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}

	code, err := sharecode.Generate()
	if err != nil {
		return nil, err
	}

	event := &model.Event{
		Title:       req.Title,
		Description: req.Description,
		EventDate:   req.EventDate,
		EventTime:   req.EventTime,
		Location:    req.Location,
		CreatorUID:  creatorUID,
		Free:        req.Free,
		Price:       req.Price,
		ShareCode:   code,
	}
	if err := s.eventRepo.Create(event); err != nil {
		return nil, err
	}

	now := time.Now()
	creatorRow := &model.EventUser{
		EventID:     event.ID,
		UserUID:     creatorUID,
		Status:      model.EventUserStatusCreator,
		Role:        model.EventUserRoleCreator,
		InvitedAt:   now,
		RespondedAt: &now,
	}
	if err := s.euRepo.Create(creatorRow); err != nil {
		return nil, err
	}

	// 口令查询缓存，失败不影响主流程
	if err := redis.CacheShareCode(code, event.ID); err != nil {
		zap.L().Warn("缓存分享口令失败", zap.String("share_code", code), zap.Error(err))
	}

	return event, nil
}

// List 列出全部活动
func (s *EventService) List() ([]*model.Event, error) {
	return s.eventRepo.List()
}

// EventPatch 活动更新请求，nil字段表示不修改
type EventPatch struct {
	Title       *string
	Description *string
	EventDate   *string
	EventTime   *string
	Location    *string
	Free        *bool
	Price       *float64
}

// Update 更新活动，只允许创建者操作
func (s *EventService) Update(eventID uint, callerUID string, patch EventPatch) (*model.Event, error) {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, fmt.Errorf("%w: event %d", ErrNotFound, eventID)
	}
	if event.CreatorUID != callerUID {
		return nil, fmt.Errorf("%w: only the creator can update the event", ErrForbidden)
	}

	if patch.Title != nil {
		event.Title = *patch.Title
	}
	if patch.Description != nil {
		event.Description = *patch.Description
	}
	if patch.EventDate != nil {
		event.EventDate = *patch.EventDate
	}
	if patch.EventTime != nil {
		event.EventTime = *patch.EventTime
	}
	if patch.Location != nil {
		event.Location = *patch.Location
	}
	if patch.Free != nil {
		event.Free = *patch.Free
	}
	if patch.Price != nil {
		event.Price = *patch.Price
	}

	if err := s.eventRepo.Update(event); err != nil {
		return nil, err
	}
	return event, nil
}

// Delete 删除活动，只允许创建者操作
// 先删除全部成员记录再删除活动本身（两次独立写入，中间失败会留下孤儿记录）
// 返回删除的成员记录数
func (s *EventService) Delete(eventID uint, callerUID string) (int64, error) {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return 0, err
	}
	if event == nil {
		return 0, fmt.Errorf("%w: event %d", ErrNotFound, eventID)
	}
	if event.CreatorUID != callerUID {
		return 0, fmt.Errorf("%w: only the creator can delete the event", ErrForbidden)
	}

	deleted, err := s.euRepo.DeleteByEvent(eventID)
	if err != nil {
		return 0, err
	}
	if err := s.eventRepo.Delete(eventID); err != nil {
		return deleted, err
	}

	if err := redis.InvalidateShareCode(event.ShareCode); err != nil {
		zap.L().Warn("清除分享口令缓存失败", zap.String("share_code", event.ShareCode), zap.Error(err))
	}

	return deleted, nil
}

// GetByID 查询活动及请求者自己的成员记录
// 请求者没有成员记录时第二个返回值为nil（不自动创建）
func (s *EventService) GetByID(eventID uint, callerUID string) (*model.Event, *model.EventUser, error) {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, nil, err
	}
	if event == nil {
		return nil, nil, fmt.Errorf("%w: event %d", ErrNotFound, eventID)
	}

	eu, err := s.euRepo.GetByEventAndUser(eventID, callerUID)
	if err != nil {
		return nil, nil, err
	}
	return event, eu, nil
}

// FindByShareCode 通过分享口令访问活动
// 访问者没有成员记录时自动写入一条PENDING/ATTENDEE记录（即访问即申请加入）
// 创建者缺少自己的成员记录属于异常状态，只记警告不自动修复
func (s *EventService) FindByShareCode(code, callerUID string) (*model.Event, *model.EventUser, error) {
	var event *model.Event
	var err error

	if eventID, ok := redis.GetCachedShareCode(code); ok {
		event, err = s.eventRepo.GetByID(eventID)
		if err != nil {
			return nil, nil, err
		}
	}
	if event == nil {
		event, err = s.eventRepo.GetByShareCode(code)
		if err != nil {
			return nil, nil, err
		}
	}
	if event == nil {
		return nil, nil, fmt.Errorf("%w: share code %s", ErrNotFound, code)
	}

	if err := redis.CacheShareCode(code, event.ID); err != nil {
		zap.L().Warn("缓存分享口令失败", zap.String("share_code", code), zap.Error(err))
	}

	eu, err := s.euRepo.GetByEventAndUser(event.ID, callerUID)
	if err != nil {
		return nil, nil, err
	}
	if eu != nil {
		return event, eu, nil
	}

	if event.CreatorUID == callerUID {
		zap.L().Warn("活动创建者缺少成员记录",
			zap.Uint("event_id", event.ID),
			zap.String("creator_uid", callerUID),
		)
		return event, nil, nil
	}

	eu = &model.EventUser{
		EventID:   event.ID,
		UserUID:   callerUID,
		Status:    model.EventUserStatusPending,
		Role:      model.EventUserRoleAttendee,
		InvitedAt: time.Now(),
	}
	if err := s.euRepo.Create(eu); err != nil {
		return nil, nil, err
	}
	return event, eu, nil
}
