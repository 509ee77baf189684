package service

import (
	"fmt"
	"time"

	"ihost-backend/internal/model"
	"ihost-backend/pkg/websocket"

	"go.uber.org/zap"
)

// EventUserService 活动邀请/参与服务
type EventUserService struct {
	euRepo    EventUserRepo
	eventRepo EventRepo
}

func NewEventUserService(euRepo EventUserRepo, eventRepo EventRepo) *EventUserService {
	return &EventUserService{euRepo: euRepo, eventRepo: eventRepo}
}

// InviteUsers 邀请一批用户参加活动，只允许创建者操作
// 已有成员记录的用户静默跳过（幂等邀请），只返回新建的记录
func (s *EventUserService) InviteUsers(eventID uint, uids []string, callerUID string) ([]*model.EventUser, error) {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, fmt.Errorf("%w: event %d", ErrNotFound, eventID)
	}
	if event.CreatorUID != callerUID {
		return nil, fmt.Errorf("%w: only the creator can invite users", ErrForbidden)
	}

	created := make([]*model.EventUser, 0, len(uids))
	for _, uid := range uids {
		existing, err := s.euRepo.GetByEventAndUser(eventID, uid)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			continue
		}

		eu := &model.EventUser{
			EventID:   eventID,
			UserUID:   uid,
			Status:    model.EventUserStatusPending,
			Role:      model.EventUserRoleAttendee,
			InvitedAt: time.Now(),
		}
		if err := s.euRepo.Create(eu); err != nil {
			return nil, err
		}
		created = append(created, eu)

		websocket.GetManager().NotifyUser(uid, "invitation", callerUID, map[string]interface{}{
			"event_id":      event.ID,
			"event_title":   event.Title,
			"event_user_id": eu.ID,
		})
	}
	return created, nil
}

// AcceptInvitation 接受邀请，只允许被邀请者本人操作
// 不校验先前状态，重复接受是幂等的
func (s *EventUserService) AcceptInvitation(eventUserID uint, callerUID string) (*model.EventUser, error) {
	return s.respond(eventUserID, callerUID, model.EventUserStatusAccepted)
}

// DeclineInvitation 拒绝邀请，只允许被邀请者本人操作
func (s *EventUserService) DeclineInvitation(eventUserID uint, callerUID string) (*model.EventUser, error) {
	return s.respond(eventUserID, callerUID, model.EventUserStatusDeclined)
}

func (s *EventUserService) respond(eventUserID uint, callerUID string, status model.EventUserStatus) (*model.EventUser, error) {
	eu, err := s.euRepo.GetByID(eventUserID)
	if err != nil {
		return nil, err
	}
	if eu == nil {
		return nil, fmt.Errorf("%w: event user %d", ErrNotFound, eventUserID)
	}
	if eu.UserUID != callerUID {
		return nil, fmt.Errorf("%w: only the invited user can respond", ErrForbidden)
	}

	now := time.Now()
	eu.Status = status
	eu.RespondedAt = &now
	if err := s.euRepo.Update(eu); err != nil {
		return nil, err
	}

	// 通知活动创建者，查询失败不影响主流程
	if event, err := s.eventRepo.GetByID(eu.EventID); err == nil && event != nil {
		websocket.GetManager().NotifyUser(event.CreatorUID, "invitation_response", callerUID, map[string]interface{}{
			"event_id":      eu.EventID,
			"event_user_id": eu.ID,
			"status":        string(status),
		})
	}

	return eu, nil
}

// GetEventAttendees 列出活动的成员记录，status为空时返回全部
func (s *EventUserService) GetEventAttendees(eventID uint, status string) ([]*model.EventUser, error) {
	filter := model.EventUserStatus(status)
	if status != "" && !filter.Valid() {
		return nil, fmt.Errorf("%w: unknown status %s", ErrValidation, status)
	}
	return s.euRepo.ListByEvent(eventID, filter)
}

// MyEvent 我的活动列表项
type MyEvent struct {
	Membership *model.EventUser
	Event      *model.Event
}

// GetMyEvents 列出用户参与的活动，每条成员记录单独查询对应活动
// 活动查询失败或已被删除的记录静默丢弃（部分失败返回部分结果）
func (s *EventUserService) GetMyEvents(uid, status string) ([]*MyEvent, error) {
	filter := model.EventUserStatus(status)
	if status != "" && !filter.Valid() {
		return nil, fmt.Errorf("%w: unknown status %s", ErrValidation, status)
	}

	memberships, err := s.euRepo.ListByUser(uid, filter)
	if err != nil {
		return nil, err
	}

	result := make([]*MyEvent, 0, len(memberships))
	for _, eu := range memberships {
		event, err := s.eventRepo.GetByID(eu.EventID)
		if err != nil || event == nil {
			zap.L().Warn("成员记录对应的活动不可用，已跳过",
				zap.Uint("event_user_id", eu.ID),
				zap.Uint("event_id", eu.EventID),
				zap.Error(err),
			)
			continue
		}
		result = append(result, &MyEvent{Membership: eu, Event: event})
	}
	return result, nil
}
