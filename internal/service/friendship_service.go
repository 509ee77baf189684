package service

import (
	"fmt"
	"time"

	"ihost-backend/internal/model"
	"ihost-backend/pkg/websocket"
)

// FriendshipService 好友关系服务
// 状态机：PENDING -> ACCEPTED/DECLINED，只有接收方可以响应
type FriendshipService struct {
	repo FriendshipRepo
}

func NewFriendshipService(repo FriendshipRepo) *FriendshipService {
	return &FriendshipService{repo: repo}
}

// SendRequest 发送好友请求
// 不允许加自己为好友；两人之间已有任意方向、任意状态的记录时拒绝
func (s *FriendshipService) SendRequest(fromUID, toUID string) (*model.Friendship, error) {
	if toUID == "" {
		return nil, fmt.Errorf("%w: recipient is required", ErrValidation)
	}
	if fromUID == toUID {
		return nil, fmt.Errorf("%w: cannot befriend yourself", ErrValidation)
	}

	existing, err := s.repo.GetBetween(fromUID, toUID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: friendship already exists between %s and %s", ErrConflict, fromUID, toUID)
	}

	f := &model.Friendship{
		User1UID:    fromUID,
		User2UID:    toUID,
		Status:      model.FriendshipStatusPending,
		RequestedBy: fromUID,
		RequestedAt: time.Now(),
	}
	if err := s.repo.Create(f); err != nil {
		return nil, err
	}

	websocket.GetManager().NotifyUser(toUID, "friend_request", fromUID, map[string]interface{}{
		"friendship_id": f.ID,
	})

	return f, nil
}

// AcceptRequest 接受好友请求，只允许接收方在PENDING状态下操作
func (s *FriendshipService) AcceptRequest(friendshipID uint, callerUID string) (*model.Friendship, error) {
	return s.respond(friendshipID, callerUID, model.FriendshipStatusAccepted)
}

// DeclineRequest 拒绝好友请求，只允许接收方在PENDING状态下操作
func (s *FriendshipService) DeclineRequest(friendshipID uint, callerUID string) (*model.Friendship, error) {
	return s.respond(friendshipID, callerUID, model.FriendshipStatusDeclined)
}

func (s *FriendshipService) respond(friendshipID uint, callerUID string, status model.FriendshipStatus) (*model.Friendship, error) {
	f, err := s.repo.GetByID(friendshipID)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, fmt.Errorf("%w: friendship %d", ErrNotFound, friendshipID)
	}
	if f.User2UID != callerUID {
		return nil, fmt.Errorf("%w: only the recipient can respond", ErrForbidden)
	}
	if f.Status != model.FriendshipStatusPending {
		return nil, fmt.Errorf("%w: friendship is not pending", ErrConflict)
	}

	now := time.Now()
	f.Status = status
	f.RespondedAt = &now
	if err := s.repo.Update(f); err != nil {
		return nil, err
	}

	websocket.GetManager().NotifyUser(f.User1UID, "friend_response", callerUID, map[string]interface{}{
		"friendship_id": f.ID,
		"status":        string(status),
	})

	return f, nil
}

// Remove 删除好友关系（撤回请求或解除好友）
// 任意一方都可以操作，不限状态，物理删除
func (s *FriendshipService) Remove(friendshipID uint, callerUID string) error {
	f, err := s.repo.GetByID(friendshipID)
	if err != nil {
		return err
	}
	if f == nil {
		return fmt.Errorf("%w: friendship %d", ErrNotFound, friendshipID)
	}
	if f.User1UID != callerUID && f.User2UID != callerUID {
		return fmt.Errorf("%w: only a participant can remove the friendship", ErrForbidden)
	}

	return s.repo.Delete(friendshipID)
}

// GetPending 用户收到的待处理请求
func (s *FriendshipService) GetPending(uid string) ([]*model.Friendship, error) {
	return s.repo.ListPendingForUser(uid)
}

// GetSent 用户发出的待处理请求
func (s *FriendshipService) GetSent(uid string) ([]*model.Friendship, error) {
	return s.repo.ListSentByUser(uid)
}

// GetFriends 用户的全部好友关系
func (s *FriendshipService) GetFriends(uid string) ([]*model.Friendship, error) {
	return s.repo.ListAcceptedForUser(uid)
}
