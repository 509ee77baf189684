package service

import (
	"errors"
	"testing"

	"ihost-backend/internal/model"
)

func TestSendRequest_Self(t *testing.T) {
	repo := newFakeFriendshipRepo()
	svc := NewFriendshipService(repo)

	_, err := svc.SendRequest("a", "a")
	if !errors.Is(err, ErrValidation) {
		t.Errorf("SendRequest(a, a) error = %v, want ErrValidation", err)
	}
	// 自我请求在访问存储之前就应失败
	if repo.betweenCalls != 0 || repo.writes != 0 {
		t.Errorf("repository accessed: betweenCalls=%d writes=%d, want 0/0", repo.betweenCalls, repo.writes)
	}
}

func TestSendRequest_Creates(t *testing.T) {
	repo := newFakeFriendshipRepo()
	svc := NewFriendshipService(repo)

	f, err := svc.SendRequest("a", "b")
	if err != nil {
		t.Fatalf("SendRequest() error: %v", err)
	}
	if f.Status != model.FriendshipStatusPending {
		t.Errorf("status = %s, want PENDING", f.Status)
	}
	if f.RequestedBy != "a" || f.User1UID != "a" || f.User2UID != "b" {
		t.Errorf("participants = %s/%s requested_by %s, want a/b a", f.User1UID, f.User2UID, f.RequestedBy)
	}
	if f.RespondedAt != nil {
		t.Error("responded_at set on fresh request")
	}
}

func TestSendRequest_DuplicateAnyDirectionAnyStatus(t *testing.T) {
	tests := []struct {
		name   string
		u1, u2 string
		status model.FriendshipStatus
	}{
		{"same direction pending", "a", "b", model.FriendshipStatusPending},
		{"reverse direction pending", "b", "a", model.FriendshipStatusPending},
		{"already accepted", "a", "b", model.FriendshipStatusAccepted},
		{"already declined", "b", "a", model.FriendshipStatusDeclined},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeFriendshipRepo()
			_ = repo.Create(&model.Friendship{User1UID: tt.u1, User2UID: tt.u2, Status: tt.status, RequestedBy: tt.u1})
			svc := NewFriendshipService(repo)

			_, err := svc.SendRequest("a", "b")
			if !errors.Is(err, ErrConflict) {
				t.Errorf("SendRequest() error = %v, want ErrConflict", err)
			}
		})
	}
}

func TestAcceptRequest_SetsStatus(t *testing.T) {
	repo := newFakeFriendshipRepo()
	svc := NewFriendshipService(repo)
	f, _ := svc.SendRequest("a", "b")

	accepted, err := svc.AcceptRequest(f.ID, "b")
	if err != nil {
		t.Fatalf("AcceptRequest() error: %v", err)
	}
	if accepted.Status != model.FriendshipStatusAccepted {
		t.Errorf("status = %s, want ACCEPTED", accepted.Status)
	}
	if accepted.RespondedAt == nil {
		t.Error("responded_at not set")
	}
}

func TestAcceptRequest_NotRecipient(t *testing.T) {
	repo := newFakeFriendshipRepo()
	svc := NewFriendshipService(repo)
	f, _ := svc.SendRequest("a", "b")

	for _, caller := range []string{"a", "c"} {
		if _, err := svc.AcceptRequest(f.ID, caller); !errors.Is(err, ErrForbidden) {
			t.Errorf("AcceptRequest(caller=%s) error = %v, want ErrForbidden", caller, err)
		}
	}
}

func TestAcceptRequest_NotPending(t *testing.T) {
	repo := newFakeFriendshipRepo()
	svc := NewFriendshipService(repo)
	f, _ := svc.SendRequest("a", "b")
	_, _ = svc.DeclineRequest(f.ID, "b")

	_, err := svc.AcceptRequest(f.ID, "b")
	if !errors.Is(err, ErrConflict) {
		t.Errorf("AcceptRequest() on declined error = %v, want ErrConflict", err)
	}
}

func TestDeclineRequest_NotPending(t *testing.T) {
	repo := newFakeFriendshipRepo()
	svc := NewFriendshipService(repo)
	f, _ := svc.SendRequest("a", "b")
	_, _ = svc.AcceptRequest(f.ID, "b")

	_, err := svc.DeclineRequest(f.ID, "b")
	if !errors.Is(err, ErrConflict) {
		t.Errorf("DeclineRequest() on accepted error = %v, want ErrConflict", err)
	}
}

func TestRemove_EitherParticipantAnyStatus(t *testing.T) {
	for _, caller := range []string{"a", "b"} {
		repo := newFakeFriendshipRepo()
		svc := NewFriendshipService(repo)
		f, _ := svc.SendRequest("a", "b")
		_, _ = svc.AcceptRequest(f.ID, "b")

		if err := svc.Remove(f.ID, caller); err != nil {
			t.Errorf("Remove(caller=%s) error: %v", caller, err)
		}
		if got, _ := repo.GetByID(f.ID); got != nil {
			t.Errorf("friendship still present after Remove(caller=%s)", caller)
		}
	}
}

func TestRemove_PendingRequest(t *testing.T) {
	// 发起方撤回待处理请求
	repo := newFakeFriendshipRepo()
	svc := NewFriendshipService(repo)
	f, _ := svc.SendRequest("a", "b")

	if err := svc.Remove(f.ID, "a"); err != nil {
		t.Errorf("Remove() error: %v", err)
	}
}

func TestRemove_Stranger(t *testing.T) {
	repo := newFakeFriendshipRepo()
	svc := NewFriendshipService(repo)
	f, _ := svc.SendRequest("a", "b")

	err := svc.Remove(f.ID, "c")
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("Remove() error = %v, want ErrForbidden", err)
	}
}

func TestQueries(t *testing.T) {
	repo := newFakeFriendshipRepo()
	svc := NewFriendshipService(repo)

	sent, _ := svc.SendRequest("a", "b")
	_, _ = svc.SendRequest("c", "a")
	accepted, _ := svc.SendRequest("a", "d")
	_, _ = svc.AcceptRequest(accepted.ID, "d")

	pending, err := svc.GetPending("a")
	if err != nil {
		t.Fatalf("GetPending() error: %v", err)
	}
	if len(pending) != 1 || pending[0].User1UID != "c" {
		t.Errorf("pending = %v, want request from c", pending)
	}

	sentList, err := svc.GetSent("a")
	if err != nil {
		t.Fatalf("GetSent() error: %v", err)
	}
	if len(sentList) != 1 || sentList[0].ID != sent.ID {
		t.Errorf("sent = %v, want request to b", sentList)
	}

	friends, err := svc.GetFriends("a")
	if err != nil {
		t.Fatalf("GetFriends() error: %v", err)
	}
	if len(friends) != 1 || friends[0].User2UID != "d" {
		t.Errorf("friends = %v, want friendship with d", friends)
	}
}
