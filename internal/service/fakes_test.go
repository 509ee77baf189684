package service

import (
	"fmt"

	"ihost-backend/internal/model"
)

// 内存版repository实现，记录读写次数供断言使用

type fakeUserRepo struct {
	users           map[string]*model.User
	usernameQueries int
	writes          int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User)}
}

func (r *fakeUserRepo) Create(user *model.User) error {
	r.writes++
	user.ID = uint(len(r.users) + 1)
	r.users[user.UID] = user
	return nil
}

func (r *fakeUserRepo) GetByUID(uid string) (*model.User, error) {
	u, ok := r.users[uid]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) ExistsByUsername(username string) (bool, error) {
	r.usernameQueries++
	for _, u := range r.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) List() ([]*model.User, error) {
	users := make([]*model.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	return users, nil
}

func (r *fakeUserRepo) Update(user *model.User) error {
	r.writes++
	r.users[user.UID] = user
	return nil
}

type fakeEventRepo struct {
	events  map[uint]*model.Event
	nextID  uint
	writes  int
	deletes int
	failIDs map[uint]bool // GetByID 返回错误的活动ID
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: make(map[uint]*model.Event), failIDs: make(map[uint]bool)}
}

func (r *fakeEventRepo) Create(event *model.Event) error {
	r.writes++
	r.nextID++
	event.ID = r.nextID
	r.events[event.ID] = event
	return nil
}

func (r *fakeEventRepo) List() ([]*model.Event, error) {
	events := make([]*model.Event, 0, len(r.events))
	for _, e := range r.events {
		events = append(events, e)
	}
	return events, nil
}

func (r *fakeEventRepo) GetByID(id uint) (*model.Event, error) {
	if r.failIDs[id] {
		return nil, fmt.Errorf("storage unavailable")
	}
	e, ok := r.events[id]
	if !ok {
		return nil, nil
	}
	copied := *e
	return &copied, nil
}

func (r *fakeEventRepo) GetByShareCode(code string) (*model.Event, error) {
	for _, e := range r.events {
		if e.ShareCode == code {
			copied := *e
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeEventRepo) Update(event *model.Event) error {
	r.writes++
	r.events[event.ID] = event
	return nil
}

func (r *fakeEventRepo) Delete(id uint) error {
	r.deletes++
	delete(r.events, id)
	return nil
}

type fakeEventUserRepo struct {
	rows   map[uint]*model.EventUser
	nextID uint
	writes int
}

func newFakeEventUserRepo() *fakeEventUserRepo {
	return &fakeEventUserRepo{rows: make(map[uint]*model.EventUser)}
}

func (r *fakeEventUserRepo) Create(eu *model.EventUser) error {
	r.writes++
	r.nextID++
	eu.ID = r.nextID
	copied := *eu
	r.rows[eu.ID] = &copied
	return nil
}

func (r *fakeEventUserRepo) GetByID(id uint) (*model.EventUser, error) {
	eu, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	copied := *eu
	return &copied, nil
}

func (r *fakeEventUserRepo) GetByEventAndUser(eventID uint, uid string) (*model.EventUser, error) {
	for _, eu := range r.rows {
		if eu.EventID == eventID && eu.UserUID == uid {
			copied := *eu
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeEventUserRepo) ListByEvent(eventID uint, status model.EventUserStatus) ([]*model.EventUser, error) {
	var result []*model.EventUser
	for _, eu := range r.rows {
		if eu.EventID != eventID {
			continue
		}
		if status != "" && eu.Status != status {
			continue
		}
		copied := *eu
		result = append(result, &copied)
	}
	return result, nil
}

func (r *fakeEventUserRepo) ListByUser(uid string, status model.EventUserStatus) ([]*model.EventUser, error) {
	var result []*model.EventUser
	for _, eu := range r.rows {
		if eu.UserUID != uid {
			continue
		}
		if status != "" && eu.Status != status {
			continue
		}
		copied := *eu
		result = append(result, &copied)
	}
	return result, nil
}

func (r *fakeEventUserRepo) Update(eu *model.EventUser) error {
	r.writes++
	copied := *eu
	r.rows[eu.ID] = &copied
	return nil
}

func (r *fakeEventUserRepo) DeleteByEvent(eventID uint) (int64, error) {
	var deleted int64
	for id, eu := range r.rows {
		if eu.EventID == eventID {
			delete(r.rows, id)
			deleted++
		}
	}
	r.writes++
	return deleted, nil
}

type fakeFriendshipRepo struct {
	rows         map[uint]*model.Friendship
	nextID       uint
	writes       int
	betweenCalls int
}

func newFakeFriendshipRepo() *fakeFriendshipRepo {
	return &fakeFriendshipRepo{rows: make(map[uint]*model.Friendship)}
}

func (r *fakeFriendshipRepo) Create(f *model.Friendship) error {
	r.writes++
	r.nextID++
	f.ID = r.nextID
	copied := *f
	r.rows[f.ID] = &copied
	return nil
}

func (r *fakeFriendshipRepo) GetByID(id uint) (*model.Friendship, error) {
	f, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	copied := *f
	return &copied, nil
}

func (r *fakeFriendshipRepo) GetBetween(uid1, uid2 string) (*model.Friendship, error) {
	r.betweenCalls++
	for _, f := range r.rows {
		if (f.User1UID == uid1 && f.User2UID == uid2) || (f.User1UID == uid2 && f.User2UID == uid1) {
			copied := *f
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeFriendshipRepo) ListPendingForUser(uid string) ([]*model.Friendship, error) {
	var result []*model.Friendship
	for _, f := range r.rows {
		if f.User2UID == uid && f.Status == model.FriendshipStatusPending {
			copied := *f
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeFriendshipRepo) ListSentByUser(uid string) ([]*model.Friendship, error) {
	var result []*model.Friendship
	for _, f := range r.rows {
		if f.User1UID == uid && f.Status == model.FriendshipStatusPending {
			copied := *f
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeFriendshipRepo) ListAcceptedForUser(uid string) ([]*model.Friendship, error) {
	var result []*model.Friendship
	for _, f := range r.rows {
		if (f.User1UID == uid || f.User2UID == uid) && f.Status == model.FriendshipStatusAccepted {
			copied := *f
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeFriendshipRepo) Update(f *model.Friendship) error {
	r.writes++
	copied := *f
	r.rows[f.ID] = &copied
	return nil
}

func (r *fakeFriendshipRepo) Delete(id uint) error {
	r.writes++
	delete(r.rows, id)
	return nil
}
