package response

import (
	"time"

	"ihost-backend/internal/model"
)

// UserInfo 用户信息（隐藏内部字段）
type UserInfo struct {
	UID       string `json:"uid"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	PhotoURL  string `json:"photo_url"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// FilterUserInfo 过滤用户信息，隐藏内部字段
func FilterUserInfo(user *model.User) *UserInfo {
	if user == nil {
		return nil
	}

	return &UserInfo{
		UID:       user.UID,
		Email:     user.Email,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		PhotoURL:  user.PhotoURL,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
		UpdatedAt: user.UpdatedAt.Format(time.RFC3339),
	}
}

// EventInfo 活动信息
type EventInfo struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	EventDate   string  `json:"event_date"`
	EventTime   string  `json:"event_time"`
	Location    string  `json:"location"`
	CreatorUID  string  `json:"creator_uid"`
	Free        bool    `json:"free"`
	Price       float64 `json:"price"`
	ShareCode   string  `json:"share_code"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// FilterEventInfo 过滤活动信息
func FilterEventInfo(event *model.Event) *EventInfo {
	if event == nil {
		return nil
	}

	return &EventInfo{
		ID:          event.ID,
		Title:       event.Title,
		Description: event.Description,
		EventDate:   event.EventDate,
		EventTime:   event.EventTime,
		Location:    event.Location,
		CreatorUID:  event.CreatorUID,
		Free:        event.Free,
		Price:       event.Price,
		ShareCode:   event.ShareCode,
		CreatedAt:   event.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   event.UpdatedAt.Format(time.RFC3339),
	}
}

// EventUserInfo 活动成员信息
type EventUserInfo struct {
	ID          uint    `json:"id"`
	EventID     uint    `json:"event_id"`
	UserUID     string  `json:"user_uid"`
	Status      string  `json:"status"`
	Role        string  `json:"role"`
	InvitedAt   string  `json:"invited_at"`
	RespondedAt *string `json:"responded_at"`
}

// FilterEventUserInfo 过滤活动成员信息
func FilterEventUserInfo(eu *model.EventUser) *EventUserInfo {
	if eu == nil {
		return nil
	}

	info := &EventUserInfo{
		ID:        eu.ID,
		EventID:   eu.EventID,
		UserUID:   eu.UserUID,
		Status:    string(eu.Status),
		Role:      string(eu.Role),
		InvitedAt: eu.InvitedAt.Format(time.RFC3339),
	}
	if eu.RespondedAt != nil {
		s := eu.RespondedAt.Format(time.RFC3339)
		info.RespondedAt = &s
	}
	return info
}

// FilterEventUserInfos 批量过滤活动成员信息
func FilterEventUserInfos(eus []*model.EventUser) []*EventUserInfo {
	infos := make([]*EventUserInfo, 0, len(eus))
	for _, eu := range eus {
		infos = append(infos, FilterEventUserInfo(eu))
	}
	return infos
}

// EventMembershipInfo 活动信息加上请求者自己的成员状态
// 请求者没有成员记录时 status/role 为 null
type EventMembershipInfo struct {
	Event  *EventInfo `json:"event"`
	Status *string    `json:"status"`
	Role   *string    `json:"role"`
}

// FilterEventMembership 组合活动与请求者的成员状态
func FilterEventMembership(event *model.Event, eu *model.EventUser) *EventMembershipInfo {
	info := &EventMembershipInfo{Event: FilterEventInfo(event)}
	if eu != nil {
		status := string(eu.Status)
		role := string(eu.Role)
		info.Status = &status
		info.Role = &role
	}
	return info
}

// MyEventInfo 我的活动列表项（成员记录+活动详情）
type MyEventInfo struct {
	Membership *EventUserInfo `json:"membership"`
	Event      *EventInfo     `json:"event"`
}

// FriendshipInfo 好友关系信息
type FriendshipInfo struct {
	ID          uint    `json:"id"`
	User1UID    string  `json:"user1_uid"`
	User2UID    string  `json:"user2_uid"`
	Status      string  `json:"status"`
	RequestedBy string  `json:"requested_by"`
	RequestedAt string  `json:"requested_at"`
	RespondedAt *string `json:"responded_at"`
}

// FilterFriendshipInfo 过滤好友关系信息
func FilterFriendshipInfo(f *model.Friendship) *FriendshipInfo {
	if f == nil {
		return nil
	}

	info := &FriendshipInfo{
		ID:          f.ID,
		User1UID:    f.User1UID,
		User2UID:    f.User2UID,
		Status:      string(f.Status),
		RequestedBy: f.RequestedBy,
		RequestedAt: f.RequestedAt.Format(time.RFC3339),
	}
	if f.RespondedAt != nil {
		s := f.RespondedAt.Format(time.RFC3339)
		info.RespondedAt = &s
	}
	return info
}

// FilterFriendshipInfos 批量过滤好友关系信息
func FilterFriendshipInfos(fs []*model.Friendship) []*FriendshipInfo {
	infos := make([]*FriendshipInfo, 0, len(fs))
	for _, f := range fs {
		infos = append(infos, FilterFriendshipInfo(f))
	}
	return infos
}

// ImageInfo 图片元数据信息
type ImageInfo struct {
	ID         uint   `json:"id"`
	EventID    uint   `json:"event_id,omitempty"`
	UploaderID string `json:"uploader_id"`
	ObjectName string `json:"object_name"`
	URL        string `json:"url"`
	UploadedAt string `json:"uploaded_at"`
}

// FilterImageInfo 过滤图片元数据信息
func FilterImageInfo(img *model.Image) *ImageInfo {
	if img == nil {
		return nil
	}

	return &ImageInfo{
		ID:         img.ID,
		EventID:    img.EventID,
		UploaderID: img.UploaderID,
		ObjectName: img.ObjectName,
		URL:        img.URL,
		UploadedAt: img.UploadedAt.Format(time.RFC3339),
	}
}
