package handler

import (
	"ihost-backend/internal/service"
	"ihost-backend/pkg/jwt"
	"ihost-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type EventUserHandler struct {
	service *service.EventUserService
}

func NewEventUserHandler(s *service.EventUserService) *EventUserHandler {
	return &EventUserHandler{service: s}
}

// Invite 邀请一批用户参加活动，只允许创建者操作
// 已被邀请的用户静默跳过，返回新建的记录
func (h *EventUserHandler) Invite(c *gin.Context) {
	uid := jwt.GetUID(c)

	type req struct {
		EventID  uint     `json:"event_id" binding:"required"`
		UserUIDs []string `json:"user_uids" binding:"required"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.InviteUsers(r.EventID, r.UserUIDs, uid)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Created(c, "邀请已发送", response.FilterEventUserInfos(created))
}

// Accept 接受邀请
func (h *EventUserHandler) Accept(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	uid := jwt.GetUID(c)

	eu, err := h.service.AcceptInvitation(id, uid)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SuccessWithMessage(c, "已接受邀请", response.FilterEventUserInfo(eu))
}

// Decline 拒绝邀请
func (h *EventUserHandler) Decline(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	uid := jwt.GetUID(c)

	eu, err := h.service.DeclineInvitation(id, uid)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SuccessWithMessage(c, "已拒绝邀请", response.FilterEventUserInfo(eu))
}

// EventAttendees 列出活动的成员记录，可按状态过滤
func (h *EventUserHandler) EventAttendees(c *gin.Context) {
	eventID, ok := parseUintParam(c, "eventId")
	if !ok {
		return
	}
	status := c.Query("status")

	attendees, err := h.service.GetEventAttendees(eventID, status)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, response.FilterEventUserInfos(attendees))
}

// MyEvents 列出当前用户参与的活动，可按状态过滤
func (h *EventUserHandler) MyEvents(c *gin.Context) {
	uid := jwt.GetUID(c)
	status := c.Query("status")

	myEvents, err := h.service.GetMyEvents(uid, status)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	infos := make([]*response.MyEventInfo, 0, len(myEvents))
	for _, me := range myEvents {
		infos = append(infos, &response.MyEventInfo{
			Membership: response.FilterEventUserInfo(me.Membership),
			Event:      response.FilterEventInfo(me.Event),
		})
	}
	response.Success(c, infos)
}
