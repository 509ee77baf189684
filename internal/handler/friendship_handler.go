package handler

import (
	"ihost-backend/internal/service"
	"ihost-backend/pkg/jwt"
	"ihost-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type FriendshipHandler struct {
	service *service.FriendshipService
}

func NewFriendshipHandler(s *service.FriendshipService) *FriendshipHandler {
	return &FriendshipHandler{service: s}
}

// SendRequest 发送好友申请
// 两人之间已有任意方向、任意状态的记录时拒绝重复申请
func (h *FriendshipHandler) SendRequest(c *gin.Context) {
	uid := jwt.GetUID(c)

	type req struct {
		ToUID string `json:"to_uid" binding:"required"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	friendship, err := h.service.SendRequest(uid, r.ToUID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Created(c, "好友申请已发送", response.FilterFriendshipInfo(friendship))
}

// Accept 接受好友申请，只允许接收方操作
func (h *FriendshipHandler) Accept(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	uid := jwt.GetUID(c)

	friendship, err := h.service.AcceptRequest(id, uid)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SuccessWithMessage(c, "已接受好友申请", response.FilterFriendshipInfo(friendship))
}

// Decline 拒绝好友申请，只允许接收方操作
func (h *FriendshipHandler) Decline(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	uid := jwt.GetUID(c)

	friendship, err := h.service.DeclineRequest(id, uid)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SuccessWithMessage(c, "已拒绝好友申请", response.FilterFriendshipInfo(friendship))
}

// Remove 删除好友关系，双方任一参与者均可操作
func (h *FriendshipHandler) Remove(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	uid := jwt.GetUID(c)

	if err := h.service.Remove(id, uid); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SuccessWithMessage(c, "好友关系已删除", nil)
}

// Pending 列出收到的待处理申请
func (h *FriendshipHandler) Pending(c *gin.Context) {
	uid := jwt.GetUID(c)

	list, err := h.service.GetPending(uid)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, response.FilterFriendshipInfos(list))
}

// Sent 列出发出的待处理申请
func (h *FriendshipHandler) Sent(c *gin.Context) {
	uid := jwt.GetUID(c)

	list, err := h.service.GetSent(uid)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, response.FilterFriendshipInfos(list))
}

// Friends 列出已确认的好友
func (h *FriendshipHandler) Friends(c *gin.Context) {
	uid := jwt.GetUID(c)

	list, err := h.service.GetFriends(uid)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, response.FilterFriendshipInfos(list))
}
