package handler

import (
	"ihost-backend/internal/service"
	"ihost-backend/pkg/jwt"
	"ihost-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	service *service.EventService
}

func NewEventHandler(s *service.EventService) *EventHandler {
	return &EventHandler{service: s}
}

// Create 创建活动
func (h *EventHandler) Create(c *gin.Context) {
	uid := jwt.GetUID(c)

	type req struct {
		Title       string  `json:"title" binding:"required"`
		Description string  `json:"description"`
		EventDate   string  `json:"event_date"`
		EventTime   string  `json:"event_time"`
		Location    string  `json:"location"`
		Free        bool    `json:"free"`
		Price       float64 `json:"price"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	event, err := h.service.Create(uid, service.CreateEventRequest{
		Title:       r.Title,
		Description: r.Description,
		EventDate:   r.EventDate,
		EventTime:   r.EventTime,
		Location:    r.Location,
		Free:        r.Free,
		Price:       r.Price,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Created(c, "活动已创建", response.FilterEventInfo(event))
}

// List 列出全部活动
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.service.List()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	infos := make([]*response.EventInfo, 0, len(events))
	for _, e := range events {
		infos = append(infos, response.FilterEventInfo(e))
	}
	response.Success(c, infos)
}

// GetByID 查询活动及请求者自己的成员状态
func (h *EventHandler) GetByID(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	uid := jwt.GetUID(c)

	event, eu, err := h.service.GetByID(id, uid)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, response.FilterEventMembership(event, eu))
}

// Update 更新活动，只允许创建者操作
// 缺失的字段保持原值
func (h *EventHandler) Update(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	uid := jwt.GetUID(c)

	type req struct {
		Title       *string  `json:"title"`
		Description *string  `json:"description"`
		EventDate   *string  `json:"event_date"`
		EventTime   *string  `json:"event_time"`
		Location    *string  `json:"location"`
		Free        *bool    `json:"free"`
		Price       *float64 `json:"price"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	event, err := h.service.Update(id, uid, service.EventPatch{
		Title:       r.Title,
		Description: r.Description,
		EventDate:   r.EventDate,
		EventTime:   r.EventTime,
		Location:    r.Location,
		Free:        r.Free,
		Price:       r.Price,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SuccessWithMessage(c, "活动已更新", response.FilterEventInfo(event))
}

// Delete 删除活动，只允许创建者操作
// 返回一并删除的成员记录数
func (h *EventHandler) Delete(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	uid := jwt.GetUID(c)

	deleted, err := h.service.Delete(id, uid)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SuccessWithMessage(c, "活动已删除", gin.H{
		"deleted_event_users": deleted,
	})
}

// GetByShareCode 通过分享口令访问活动
// 非成员访问会自动创建PENDING成员记录
func (h *EventHandler) GetByShareCode(c *gin.Context) {
	code := c.Param("shareCode")
	if code == "" {
		response.BadRequest(c, "shareCode is required")
		return
	}
	uid := jwt.GetUID(c)

	event, eu, err := h.service.FindByShareCode(code, uid)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, response.FilterEventMembership(event, eu))
}
