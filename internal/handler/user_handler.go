package handler

import (
	"ihost-backend/internal/service"
	"ihost-backend/pkg/jwt"
	"ihost-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service *service.UserService
}

func NewUserHandler(s *service.UserService) *UserHandler {
	return &UserHandler{service: s}
}

// Register 注册用户资料
// uid 取自已验证的令牌，不接受请求体里的uid
func (h *UserHandler) Register(c *gin.Context) {
	uid := jwt.GetUID(c)
	if uid == "" {
		response.Unauthorized(c, "用户未认证")
		return
	}

	type req struct {
		Email     string `json:"email"`
		Username  string `json:"username" binding:"required"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		PhotoURL  string `json:"photo_url"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.service.Register(uid, service.RegisterRequest{
		Email:     r.Email,
		Username:  r.Username,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		PhotoURL:  r.PhotoURL,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Created(c, "注册成功", response.FilterUserInfo(user))
}

// List 列出全部用户
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.service.List()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	infos := make([]*response.UserInfo, 0, len(users))
	for _, u := range users {
		infos = append(infos, response.FilterUserInfo(u))
	}
	response.Success(c, infos)
}

// GetByUID 查询用户资料（公开接口）
func (h *UserHandler) GetByUID(c *gin.Context) {
	uid := c.Param("uid")
	if uid == "" {
		response.BadRequest(c, "uid is required")
		return
	}

	user, err := h.service.GetByUID(uid)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, response.FilterUserInfo(user))
}

// Update 更新用户资料，只允许本人操作
// 缺失的字段保持原值
func (h *UserHandler) Update(c *gin.Context) {
	uid := c.Param("uid")
	callerUID := jwt.GetUID(c)

	type req struct {
		Email     *string `json:"email"`
		Username  *string `json:"username"`
		FirstName *string `json:"first_name"`
		LastName  *string `json:"last_name"`
		PhotoURL  *string `json:"photo_url"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.service.Update(uid, callerUID, service.UserPatch{
		Email:     r.Email,
		Username:  r.Username,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		PhotoURL:  r.PhotoURL,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SuccessWithMessage(c, "资料已更新", response.FilterUserInfo(user))
}

// UsernameAvailable 检查用户名是否可用
func (h *UserHandler) UsernameAvailable(c *gin.Context) {
	username := c.Param("username")

	available, err := h.service.IsUsernameAvailable(username)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, gin.H{
		"username":  username,
		"available": available,
	})
}
