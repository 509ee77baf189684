package handler

import (
	"strconv"

	"ihost-backend/internal/service"
	"ihost-backend/pkg/jwt"
	"ihost-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// 单个图片上传上限
const maxImageSize = 10 << 20

type ImageHandler struct {
	service *service.ImageService
}

func NewImageHandler(s *service.ImageService) *ImageHandler {
	return &ImageHandler{service: s}
}

// UploadEventImage 上传活动图片
// multipart表单，file为图片内容，event_id为所属活动
func (h *ImageHandler) UploadEventImage(c *gin.Context) {
	uid := jwt.GetUID(c)

	eventIDRaw := c.PostForm("event_id")
	eventID, err := strconv.ParseUint(eventIDRaw, 10, 32)
	if err != nil || eventID == 0 {
		response.BadRequest(c, "invalid event_id")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}
	if fileHeader.Size > maxImageSize {
		response.BadRequest(c, "file too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.InternalError(c, "读取上传文件失败")
		return
	}
	defer file.Close()

	img, err := h.service.UploadEventImage(
		c.Request.Context(),
		uint(eventID),
		uid,
		fileHeader.Filename,
		file,
		fileHeader.Size,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Created(c, "图片已上传", response.FilterImageInfo(img))
}

// UploadProfileImage 上传头像，同时更新用户资料里的头像地址
func (h *ImageHandler) UploadProfileImage(c *gin.Context) {
	uid := jwt.GetUID(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}
	if fileHeader.Size > maxImageSize {
		response.BadRequest(c, "file too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.InternalError(c, "读取上传文件失败")
		return
	}
	defer file.Close()

	img, err := h.service.UploadProfileImage(
		c.Request.Context(),
		uid,
		fileHeader.Filename,
		file,
		fileHeader.Size,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Created(c, "头像已上传", response.FilterImageInfo(img))
}

// ListByEvent 列出活动的全部图片
func (h *ImageHandler) ListByEvent(c *gin.Context) {
	eventID, ok := parseUintParam(c, "eventId")
	if !ok {
		return
	}

	images, err := h.service.ListByEvent(eventID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	infos := make([]*response.ImageInfo, 0, len(images))
	for _, img := range images {
		infos = append(infos, response.FilterImageInfo(img))
	}
	response.Success(c, infos)
}

// Delete 删除图片，只允许上传者操作
func (h *ImageHandler) Delete(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	uid := jwt.GetUID(c)

	if err := h.service.Delete(c.Request.Context(), id, uid); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SuccessWithMessage(c, "图片已删除", nil)
}
