package handler

import (
	"io"
	"net/http"

	"ihost-backend/internal/service"
	"ihost-backend/pkg/jwt"
	"ihost-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// webhook请求体上限，防止恶意大包
const maxWebhookBodySize = 64 << 10

type PaymentHandler struct {
	service *service.PaymentService
}

func NewPaymentHandler(s *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: s}
}

// CreatePaymentIntent 为付费活动创建支付意向
// 返回客户端SDK发起支付所需的全部密钥
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	uid := jwt.GetUID(c)

	type req struct {
		EventID uint `json:"event_id" binding:"required"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.CreatePaymentIntent(r.EventID, uid)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, gin.H{
		"client_secret":   result.ClientSecret,
		"ephemeral_key":   result.EphemeralKey,
		"customer_id":     result.CustomerID,
		"publishable_key": result.PublishableKey,
	})
}

// Keys 返回客户端可公开的密钥
func (h *PaymentHandler) Keys(c *gin.Context) {
	response.Success(c, gin.H{
		"publishable_key": h.service.PublishableKey(),
	})
}

// Webhook 接收Stripe事件回调（公开接口，靠签名校验）
// 签名校验需要原始请求体，不能经过JSON绑定
func (h *PaymentHandler) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBodySize))
	if err != nil {
		response.BadRequest(c, "failed to read request body")
		return
	}

	if err := h.service.HandleWebhook(payload, c.GetHeader("Stripe-Signature")); err != nil {
		response.BadRequest(c, "webhook signature verification failed")
		return
	}

	c.Status(http.StatusOK)
}
