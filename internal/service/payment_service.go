package service

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"ihost-backend/config"
	"ihost-backend/internal/model"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/customer"
	"github.com/stripe/stripe-go/v82/ephemeralkey"
	"github.com/stripe/stripe-go/v82/paymentintent"
	"github.com/stripe/stripe-go/v82/webhook"
	"go.uber.org/zap"
)

// 移动端SDK要求的临时密钥API版本
const ephemeralKeyAPIVersion = "2025-04-30.basil"

// PaymentService 支付服务（Stripe薄封装）
// 创建客户/临时密钥/支付意向，金额按最小货币单位换算
// Webhook只校验签名并记录日志，订单状态尚未落库
type PaymentService struct {
	cfg       config.StripeConfig
	eventRepo EventRepo
	userRepo  UserRepo
}

func NewPaymentService(cfg config.StripeConfig, eventRepo EventRepo, userRepo UserRepo) *PaymentService {
	stripe.Key = cfg.SecretKey
	return &PaymentService{cfg: cfg, eventRepo: eventRepo, userRepo: userRepo}
}

// PaymentIntentResult 下发给客户端的支付参数
type PaymentIntentResult struct {
	ClientSecret   string `json:"client_secret"`
	EphemeralKey   string `json:"ephemeral_key"`
	CustomerID     string `json:"customer_id"`
	PublishableKey string `json:"publishable_key"`
}

// CreatePaymentIntent 为活动票价创建支付意向
// 免费活动不能支付；Stripe客户按用户复用
func (s *PaymentService) CreatePaymentIntent(eventID uint, uid string) (*PaymentIntentResult, error) {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, fmt.Errorf("%w: event %d", ErrNotFound, eventID)
	}
	if event.Free || event.Price <= 0 {
		return nil, fmt.Errorf("%w: event is free", ErrValidation)
	}

	user, err := s.userRepo.GetByUID(uid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, uid)
	}

	customerID, err := s.ensureCustomer(user)
	if err != nil {
		return nil, err
	}

	ek, err := ephemeralkey.New(&stripe.EphemeralKeyParams{
		Customer:      stripe.String(customerID),
		StripeVersion: stripe.String(ephemeralKeyAPIVersion),
	})
	if err != nil {
		return nil, fmt.Errorf("create ephemeral key failed: %w", err)
	}

	// 换算为最小货币单位
	amount := int64(math.Round(event.Price * 100))

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(s.cfg.Currency),
		Customer: stripe.String(customerID),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("event_id", strconv.FormatUint(uint64(event.ID), 10))

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("create payment intent failed: %w", err)
	}

	return &PaymentIntentResult{
		ClientSecret:   pi.ClientSecret,
		EphemeralKey:   ek.Secret,
		CustomerID:     customerID,
		PublishableKey: s.cfg.PublishableKey,
	}, nil
}

// ensureCustomer 查找或创建用户对应的Stripe客户
func (s *PaymentService) ensureCustomer(user *model.User) (string, error) {
	if user.StripeCustomerID != "" {
		return user.StripeCustomerID, nil
	}

	params := &stripe.CustomerParams{
		Email: stripe.String(user.Email),
		Name:  stripe.String(user.Username),
	}
	params.AddMetadata("uid", user.UID)

	cust, err := customer.New(params)
	if err != nil {
		return "", fmt.Errorf("create customer failed: %w", err)
	}

	user.StripeCustomerID = cust.ID
	if err := s.userRepo.Update(user); err != nil {
		return "", err
	}
	return cust.ID, nil
}

// PublishableKey 下发给客户端的公钥
func (s *PaymentService) PublishableKey() string {
	return s.cfg.PublishableKey
}

// HandleWebhook 处理Stripe回调
// 校验签名后按事件类型分发；目前各分支只记录日志，不写订单/账本状态
func (s *PaymentService) HandleWebhook(payload []byte, signatureHeader string) error {
	event, err := webhook.ConstructEvent(payload, signatureHeader, s.cfg.WebhookSecret)
	if err != nil {
		return fmt.Errorf("%w: webhook signature verification failed", ErrValidation)
	}

	switch string(event.Type) {
	case "payment_intent.succeeded":
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
			return fmt.Errorf("parse payment intent failed: %w", err)
		}
		zap.L().Info("支付成功",
			zap.String("payment_intent_id", pi.ID),
			zap.Int64("amount", pi.Amount),
			zap.String("event_id", pi.Metadata["event_id"]),
		)
	case "payment_intent.payment_failed":
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
			return fmt.Errorf("parse payment intent failed: %w", err)
		}
		zap.L().Warn("支付失败",
			zap.String("payment_intent_id", pi.ID),
			zap.String("event_id", pi.Metadata["event_id"]),
		)
	case "payment_method.attached":
		var pm stripe.PaymentMethod
		if err := json.Unmarshal(event.Data.Raw, &pm); err != nil {
			return fmt.Errorf("parse payment method failed: %w", err)
		}
		zap.L().Info("支付方式已绑定", zap.String("payment_method_id", pm.ID))
	default:
		zap.L().Debug("未处理的webhook事件", zap.String("type", string(event.Type)))
	}

	return nil
}
