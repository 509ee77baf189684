package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ihost-backend/config"
	"ihost-backend/internal/handler"
	"ihost-backend/internal/model"
	"ihost-backend/internal/repository"
	"ihost-backend/internal/service"
	dbPkg "ihost-backend/pkg/db"
	"ihost-backend/pkg/jwt"
	"ihost-backend/pkg/logger"
	redisPkg "ihost-backend/pkg/redis"
	"ihost-backend/pkg/response"
	"ihost-backend/pkg/storage"
	"ihost-backend/pkg/websocket"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// 1. 加载配置
	cfg := config.LoadConfig()

	// 2. 初始化日志系统
	log := logger.InitLogger(cfg.Log)
	defer log.Sync()

	log.Info("=== iHost后端启动 ===")
	log.Info("服务器配置信息",
		zap.String("port", cfg.Server.Port),
		zap.String("database_host", cfg.Database.Host),
		zap.Int("database_port", cfg.Database.Port),
		zap.String("database_name", cfg.Database.Database),
		zap.String("jwt_issuer", cfg.JWT.Issuer),
		zap.String("storage_bucket", cfg.Storage.Bucket),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. 初始化数据库连接
	if _, err := dbPkg.InitDB(cfg.Database); err != nil {
		log.Fatal("数据库连接失败", zap.Error(err))
	}
	defer func() {
		if err := dbPkg.CloseDB(); err != nil {
			log.Error("关闭数据库连接失败", zap.Error(err))
		}
	}()
	log.Info("数据库连接成功")

	// 3.1 自动迁移表结构
	if err := dbPkg.AutoMigrate(
		&model.User{},
		&model.Event{},
		&model.EventUser{},
		&model.Friendship{},
		&model.Image{},
	); err != nil {
		log.Fatal("自动迁移失败", zap.Error(err))
	}
	log.Info("自动迁移完成")

	// 3.2 初始化Redis（缓存和离线通知，连不上不阻塞启动）
	if err := redisPkg.InitRedis(cfg.Redis); err != nil {
		log.Warn("Redis连接失败，缓存与离线通知不可用", zap.Error(err))
	} else {
		log.Info("Redis连接成功")
		defer redisPkg.Close()
	}

	// 3.3 初始化对象存储
	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		log.Fatal("对象存储初始化失败", zap.Error(err))
	}
	log.Info("对象存储初始化成功")

	// 3.4 初始化业务服务
	jwtSvc := jwt.NewJWTService(cfg.JWT)
	userRepo := repository.NewUserRepository(dbPkg.GetDB())
	eventRepo := repository.NewEventRepository(dbPkg.GetDB())
	euRepo := repository.NewEventUserRepository(dbPkg.GetDB())
	friendshipRepo := repository.NewFriendshipRepository(dbPkg.GetDB())
	imageRepo := repository.NewImageRepository(dbPkg.GetDB())

	userSvc := service.NewUserService(userRepo)
	eventSvc := service.NewEventService(eventRepo, euRepo)
	euSvc := service.NewEventUserService(euRepo, eventRepo)
	friendshipSvc := service.NewFriendshipService(friendshipRepo)
	imageSvc := service.NewImageService(imageRepo, eventRepo, userRepo, store)
	paymentSvc := service.NewPaymentService(cfg.Stripe, eventRepo, userRepo)

	userHandler := handler.NewUserHandler(userSvc)
	eventHandler := handler.NewEventHandler(eventSvc)
	euHandler := handler.NewEventUserHandler(euSvc)
	friendshipHandler := handler.NewFriendshipHandler(friendshipSvc)
	imageHandler := handler.NewImageHandler(imageSvc)
	paymentHandler := handler.NewPaymentHandler(paymentSvc)

	// 4. 设置Gin模式
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 5. 创建Gin路由
	router := gin.New()

	// 注入配置到Gin context，供WebSocket使用
	router.Use(func(c *gin.Context) {
		c.Set("jwt_config", cfg.JWT)
		c.Set("ws_config", cfg.WebSocket)
		c.Next()
	})

	// 使用中间件
	router.Use(logger.LoggerMiddleware())      // 自定义日志中间件
	router.Use(logger.ErrorLoggerMiddleware()) // 错误日志中间件

	// 6. 健康检查
	router.GET("/health", func(c *gin.Context) {
		status := "UP"
		if err := dbPkg.HealthCheck(); err != nil {
			status = "DOWN"
		}
		response.Success(c, gin.H{
			"status": status,
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// 6.1 绑定业务路由
	api := router.Group("/api")
	{
		users := api.Group("/users")
		{
			// 公开接口（无需认证）
			users.GET("/:uid", userHandler.GetByUID)

			// 需要认证的接口
			authUsers := users.Group("")
			authUsers.Use(jwtSvc.AuthMiddleware()) // 应用JWT中间件
			{
				authUsers.POST("/register", userHandler.Register)
				authUsers.GET("", userHandler.List)
				authUsers.PUT("/:uid", userHandler.Update)
				authUsers.GET("/username-available/:username", userHandler.UsernameAvailable)
			}
		}

		// 活动路由（需要认证）
		events := api.Group("/events")
		events.Use(jwtSvc.AuthMiddleware())
		{
			events.POST("", eventHandler.Create)                         // 创建活动
			events.GET("", eventHandler.List)                            // 列出活动
			events.GET("/:id", eventHandler.GetByID)                     // 活动详情
			events.PUT("/:id", eventHandler.Update)                      // 更新活动
			events.DELETE("/:id", eventHandler.Delete)                   // 删除活动
			events.GET("/by-code/:shareCode", eventHandler.GetByShareCode) // 分享口令访问
		}

		// 活动成员路由（需要认证）
		eventUsers := api.Group("/event-users")
		eventUsers.Use(jwtSvc.AuthMiddleware())
		{
			eventUsers.POST("/invite", euHandler.Invite)                // 批量邀请
			eventUsers.POST("/:id/accept", euHandler.Accept)            // 接受邀请
			eventUsers.POST("/:id/decline", euHandler.Decline)          // 拒绝邀请
			eventUsers.GET("/event/:eventId", euHandler.EventAttendees) // 活动成员列表
			eventUsers.GET("/my-events", euHandler.MyEvents)            // 我参与的活动
		}

		// 好友路由（需要认证）
		friendships := api.Group("/friendships")
		friendships.Use(jwtSvc.AuthMiddleware())
		{
			friendships.POST("/request", friendshipHandler.SendRequest)  // 发送好友申请
			friendships.POST("/:id/accept", friendshipHandler.Accept)    // 接受申请
			friendships.POST("/:id/decline", friendshipHandler.Decline)  // 拒绝申请
			friendships.DELETE("/:id", friendshipHandler.Remove)         // 删除好友关系
			friendships.GET("/pending", friendshipHandler.Pending)       // 收到的待处理申请
			friendships.GET("/sent", friendshipHandler.Sent)             // 发出的待处理申请
			friendships.GET("/friends", friendshipHandler.Friends)       // 好友列表
		}

		// 图片路由（需要认证）
		images := api.Group("/images")
		images.Use(jwtSvc.AuthMiddleware())
		{
			images.POST("/upload", imageHandler.UploadEventImage)          // 上传活动图片
			images.POST("/upload-profile", imageHandler.UploadProfileImage) // 上传头像
			images.GET("/event/:eventId", imageHandler.ListByEvent)        // 活动图片列表
			images.DELETE("/:id", imageHandler.Delete)                     // 删除图片
		}

		// 支付路由
		stripeGroup := api.Group("/stripe")
		{
			// webhook为公开接口，靠Stripe签名校验
			stripeGroup.POST("/webhook", paymentHandler.Webhook)

			authStripe := stripeGroup.Group("")
			authStripe.Use(jwtSvc.AuthMiddleware())
			{
				authStripe.POST("/payment-intent", paymentHandler.CreatePaymentIntent) // 创建支付意向
				authStripe.GET("/keys", paymentHandler.Keys)                           // 客户端公开密钥
			}
		}
	}

	// WebSocket路由
	router.GET("/ws", websocket.WsHandler)

	// 7. 创建HTTP服务器
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// 8. 启动HTTP服务器
	go func() {
		log.Info("HTTP服务器启动", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP服务器启动失败", zap.Error(err))
		}
	}()

	// 9. 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("正在关闭服务器...")

	// 设置关闭超时
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// 关闭HTTP服务器
	if err := server.Shutdown(ctx); err != nil {
		log.Error("HTTP服务器关闭失败", zap.Error(err))
	}

	log.Info("服务器已安全关闭")
}
