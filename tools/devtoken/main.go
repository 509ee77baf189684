package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"ihost-backend/config"
	"ihost-backend/pkg/jwt"
)

// 本地开发用：签发一个可直接放到Authorization头里的令牌
// 生产环境令牌由外部身份服务签发，这个工具只用于联调
func main() {
	uid := flag.String("uid", "", "token subject uid")
	email := flag.String("email", "", "optional email claim")
	flag.Parse()

	if *uid == "" {
		log.Fatal("usage: devtoken -uid <uid> [-email <email>]")
	}

	cfg := config.LoadConfig()
	jwtSvc := jwt.NewJWTService(cfg.JWT)

	extra := map[string]interface{}{}
	if *email != "" {
		extra["email"] = *email
	}

	token, err := jwtSvc.GenerateToken(*uid, extra)
	if err != nil {
		log.Fatalf("token generation failed: %v", err)
	}

	fmt.Printf("uid:     %s\n", *uid)
	fmt.Printf("expires: %s\n", time.Now().Add(cfg.JWT.ExpireTime).Format(time.RFC3339))
	fmt.Printf("\nAuthorization: Bearer %s\n", token)
}
