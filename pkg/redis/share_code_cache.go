package redis

import (
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// 分享口令 -> 活动ID 的查询缓存
// 口令命中率高且活动ID不可变，缓存失效只依赖TTL

const shareCodeTTL = 24 * time.Hour

func shareCodeKey(code string) string {
	return fmt.Sprintf("share_code:%s", code)
}

// CacheShareCode 缓存分享口令对应的活动ID
func CacheShareCode(code string, eventID uint) error {
	if client == nil {
		return fmt.Errorf("redis客户端未初始化")
	}
	return client.Set(ctx, shareCodeKey(code), strconv.FormatUint(uint64(eventID), 10), shareCodeTTL).Err()
}

// GetCachedShareCode 查询分享口令缓存，未命中返回 (0, false)
func GetCachedShareCode(code string) (uint, bool) {
	if client == nil {
		return 0, false
	}
	val, err := client.Get(ctx, shareCodeKey(code)).Result()
	if err == goredis.Nil {
		return 0, false
	}
	if err != nil {
		return 0, false
	}
	id, err := strconv.ParseUint(val, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// InvalidateShareCode 删除分享口令缓存（活动被删除时调用）
func InvalidateShareCode(code string) error {
	if client == nil {
		return fmt.Errorf("redis客户端未初始化")
	}
	return client.Del(ctx, shareCodeKey(code)).Err()
}
