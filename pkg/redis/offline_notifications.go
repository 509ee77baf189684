package redis

import (
	"encoding/json"
	"fmt"
	"time"
)

// 离线通知存储
// 用户不在线时，邀请/好友请求等通知先落到Redis列表
// 用户上线后由WebSocket管理器取出推送并清空

const (
	offlineNotificationTTL = 7 * 24 * time.Hour
	maxOfflineNotification = 200
)

// OfflineNotification 离线通知
type OfflineNotification struct {
	Type      string                 `json:"type"`       // 通知类型
	FromUID   string                 `json:"from_uid"`   // 触发者uid
	Payload   map[string]interface{} `json:"payload"`    // 通知内容
	CreatedAt time.Time              `json:"created_at"` // 产生时间
}

func offlineNotificationKey(uid string) string {
	return fmt.Sprintf("offline_notifications:%s", uid)
}

// AddOfflineNotification 追加一条离线通知
func AddOfflineNotification(uid string, n *OfflineNotification) error {
	if client == nil {
		return fmt.Errorf("redis客户端未初始化")
	}

	data, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("序列化离线通知失败: %w", err)
	}

	key := offlineNotificationKey(uid)
	pipe := client.Pipeline()
	pipe.RPush(ctx, key, data)
	// 只保留最近的通知
	pipe.LTrim(ctx, key, -maxOfflineNotification, -1)
	pipe.Expire(ctx, key, offlineNotificationTTL)
	_, err = pipe.Exec(ctx)
	return err
}

// GetOfflineNotifications 获取最多limit条离线通知
func GetOfflineNotifications(uid string, limit int64) ([]*OfflineNotification, error) {
	if client == nil {
		return nil, fmt.Errorf("redis客户端未初始化")
	}

	vals, err := client.LRange(ctx, offlineNotificationKey(uid), 0, limit-1).Result()
	if err != nil {
		return nil, err
	}

	notifications := make([]*OfflineNotification, 0, len(vals))
	for _, v := range vals {
		var n OfflineNotification
		if err := json.Unmarshal([]byte(v), &n); err != nil {
			continue
		}
		notifications = append(notifications, &n)
	}
	return notifications, nil
}

// ClearOfflineNotifications 清空离线通知
func ClearOfflineNotifications(uid string) error {
	if client == nil {
		return fmt.Errorf("redis客户端未初始化")
	}
	return client.Del(ctx, offlineNotificationKey(uid)).Err()
}
