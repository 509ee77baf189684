package websocket

import (
	"encoding/json"
	"sync"
	"time"

	"ihost-backend/pkg/redis"

	"github.com/gorilla/websocket"
)

// Client 代表一个WebSocket连接的用户
type Client struct {
	UID  string
	Conn *websocket.Conn
	Send chan []byte
}

// Manager 管理所有在线用户的WebSocket连接
// 在线用户直接推送通知，离线用户的通知落到Redis，上线时补推

type Manager struct {
	clients map[string]*Client // 在线用户，key为uid
	lock    sync.RWMutex
}

var manager = &Manager{
	clients: make(map[string]*Client),
}

// GetManager 获取全局WebSocket管理器
func GetManager() *Manager {
	return manager
}

// AddClient 添加新连接
func (m *Manager) AddClient(uid string, client *Client) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.clients[uid] = client

	// 补推Redis中的离线通知
	go m.pushOfflineNotifications(uid, client)
}

// RemoveClient 移除连接
func (m *Manager) RemoveClient(uid string) {
	m.lock.Lock()
	defer m.lock.Unlock()
	if c, ok := m.clients[uid]; ok {
		close(c.Send)
		delete(m.clients, uid)
	}
}

// IsOnline 判断用户是否在线
func (m *Manager) IsOnline(uid string) bool {
	m.lock.RLock()
	defer m.lock.RUnlock()
	_, ok := m.clients[uid]
	return ok
}

// NotifyUser 向指定用户推送一条通知
// 用户不在线时写入Redis离线通知
func (m *Manager) NotifyUser(uid, notifyType, fromUID string, payload map[string]interface{}) {
	n := &redis.OfflineNotification{
		Type:      notifyType,
		FromUID:   fromUID,
		Payload:   payload,
		CreatedAt: time.Now(),
	}

	m.lock.RLock()
	client, ok := m.clients[uid]
	m.lock.RUnlock()

	if !ok {
		// 不在线，存储到Redis
		go func() {
			_ = redis.AddOfflineNotification(uid, n)
		}()
		return
	}

	data, err := json.Marshal(map[string]interface{}{
		"type":       n.Type,
		"from_uid":   n.FromUID,
		"payload":    n.Payload,
		"created_at": n.CreatedAt.Format(time.RFC3339),
	})
	if err != nil {
		return
	}

	select {
	case client.Send <- data:
	default:
		// 发送缓冲已满，可能连接已断开
	}
}

// pushOfflineNotifications 上线时补推离线通知
func (m *Manager) pushOfflineNotifications(uid string, client *Client) {
	notifications, err := redis.GetOfflineNotifications(uid, 50)
	if err != nil {
		return
	}

	for _, n := range notifications {
		data, err := json.Marshal(map[string]interface{}{
			"type":       n.Type,
			"from_uid":   n.FromUID,
			"payload":    n.Payload,
			"created_at": n.CreatedAt.Format(time.RFC3339),
			"offline":    true,
		})
		if err != nil {
			continue
		}

		select {
		case client.Send <- data:
		case <-time.After(5 * time.Second):
			// 发送超时，停止补推
			return
		}
	}

	// 补推完成后清空
	_ = redis.ClearOfflineNotifications(uid)
}
