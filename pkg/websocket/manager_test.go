package websocket

import (
	"encoding/json"
	"testing"
	"time"
)

func TestManager_OnlineLifecycle(t *testing.T) {
	m := GetManager()
	client := &Client{UID: "ws-u1", Send: make(chan []byte, 8)}

	if m.IsOnline("ws-u1") {
		t.Fatal("IsOnline() = true before AddClient")
	}

	m.AddClient("ws-u1", client)
	defer m.RemoveClient("ws-u1")

	if !m.IsOnline("ws-u1") {
		t.Fatal("IsOnline() = false after AddClient")
	}

	m.NotifyUser("ws-u1", "invitation", "ws-u2", map[string]interface{}{"event_id": 7})

	select {
	case data := <-client.Send:
		var msg map[string]interface{}
		if err := json.Unmarshal(data, &msg); err != nil {
			t.Fatalf("unmarshal notification failed: %v", err)
		}
		if msg["type"] != "invitation" {
			t.Errorf("type = %v, want %q", msg["type"], "invitation")
		}
		if msg["from_uid"] != "ws-u2" {
			t.Errorf("from_uid = %v, want %q", msg["from_uid"], "ws-u2")
		}
	case <-time.After(time.Second):
		t.Fatal("notification not delivered to online client")
	}
}

func TestManager_RemoveClient(t *testing.T) {
	m := GetManager()
	client := &Client{UID: "ws-u3", Send: make(chan []byte, 8)}

	m.AddClient("ws-u3", client)
	m.RemoveClient("ws-u3")

	if m.IsOnline("ws-u3") {
		t.Error("IsOnline() = true after RemoveClient")
	}
	// Send通道应已关闭
	select {
	case _, ok := <-client.Send:
		if ok {
			t.Error("Send channel delivered data after RemoveClient")
		}
	default:
		t.Error("Send channel not closed after RemoveClient")
	}
}

func TestManager_NotifyOfflineUser(t *testing.T) {
	m := GetManager()

	// 不在线的用户走离线存储路径，不应panic或阻塞
	m.NotifyUser("ws-nobody", "friend_request", "ws-u2", nil)

	if m.IsOnline("ws-nobody") {
		t.Error("IsOnline() = true for user who never connected")
	}
}
