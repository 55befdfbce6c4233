package services

import (
	"testing"
	"time"
)

// TestSessionReadWrite 验证内存模式下的读写与默认值
func TestSessionReadWrite(t *testing.T) {
	svc := NewSessionService(nil)

	if got := svc.Read("sid-1", "name", "Guest"); got != "Guest" {
		t.Errorf("未写入时 Read = %q, want 默认值 Guest", got)
	}

	if err := svc.Write("sid-1", "name", "Alice"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := svc.Read("sid-1", "name", "Guest"); got != "Alice" {
		t.Errorf("Read = %q, want Alice", got)
	}

	// 不同会话互不可见
	if got := svc.Read("sid-2", "name", "Guest"); got != "Guest" {
		t.Errorf("跨会话 Read = %q, want Guest", got)
	}
}

// TestSessionSubscribe 验证写入事件会广播给订阅者
func TestSessionSubscribe(t *testing.T) {
	svc := NewSessionService(nil)

	events, cancel := svc.Subscribe()
	defer cancel()

	if err := svc.Write("sid-1", "phone", "01700000000"); err != nil {
		t.Fatalf("Write: %v", err)
	}

	select {
	case event := <-events:
		if event.SessionID != "sid-1" || event.Key != "phone" || event.Value != "01700000000" {
			t.Errorf("事件内容 = %+v", event)
		}
	case <-time.After(time.Second):
		t.Fatal("订阅者1秒内未收到事件")
	}
}

// TestSessionSubscribeCancel 验证取消订阅后通道关闭
func TestSessionSubscribeCancel(t *testing.T) {
	svc := NewSessionService(nil)

	events, cancel := svc.Subscribe()
	cancel()

	if _, ok := <-events; ok {
		t.Error("取消订阅后通道应已关闭")
	}

	// 取消后写入不应panic
	if err := svc.Write("sid-1", "name", "Alice"); err != nil {
		t.Fatalf("Write: %v", err)
	}
}

// TestSessionClear 验证登出清空整个会话
func TestSessionClear(t *testing.T) {
	svc := NewSessionService(nil)

	svc.Write("sid-1", "name", "Alice")
	svc.Write("sid-1", "email", "alice@example.com")

	if err := svc.Clear("sid-1"); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if got := svc.Read("sid-1", "name", "Guest"); got != "Guest" {
		t.Errorf("清空后 Read = %q, want Guest", got)
	}
}
