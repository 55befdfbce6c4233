package config

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

// TestLogBeforeSetup 未调用 SetupLogger 时日志函数也必须可用，不能空指针崩溃
func TestLogBeforeSetup(t *testing.T) {
	if InfoLogger == nil || WarningLogger == nil || ErrorLogger == nil {
		t.Fatal("日志记录器声明时应已初始化")
	}

	// 直接调用不应 panic
	Info("启动检查: %s", "info")
	Warning("启动检查: %s", "warning")
	Error("启动检查: %s", "error")
}

// TestLogOutput 校验日志格式化输出
func TestLogOutput(t *testing.T) {
	var buf bytes.Buffer
	orig := WarningLogger
	WarningLogger = log.New(&buf, "WARNING: ", log.Ldate|log.Ltime)
	defer func() { WarningLogger = orig }()

	Warning("会话缓存降级: %s", "redis不可用")

	got := buf.String()
	if !strings.Contains(got, "WARNING: ") || !strings.Contains(got, "会话缓存降级: redis不可用") {
		t.Errorf("日志输出不符合预期: %q", got)
	}
}
