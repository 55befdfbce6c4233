package middleware

import "testing"

// TestDecide 验证路由守卫的裁决表
func TestDecide(t *testing.T) {
	tests := []struct {
		name         string
		role         string
		requiredRole string
		want         GuardDecision
	}{
		{"未登录访问公开角色页", "", "victim", RedirectLogin},
		{"未登录访问任意登录页", "", "", RedirectLogin},
		{"角色匹配", "victim", "victim", Allow},
		{"角色不匹配", "victim", "admin", RedirectUnauthorized},
		{"警员访问管理员页", "officer", "admin", RedirectUnauthorized},
		{"任意登录角色", "officer", "", Allow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decide(tt.role, tt.requiredRole); got != tt.want {
				t.Errorf("Decide(%q, %q) = %v, want %v", tt.role, tt.requiredRole, got, tt.want)
			}
		})
	}
}
