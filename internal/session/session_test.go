package session

import (
	"path/filepath"
	"testing"
)

// ==================== 状态机 ====================

func TestSession_LoginLogout(t *testing.T) {
	sess := New(&MemoryTokenStore{})

	if sess.Authenticated() {
		t.Fatal("初始状态应为未登录")
	}

	if err := sess.Establish("tok-1"); err != nil {
		t.Fatalf("Establish 失败: %v", err)
	}
	if !sess.Authenticated() || sess.Token() != "tok-1" {
		t.Error("登录后应进入已登录态")
	}

	if err := sess.Invalidate(); err != nil {
		t.Fatalf("Invalidate 失败: %v", err)
	}
	if sess.Authenticated() {
		t.Error("失效后应回到未登录态")
	}
}

func TestSession_RestoresPersistedToken(t *testing.T) {
	store := &MemoryTokenStore{}
	store.Save("persisted")

	// 重启进程：持久化的 token 在，乐观进入已登录态
	sess := New(store)
	if !sess.Authenticated() || sess.Token() != "persisted" {
		t.Errorf("应恢复持久化 token, got %q", sess.Token())
	}
}

func TestSession_InvalidateClearsStore(t *testing.T) {
	store := &MemoryTokenStore{}
	sess := New(store)
	sess.Establish("tok")

	sess.Invalidate()

	if loaded, _ := store.Load(); loaded != "" {
		t.Errorf("Invalidate 后持久化存储应清空, got %q", loaded)
	}
}

// ==================== 文件存储 ====================

func TestFileTokenStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "token")
	store := NewFileTokenStore(path)

	// 文件不存在等同未登录
	token, err := store.Load()
	if err != nil || token != "" {
		t.Fatalf("缺失文件 Load = %q/%v, want 空/nil", token, err)
	}

	if err := store.Save("tok-abc"); err != nil {
		t.Fatalf("Save 失败: %v", err)
	}
	token, err = store.Load()
	if err != nil || token != "tok-abc" {
		t.Errorf("Load = %q/%v, want tok-abc/nil", token, err)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear 失败: %v", err)
	}
	token, _ = store.Load()
	if token != "" {
		t.Errorf("Clear 后 Load = %q, want 空", token)
	}

	// 重复 Clear 不报错
	if err := store.Clear(); err != nil {
		t.Errorf("重复 Clear 不应报错: %v", err)
	}
}
