package session

import (
	"log"
	"sync"
)

// Session 控制台会话，两个状态：Anonymous / Authenticated
// 启动时若存在持久化 token 则乐观进入 Authenticated，不向上游验证；
// 上游一旦返回 401，由调用方触发 Invalidate 强制回到登录
type Session struct {
	mu    sync.RWMutex
	token string
	store TokenStore
}

// New 创建会话并尝试恢复持久化的 token
func New(store TokenStore) *Session {
	s := &Session{store: store}
	if store != nil {
		token, err := store.Load()
		if err != nil {
			log.Printf("[session] 恢复持久化 token 失败: %v", err)
		} else {
			s.token = token
		}
	}
	return s
}

// Token 当前 token，空串表示未登录
// 实现 rest.TokenSource
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Authenticated 是否处于已登录态
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// Establish 登录成功：持久化 token 并翻转状态
func (s *Session) Establish(token string) error {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	if s.store != nil {
		return s.store.Save(token)
	}
	return nil
}

// Invalidate 登出或 token 失效：清持久化存储并回到 Anonymous
func (s *Session) Invalidate() error {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()

	if s.store != nil {
		return s.store.Clear()
	}
	return nil
}
