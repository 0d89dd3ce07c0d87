package task

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/internal/api"
	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/internal/session"
)

// TokenTask 会话保活任务
// 已登录时定期向上游换新 token，避免长时间挂机后第一笔操作吃 401
type TokenTask struct {
	auth    *api.Auth
	session *session.Session
	cron    *cron.Cron
}

func NewTokenTask(auth *api.Auth, sess *session.Session) *TokenTask {
	return &TokenTask{
		auth:    auth,
		session: sess,
		cron:    cron.New(cron.WithSeconds()),
	}
}

// Start 启动定时刷新，每 40 分钟一轮
func (t *TokenTask) Start() {
	_, err := t.cron.AddFunc("0 0/40 * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		t.refreshJob(ctx)
	})
	if err != nil {
		log.Fatalf("无法启动 token 保活任务: %v", err)
	}

	t.cron.Start()
	log.Println("token 保活任务已启动 (每40分钟刷新一次)")
}

// Stop 停止任务
func (t *TokenTask) Stop() {
	t.cron.Stop()
}

func (t *TokenTask) refreshJob(ctx context.Context) {
	if !t.session.Authenticated() {
		return
	}

	token, err := t.auth.Refresh(ctx, map[string]string{"token": t.session.Token()})
	if err != nil {
		// 刷新失败只记日志，等业务请求吃 401 时再强制重登
		log.Printf("[task] token 刷新失败: %v", err)
		return
	}

	if err := t.session.Establish(token); err != nil {
		log.Printf("[task] 新 token 持久化失败: %v", err)
	}
}
