package api

import (
	"context"
	"encoding/json"

	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/pkg/rest"
)

// Auth 鉴权门面
type Auth struct {
	client *rest.Client
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResp struct {
	Token string `json:"token"`
}

// AdminLogin 管理员登录，成功返回 Bearer Token
func (a *Auth) AdminLogin(ctx context.Context, username, password string) (string, error) {
	data, err := call(ctx, a.client, "/api/auth/admin/login", rest.Options{
		Method: "POST",
		Body:   loginReq{Username: username, Password: password},
	})
	if err != nil {
		return "", err
	}
	var resp tokenResp
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// Logout 通知上游注销当前 token
func (a *Auth) Logout(ctx context.Context) error {
	_, err := call(ctx, a.client, "/api/auth/logout", rest.Options{Method: "POST"})
	return err
}

// Refresh 刷新 token，body 原样透传
func (a *Auth) Refresh(ctx context.Context, body interface{}) (string, error) {
	data, err := call(ctx, a.client, "/api/auth/refresh", rest.Options{
		Method: "POST",
		Body:   body,
	})
	if err != nil {
		return "", err
	}
	var resp tokenResp
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}
