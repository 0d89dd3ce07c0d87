package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// ==================== 测试辅助 ====================

// captureServer 记录最后一次收到的请求
type capturedRequest struct {
	Method string
	Path   string
	Query  map[string]string
	Auth   string
	Body   map[string]interface{}
}

func captureServer(t *testing.T, status int, respBody string) (*httptest.Server, *capturedRequest) {
	captured := &capturedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.Method = r.Method
		captured.Path = r.URL.Path
		captured.Query = map[string]string{}
		for k := range r.URL.Query() {
			captured.Query[k] = r.URL.Query().Get(k)
		}
		captured.Auth = r.Header.Get("Authorization")
		if r.Body != nil {
			json.NewDecoder(r.Body).Decode(&captured.Body)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(respBody))
	}))
	t.Cleanup(srv.Close)
	return srv, captured
}

func staticToken(token string) TokenSource {
	return TokenSourceFunc(func() string { return token })
}

// ==================== 请求构造 ====================

func TestClient_EmptyQueryOmitted(t *testing.T) {
	srv, captured := captureServer(t, 200, `{}`)
	client := NewClient(srv.URL, nil)

	_, err := client.Request(context.Background(), "/api/admin/members", Options{
		Query: map[string]string{"page": "1", "keyword": "", "salesId": ""},
	})
	if err != nil {
		t.Fatalf("请求失败: %v", err)
	}

	if captured.Query["page"] != "1" {
		t.Errorf("page = %s, want 1", captured.Query["page"])
	}
	if _, ok := captured.Query["keyword"]; ok {
		t.Error("空值 keyword 不应出现在 URL 上")
	}
	if _, ok := captured.Query["salesId"]; ok {
		t.Error("空值 salesId 不应出现在 URL 上")
	}
}

func TestClient_BearerInjection(t *testing.T) {
	srv, captured := captureServer(t, 200, `{}`)
	client := NewClient(srv.URL, staticToken("abc123"))

	client.Request(context.Background(), "/api/admin/stores", Options{})

	if captured.Auth != "Bearer abc123" {
		t.Errorf("Authorization = %q, want Bearer abc123", captured.Auth)
	}
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	srv, captured := captureServer(t, 200, `{}`)
	client := NewClient(srv.URL, staticToken(""))

	client.Request(context.Background(), "/api/auth/admin/login", Options{
		Method: "POST",
		Body:   map[string]string{"username": "admin"},
	})

	if captured.Auth != "" {
		t.Errorf("未登录状态不应带 Authorization 头, got %q", captured.Auth)
	}
	if captured.Method != "POST" {
		t.Errorf("Method = %s, want POST", captured.Method)
	}
	if captured.Body["username"] != "admin" {
		t.Errorf("请求体未正确序列化: %v", captured.Body)
	}
}

// ==================== 错误处理 ====================

func TestClient_APIErrorWithMessage(t *testing.T) {
	srv, _ := captureServer(t, 500, `{"message":"内部错误"}`)
	client := NewClient(srv.URL, nil)

	_, err := client.Request(context.Background(), "/api/admin/members", Options{})
	if err == nil {
		t.Fatal("5xx 应返回错误")
	}

	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("错误类型 = %T, want *APIError", err)
	}
	if apiErr.Status != 500 {
		t.Errorf("Status = %d, want 500", apiErr.Status)
	}
	if apiErr.Message != "内部错误" {
		t.Errorf("Message = %q, want 内部错误", apiErr.Message)
	}
}

func TestClient_ErrorFieldFallback(t *testing.T) {
	srv, _ := captureServer(t, 400, `{"error":"参数缺失"}`)
	client := NewClient(srv.URL, nil)

	_, err := client.Request(context.Background(), "/x", Options{})
	apiErr, ok := err.(*APIError)
	if !ok || apiErr.Message != "参数缺失" {
		t.Errorf("应从 error 字段提取消息, got %v", err)
	}
}

func TestIsUnauthorized(t *testing.T) {
	srv, _ := captureServer(t, 401, `{"message":"token 无效或已过期"}`)
	client := NewClient(srv.URL, staticToken("expired"))

	_, err := client.Request(context.Background(), "/api/admin/members", Options{})
	if !IsUnauthorized(err) {
		t.Errorf("401 响应应被识别为未授权, got %v", err)
	}

	srv2, _ := captureServer(t, 500, `{}`)
	client2 := NewClient(srv2.URL, nil)
	_, err2 := client2.Request(context.Background(), "/x", Options{})
	if IsUnauthorized(err2) {
		t.Error("500 不应被识别为未授权")
	}
}

// ==================== JSON 反序列化 ====================

func TestClient_JSON(t *testing.T) {
	srv, _ := captureServer(t, 200, `{"code":200,"success":true,"data":{"id":7,"name":"旗舰店"}}`)
	client := NewClient(srv.URL, nil)

	var out struct {
		Code    int  `json:"code"`
		Success bool `json:"success"`
		Data    struct {
			ID   int64  `json:"id"`
			Name string `json:"name"`
		} `json:"data"`
	}
	if err := client.JSON(context.Background(), "/api/admin/stores/7", Options{}, &out); err != nil {
		t.Fatalf("JSON 请求失败: %v", err)
	}

	if out.Data.ID != 7 || out.Data.Name != "旗舰店" {
		t.Errorf("解析结果 = %+v", out)
	}
}

func TestClient_JSONRejectsNonJSONContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(`<html>502 Bad Gateway</html>`))
	}))
	t.Cleanup(srv.Close)
	client := NewClient(srv.URL, nil)

	var out map[string]interface{}
	err := client.JSON(context.Background(), "/api/admin/stores", Options{}, &out)
	if err == nil {
		t.Fatal("非 JSON 响应不应被解析")
	}

	// 原始请求不受内容类型限制
	body, err := client.Request(context.Background(), "/api/admin/stores", Options{})
	if err != nil || len(body) == 0 {
		t.Errorf("Request 应原样返回响应体: %v", err)
	}
}
