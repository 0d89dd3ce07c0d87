package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
)

// TokenSource 提供当前会话的 Bearer Token
// 返回空串表示当前未登录，请求将不携带 Authorization 头
type TokenSource interface {
	Token() string
}

// TokenSourceFunc 函数适配器
type TokenSourceFunc func() string

func (f TokenSourceFunc) Token() string { return f() }

// Options 单次请求参数
// Query 中值为空串的键会被忽略，不拼进 URL
type Options struct {
	Method  string
	Body    interface{}
	Query   map[string]string
	Headers map[string]string
}

// APIError 非 2xx 响应
// Payload 保留服务端原始响应体，由调用方决定如何恢复
type APIError struct {
	Status  int
	Payload []byte
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("upstream %d", e.Status)
}

// IsUnauthorized 判断错误是否为 401 类响应 (触发强制重新登录)
func IsUnauthorized(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Status == 401
}

// Client 上游 REST 网关客户端
// 每次调用就是一次网络往返：不重试、不超时、不缓存
type Client struct {
	base   string
	http   *resty.Client
	tokens TokenSource
}

// NewClient 创建网关客户端
// baseURL 形如 http://127.0.0.1:9090，尾部的 / 会被去掉
func NewClient(baseURL string, tokens TokenSource) *Client {
	client := resty.New().
		SetHeader("User-Agent", "KTV-Admin-Console/1.0")

	return &Client{
		base:   strings.TrimRight(baseURL, "/"),
		http:   client,
		tokens: tokens,
	}
}

// Request 发送一次请求，返回原始响应体
// JSON 的序列化由 resty 根据 Body 自动完成并带上 Content-Type
func (c *Client) Request(ctx context.Context, path string, opt Options) ([]byte, error) {
	resp, err := c.do(ctx, path, opt)
	if err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

func (c *Client) do(ctx context.Context, path string, opt Options) (*resty.Response, error) {
	method := opt.Method
	if method == "" {
		method = "GET"
	}

	req := c.http.R().SetContext(ctx)

	// 1. 查询参数：空值省略
	for k, v := range opt.Query {
		if v == "" {
			continue
		}
		req.SetQueryParam(k, v)
	}

	// 2. 鉴权头：有 token 才注入
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.SetHeader("Authorization", "Bearer "+token)
		}
	}

	// 3. JSON 请求体
	if opt.Body != nil {
		req.SetHeader("Content-Type", "application/json")
		req.SetBody(opt.Body)
	}

	for k, v := range opt.Headers {
		req.SetHeader(k, v)
	}

	resp, err := req.Execute(method, c.base+path)
	if err != nil {
		return nil, err
	}

	body := resp.Body()
	if resp.IsError() {
		return nil, &APIError{
			Status:  resp.StatusCode(),
			Payload: body,
			Message: extractMessage(body),
		}
	}

	return resp, nil
}

// JSON 发送请求并把响应体解析到 out
// out 为 nil 时只检查状态；响应未声明 JSON 类型时拒绝解析
func (c *Client) JSON(ctx context.Context, path string, opt Options, out interface{}) error {
	resp, err := c.do(ctx, path, opt)
	if err != nil {
		return err
	}
	body := resp.Body()
	if out == nil || len(body) == 0 {
		return nil
	}
	if ct := resp.Header().Get("Content-Type"); !strings.Contains(ct, "application/json") {
		return fmt.Errorf("上游响应不是 JSON (Content-Type: %s)", ct)
	}
	return json.Unmarshal(body, out)
}

// extractMessage 从错误响应体里提取 message 字段
func extractMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}
