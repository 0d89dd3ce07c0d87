package querycache

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"
)

// Loader 缓存未命中或已失效时的取数函数
type Loader func(ctx context.Context) (interface{}, error)

// entry 缓存项：数据 + 取数时间 + 失效标记
type entry struct {
	data      interface{}
	fetchedAt time.Time
	stale     bool
}

// Cache 显式查询缓存
// key 由 (资源名, 序列化后的参数) 组成；写操作不回填数据，
// 只按资源前缀打失效标记，下次读取时重新拉取
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*entry
}

func New() *Cache {
	return &Cache{entries: make(map[string]*entry)}
}

// Key 生成缓存键：resource + 按键名排序后的参数串
// 参数顺序不影响命中
func Key(resource string, params map[string]string) string {
	if len(params) == 0 {
		return resource
	}

	keys := make([]string, 0, len(params))
	for k, v := range params {
		if v == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(resource)
	for _, k := range keys {
		b.WriteByte('?')
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(params[k])
	}
	return b.String()
}

// KeyJSON 以任意可序列化参数生成键 (过滤器结构体等)
func KeyJSON(resource string, params interface{}) string {
	if params == nil {
		return resource
	}
	raw, err := json.Marshal(params)
	if err != nil {
		return resource
	}
	return resource + "?" + string(raw)
}

// Get 读取缓存；stale 的键视为未命中，穿透到 loader 并回填
func (c *Cache) Get(ctx context.Context, key string, load Loader) (interface{}, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if ok && !e.stale {
		return e.data, nil
	}

	data, err := load(ctx)
	if err != nil {
		// 取数失败保留旧值不动，调用方自行决定是否展示
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = &entry{data: data, fetchedAt: time.Now()}
	c.mu.Unlock()

	return data, nil
}

// Peek 只读缓存，不穿透
func (c *Cache) Peek(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok || e.stale {
		return nil, false
	}
	return e.data, true
}

// InvalidatePrefix 把资源前缀命中的所有键标记为失效
// 数据本身保留，由下一次 Get 重新拉取覆盖
func (c *Cache) InvalidatePrefix(prefix string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for key, e := range c.entries {
		if strings.HasPrefix(key, prefix) && !e.stale {
			e.stale = true
			n++
		}
	}
	return n
}

// IsStale 查询某个键的失效状态，键不存在时也视为失效
func (c *Cache) IsStale(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	return !ok || e.stale
}

// Clear 清空缓存 (登出时使用)
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*entry)
}
