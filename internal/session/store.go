package session

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// TokenStore 持久化一枚 Bearer Token
// 文件不存在等同于未登录
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// FileTokenStore 单文件 token 存储
type FileTokenStore struct {
	path string
}

func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

func (f *FileTokenStore) Load() (string, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}

func (f *FileTokenStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(f.path, []byte(token), 0o600)
}

func (f *FileTokenStore) Clear() error {
	err := os.Remove(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// MemoryTokenStore 测试用的内存实现
type MemoryTokenStore struct {
	token string
}

func (m *MemoryTokenStore) Load() (string, error) { return m.token, nil }
func (m *MemoryTokenStore) Save(t string) error   { m.token = t; return nil }
func (m *MemoryTokenStore) Clear() error          { m.token = ""; return nil }
