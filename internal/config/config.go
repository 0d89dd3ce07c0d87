package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

// DefaultUpstream 开发环境后端地址，未配置时的兜底
const DefaultUpstream = "http://127.0.0.1:9090"

// Config 全局配置结构
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Upstream UpstreamConfig `mapstructure:"upstream"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug / release
}

type UpstreamConfig struct {
	BaseURL   string `mapstructure:"base_url"`
	TokenFile string `mapstructure:"token_file"` // 持久化会话 token 的文件
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load 加载配置文件，环境变量 KTV_* 可覆盖同名配置项
// 配置文件缺失不致命，全部走默认值
func Load(configPath string) *Config {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("upstream.base_url", DefaultUpstream)
	v.SetDefault("upstream.token_file", ".ktv/token")
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix("KTV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		log.Printf("配置文件读取失败，使用默认配置: %v", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		log.Fatalf("解析配置失败: %v", err)
	}
	return cfg
}
