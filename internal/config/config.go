// Package config 加载命令行工具的配置。
//
// 优先级从高到低：命令行参数、TYPEAHEAD_* 环境变量、配置文件、默认值。
//
// 配置文件示例（YAML）：
//
//	data_url: "http://localhost:8080/countries"
//	item_title: "name"
//	item_value: "code"
//	min_chars: 1
//	debounce_ms: 200
//	extra_params:
//	  limit: "20"
//	cache: true
//	cache_ttl: 10m
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/wxnacy/typeahead"
	"github.com/wxnacy/typeahead/internal/history"
	"github.com/wxnacy/typeahead/pkg/cache"
)

const (
	EnvPrefix = "TYPEAHEAD"
	AppName   = "typeahead"
)

type Config struct {
	DataURL         string            `mapstructure:"data_url"`
	Items           []any             `mapstructure:"items"`
	ItemTitle       string            `mapstructure:"item_title"`
	ItemValue       string            `mapstructure:"item_value"`
	AutoSelectFirst bool              `mapstructure:"auto_select_first"`
	Clearable       bool              `mapstructure:"clearable"`
	ClearIcon       string            `mapstructure:"clear_icon"`
	HideNoData      bool              `mapstructure:"hide_no_data"`
	MinChars        int               `mapstructure:"min_chars"`
	DebounceMs      int               `mapstructure:"debounce_ms"`
	RequestParam    string            `mapstructure:"request_param"`
	ExtraParams     map[string]string `mapstructure:"extra_params"`
	Placeholder     string            `mapstructure:"placeholder"`
	Cache           bool              `mapstructure:"cache"`
	CacheDir        string            `mapstructure:"cache_dir"`
	CacheTTL        time.Duration     `mapstructure:"cache_ttl"`
	LogFile         string            `mapstructure:"log_file"`
	LogLevel        string            `mapstructure:"log_level"`
	History         bool              `mapstructure:"history"`
	HistoryFile     string            `mapstructure:"history_file"`
}

// SetDefaults 写入与组件一致的默认值
func SetDefaults(v *viper.Viper) {
	def := typeahead.DefaultConfig()
	// 没有默认值的键也要注册，环境变量才能在 Unmarshal 时生效
	v.SetDefault("data_url", "")
	v.SetDefault("placeholder", "")
	v.SetDefault("cache_dir", "")
	v.SetDefault("log_file", "")
	v.SetDefault("item_title", def.ItemTitle)
	v.SetDefault("item_value", def.ItemValue)
	v.SetDefault("auto_select_first", def.AutoSelectFirst)
	v.SetDefault("clearable", def.Clearable)
	v.SetDefault("clear_icon", def.ClearIcon)
	v.SetDefault("hide_no_data", def.HideNoData)
	v.SetDefault("min_chars", def.MinChars)
	v.SetDefault("debounce_ms", int(def.Debounce/time.Millisecond))
	v.SetDefault("request_param", def.RequestParam)
	v.SetDefault("cache", false)
	v.SetDefault("cache_ttl", def.CacheTTL)
	v.SetDefault("log_level", logrus.InfoLevel.String())
	v.SetDefault("history", true)
	v.SetDefault("history_file", history.DefaultPath())
}

// Load 读取配置文件与环境变量。path 为空时在当前目录和用户配置目录中查找 typeahead.{yaml,toml,json}，找不到不算错误。
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName(AppName)
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, AppName))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.DataURL == "" && c.Items == nil {
		return errors.New("either data_url or items must be set")
	}
	if c.MinChars < 0 {
		return fmt.Errorf("min_chars must not be negative, got %d", c.MinChars)
	}
	if c.DebounceMs < 0 {
		return fmt.Errorf("debounce_ms must not be negative, got %d", c.DebounceMs)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("cache_ttl must not be negative, got %s", c.CacheTTL)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}
	return nil
}

// Options 转换为组件配置，不包含缓存
func (c *Config) Options() []typeahead.Option {
	opts := []typeahead.Option{
		typeahead.WithItemFields(c.ItemTitle, c.ItemValue),
		typeahead.WithAutoSelectFirst(c.AutoSelectFirst),
		typeahead.WithClearable(c.Clearable),
		typeahead.WithHideNoData(c.HideNoData),
		typeahead.WithMinChars(c.MinChars),
		typeahead.WithDebounce(time.Duration(c.DebounceMs) * time.Millisecond),
		typeahead.WithRequestParam(c.RequestParam),
		typeahead.WithExtraParams(c.ExtraParams),
		typeahead.WithPlaceholder(c.Placeholder),
	}
	if c.ClearIcon != "" {
		opts = append(opts, typeahead.WithClearIcon(c.ClearIcon))
	}
	if c.Items != nil {
		opts = append(opts, typeahead.WithItems(c.Items))
	} else {
		opts = append(opts, typeahead.WithDataURL(c.DataURL))
	}
	return opts
}

// OpenCache 开启缓存时打开 badger，CacheDir 为空时使用用户缓存目录
func (c *Config) OpenCache() (cache.Cache, error) {
	if !c.Cache || c.Items != nil {
		return nil, nil
	}
	dir := c.CacheDir
	if dir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve cache dir: %w", err)
		}
		dir = filepath.Join(base, AppName)
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create cache dir: %w", err)
	}
	store, err := cache.NewBadgerCache(dir)
	if err != nil {
		return nil, err
	}
	return store, nil
}

// Source 写入历史记录的数据来源
func (c *Config) Source() string {
	if c.Items != nil {
		return "items"
	}
	return c.DataURL
}

// OpenHistory 关闭历史记录时返回 nil
func (c *Config) OpenHistory() (*history.Store, error) {
	if !c.History || c.HistoryFile == "" {
		return nil, nil
	}
	return history.Open(c.HistoryFile)
}

// Level 日志级别，无法解析时为 info
func (c *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
