package typeahead

import (
	"net/http"
	"time"

	"github.com/wxnacy/typeahead/pkg/cache"
	"github.com/wxnacy/typeahead/pkg/remote"
)

// Config 补全行为的全部配置，绑定时构建一次，之后不再修改
type Config struct {
	DataURL         string            // 远程查询地址
	Items           []any             // 静态数据，非 nil 时优先于 DataURL
	ItemTitle       string            // 对象类数据的标题字段
	ItemValue       string            // 对象类数据的值字段
	AutoSelectFirst bool              // 默认高亮第一项，失焦时自动选中
	Clearable       bool              // 显示清除图标并启用清除快捷键
	ClearIcon       string            // 清除图标
	HideNoData      bool              // 无结果或出错时直接关闭下拉框
	MinChars        int               // 触发搜索的最少字符数
	Debounce        time.Duration     // 输入防抖时间
	RequestParam    string            // 搜索词的查询参数名
	ExtraParams     map[string]string // 每次请求附带的固定参数
	BlurDelay       time.Duration     // 失焦后关闭前的等待时间
	MaxHeight       int               // 下拉框最多显示的行数，<= 0 不限制
	NoDataText      string
	ErrorText       string
	Prompt          string
	Placeholder     string
	Styles          Styles
	KeyMap          KeyMap
	HTTPClient      *http.Client
	Cache           cache.Cache
	CacheTTL        time.Duration
}

// DefaultConfig 默认配置
func DefaultConfig() Config {
	return Config{
		ItemTitle:    "title",
		ItemValue:    "value",
		Clearable:    true,
		ClearIcon:    "✕",
		HideNoData:   true,
		Debounce:     200 * time.Millisecond,
		RequestParam: remote.DefaultParam,
		ExtraParams:  map[string]string{},
		BlurDelay:    120 * time.Millisecond,
		MaxHeight:    8,
		NoDataText:   "No results",
		ErrorText:    "Failed to load",
		Prompt:       "> ",
		Styles:       DefaultStyles(),
		KeyMap:       DefaultKeyMap(),
		CacheTTL:     10 * time.Minute,
	}
}

func newConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// 拷贝引用类型，调用方后续修改不会影响已绑定的实例
	if cfg.Items != nil {
		cfg.Items = append([]any{}, cfg.Items...)
	}
	params := make(map[string]string, len(cfg.ExtraParams))
	for k, v := range cfg.ExtraParams {
		params[k] = v
	}
	cfg.ExtraParams = params
	return cfg
}

// local 是否使用静态数据
func (c Config) local() bool {
	return c.Items != nil
}

type Option func(*Config)

// WithDataURL 设置远程查询地址
func WithDataURL(url string) Option {
	return func(c *Config) {
		c.DataURL = url
	}
}

// WithItems 设置静态数据，元素可以是字符串或对象
func WithItems(items []any) Option {
	return func(c *Config) {
		if items == nil {
			items = []any{}
		}
		c.Items = items
	}
}

func WithItemFields(title, value string) Option {
	return func(c *Config) {
		if title != "" {
			c.ItemTitle = title
		}
		if value != "" {
			c.ItemValue = value
		}
	}
}

func WithAutoSelectFirst(b bool) Option {
	return func(c *Config) {
		c.AutoSelectFirst = b
	}
}

func WithClearable(b bool) Option {
	return func(c *Config) {
		c.Clearable = b
	}
}

func WithClearIcon(icon string) Option {
	return func(c *Config) {
		c.ClearIcon = icon
	}
}

func WithHideNoData(b bool) Option {
	return func(c *Config) {
		c.HideNoData = b
	}
}

func WithMinChars(n int) Option {
	return func(c *Config) {
		c.MinChars = n
	}
}

func WithDebounce(d time.Duration) Option {
	return func(c *Config) {
		c.Debounce = d
	}
}

func WithRequestParam(name string) Option {
	return func(c *Config) {
		if name != "" {
			c.RequestParam = name
		}
	}
}

// WithExtraParams 合并每次请求附带的固定参数
func WithExtraParams(params map[string]string) Option {
	return func(c *Config) {
		if c.ExtraParams == nil {
			c.ExtraParams = map[string]string{}
		}
		for k, v := range params {
			c.ExtraParams[k] = v
		}
	}
}

func WithBlurDelay(d time.Duration) Option {
	return func(c *Config) {
		c.BlurDelay = d
	}
}

func WithMaxHeight(n int) Option {
	return func(c *Config) {
		c.MaxHeight = n
	}
}

func WithNoDataText(s string) Option {
	return func(c *Config) {
		c.NoDataText = s
	}
}

func WithErrorText(s string) Option {
	return func(c *Config) {
		c.ErrorText = s
	}
}

func WithPrompt(s string) Option {
	return func(c *Config) {
		c.Prompt = s
	}
}

func WithPlaceholder(s string) Option {
	return func(c *Config) {
		c.Placeholder = s
	}
}

func WithStyles(s Styles) Option {
	return func(c *Config) {
		c.Styles = s
	}
}

func WithKeyMap(km KeyMap) Option {
	return func(c *Config) {
		c.KeyMap = km
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(c *Config) {
		c.HTTPClient = client
	}
}

// WithCache 缓存远程响应，ttl 为 0 时不过期
func WithCache(store cache.Cache, ttl time.Duration) Option {
	return func(c *Config) {
		c.Cache = store
		c.CacheTTL = ttl
	}
}
