// Package remote 通过 HTTP 接口查询候选项，每个 Fetcher 同时只有一个请求。
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/sirupsen/logrus"

	"github.com/wxnacy/typeahead/pkg/cache"
	"github.com/wxnacy/typeahead/pkg/log"
)

// DefaultParam 搜索词的默认参数名
const DefaultParam = "q"

// StatusError 接口返回非 2xx 状态
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("lookup %s: unexpected status %s", e.URL, e.Status)
}

// Fetcher 向同一个接口发起 GET 查询。新的 Fetch 会取消上一次，被取消的查询返回空列表。
type Fetcher struct {
	client   *http.Client
	endpoint string
	param    string
	extra    map[string]string
	cache    cache.Cache
	cacheTTL time.Duration
	logger   *logrus.Entry

	mu     sync.Mutex
	cancel context.CancelFunc
	seq    uint64
}

type Option func(*Fetcher)

// WithClient 默认使用 cleanhttp 的连接池客户端
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) {
		if c != nil {
			f.client = c
		}
	}
}

// WithParam 搜索词的参数名
func WithParam(name string) Option {
	return func(f *Fetcher) {
		if name != "" {
			f.param = name
		}
	}
}

// WithExtraParams 每次请求都附带的固定参数
func WithExtraParams(params map[string]string) Option {
	return func(f *Fetcher) {
		f.extra = make(map[string]string, len(params))
		for k, v := range params {
			f.extra[k] = v
		}
	}
}

// WithCache 以请求地址为键缓存响应
func WithCache(c cache.Cache, ttl time.Duration) Option {
	return func(f *Fetcher) {
		f.cache = c
		f.cacheTTL = ttl
	}
}

func WithLogger(entry *logrus.Entry) Option {
	return func(f *Fetcher) {
		if entry != nil {
			f.logger = entry
		}
	}
}

func New(endpoint string, opts ...Option) *Fetcher {
	f := &Fetcher{
		client:   cleanhttp.DefaultPooledClient(),
		endpoint: endpoint,
		param:    DefaultParam,
		logger:   logrus.NewEntry(log.GetLogger()),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// RequestURL 拼接查询地址：保留地址中已有的参数，固定参数覆盖已有参数，搜索词覆盖两者
func (f *Fetcher) RequestURL(term string) (string, error) {
	u, err := url.Parse(f.endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid lookup url %q: %w", f.endpoint, err)
	}
	q := u.Query()
	for k, v := range f.extra {
		q.Set(k, v)
	}
	q.Set(f.param, term)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Fetch 查询 term 并返回解码后的 JSON。
//
// 被之后的 Fetch 或 Cancel 取消时返回空列表，不返回错误；超时仍然是错误。
func (f *Fetcher) Fetch(ctx context.Context, term string) (any, error) {
	ctx, seq, cancel := f.begin(ctx)
	defer f.finish(seq, cancel)

	reqURL, err := f.RequestURL(term)
	if err != nil {
		return nil, err
	}

	if f.cache != nil {
		data, found, err := f.cache.Get(reqURL)
		switch {
		case err != nil:
			f.logger.Warnf("读取缓存失败: %v", err)
		case found:
			f.logger.Debugf("缓存命中 %s", reqURL)
			return decode(data)
		}
	}

	body, err := f.get(ctx, reqURL)
	if ctx.Err() != nil && errors.Is(ctx.Err(), context.Canceled) {
		f.logger.Debugf("请求已取消 %s", reqURL)
		return []any{}, nil
	}
	if err != nil {
		return nil, err
	}

	payload, err := decode(body)
	if err != nil {
		return nil, err
	}
	if f.cache != nil {
		if err := f.cache.Set(reqURL, body, f.cacheTTL); err != nil {
			f.logger.Warnf("写入缓存失败: %v", err)
		}
	}
	return payload, nil
}

// Cancel 取消进行中的请求
func (f *Fetcher) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
}

// InFlight 是否有请求进行中
func (f *Fetcher) InFlight() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cancel != nil
}

func (f *Fetcher) begin(parent context.Context) (context.Context, uint64, context.CancelFunc) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cancel != nil {
		f.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	f.cancel = cancel
	f.seq++
	return ctx, f.seq, cancel
}

func (f *Fetcher) finish(seq uint64, cancel context.CancelFunc) {
	f.mu.Lock()
	if f.seq == seq {
		f.cancel = nil
	}
	f.mu.Unlock()
	cancel()
}

func (f *Fetcher) get(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build lookup request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	f.logger.Debugf("GET %s", reqURL)
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lookup request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{URL: reqURL, StatusCode: resp.StatusCode, Status: resp.Status}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read lookup response: %w", err)
	}
	return body, nil
}

func decode(body []byte) (any, error) {
	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode lookup response: %w", err)
	}
	return payload, nil
}
