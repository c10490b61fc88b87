// Package suggest 补全的数据处理：归一化候选项、从查询响应中提取列表、按关键字匹配。
package suggest

import (
	"fmt"

	"github.com/spf13/cast"
)

// Option 一个候选项
type Option struct {
	Title string // 显示并参与匹配
	Value any    // 选中后的值
	Raw   any    // 原始数据
}

func (o Option) String() string {
	return o.Title
}

// Strings 字符串列表转为 Normalize 可用的数据
func Strings(values ...string) []any {
	items := make([]any, 0, len(values))
	for _, v := range values {
		items = append(items, v)
	}
	return items
}

// Normalize 将数据转为候选项，保持顺序。
//
// 字符串的标题和值都是其本身；对象读取 titleKey 和 valueKey，缺少标题时使用值的文本，
// 缺少值时使用标题；其他类型使用文本形式。
func Normalize(items []any, titleKey, valueKey string) []Option {
	options := make([]Option, 0, len(items))
	for _, item := range items {
		options = append(options, normalizeItem(item, titleKey, valueKey))
	}
	return options
}

func normalizeItem(item any, titleKey, valueKey string) Option {
	switch v := item.(type) {
	case string:
		return Option{Title: v, Value: v, Raw: v}
	case map[string]any:
		return normalizeFields(v, item, titleKey, valueKey)
	case map[string]string:
		fields := make(map[string]any, len(v))
		for k, s := range v {
			fields[k] = s
		}
		return normalizeFields(fields, item, titleKey, valueKey)
	case map[any]any:
		return normalizeFields(cast.ToStringMap(v), item, titleKey, valueKey)
	default:
		return Option{Title: Text(item), Value: item, Raw: item}
	}
}

func normalizeFields(fields map[string]any, item any, titleKey, valueKey string) Option {
	rawTitle, hasTitle := fields[titleKey]
	rawValue, hasValue := fields[valueKey]

	title := ""
	switch {
	case hasTitle:
		title = Text(rawTitle)
	case hasValue:
		title = Text(rawValue)
	}
	var value any = title
	if hasValue {
		value = rawValue
	}
	return Option{Title: title, Value: value, Raw: item}
}

// Text 转为显示文本，nil 为空字符串
func Text(v any) string {
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	return fmt.Sprint(v)
}
