package suggest

import (
	"reflect"
	"sort"
)

// wrapperFields 优先于其他数组字段，按顺序检查
var wrapperFields = []string{"items", "data", "results"}

// Extract 从解码后的查询响应中取出候选列表。
//
// 数组直接返回；对象先查找常见的包装字段，再按键名顺序查找其他数组字段，都没有时返回空列表。
func Extract(payload any) []any {
	if items, ok := asList(payload); ok {
		return items
	}

	fields, ok := payload.(map[string]any)
	if !ok {
		return []any{}
	}
	for _, name := range wrapperFields {
		if items, ok := asList(fields[name]); ok {
			return items
		}
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if items, ok := asList(fields[k]); ok {
			return items
		}
	}
	return []any{}
}

func asList(v any) ([]any, bool) {
	switch list := v.(type) {
	case nil:
		return nil, false
	case []any:
		return list, true
	case []string:
		return Strings(list...), true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	// []byte 在 JSON 中是标量
	if rv.Type().Elem().Kind() == reflect.Uint8 {
		return nil, false
	}
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}
