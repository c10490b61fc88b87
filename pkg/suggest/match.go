package suggest

import "strings"

// Match 保留标题包含 term 的候选项，忽略大小写。term 为空时原样返回。
func Match(options []Option, term string) []Option {
	if term == "" {
		return options
	}
	lowered := strings.ToLower(term)
	matched := make([]Option, 0, len(options))
	for _, option := range options {
		if strings.Contains(strings.ToLower(option.Title), lowered) {
			matched = append(matched, option)
		}
	}
	return matched
}
