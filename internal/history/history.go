// Package history 记录命令行中选中的候选项，每行一个 JSON。
package history

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/wxnacy/typeahead/pkg/log"
	"github.com/wxnacy/typeahead/pkg/suggest"
)

const FileName = ".typeahead_history"

type Entry struct {
	Time   time.Time `json:"time"`
	Source string    `json:"source"` // 数据来源：查询地址或 items
	Title  string    `json:"title"`
	Value  any       `json:"value,omitempty"`
}

func NewEntry(source string, o suggest.Option) Entry {
	return Entry{
		Time:   time.Now(),
		Source: source,
		Title:  o.Title,
		Value:  o.Value,
	}
}

type Store struct {
	path string
}

// DefaultPath 用户目录下的历史文件
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, FileName)
}

// Open 解析路径并确保文件存在且只有当前用户可读写
func Open(path string) (*Store, error) {
	path, err := resolvePath(path)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, errors.New("history file path is empty")
	}
	if err := ensureFile(path); err != nil {
		return nil, err
	}
	return &Store{path: path}, nil
}

func (s *Store) Path() string {
	return s.path
}

// Append 追加一条记录，写入期间持有文件锁
func (s *Store) Append(e Entry) error {
	line, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to encode history entry: %w", err)
	}

	file, err := os.OpenFile(s.path, os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := lock(file); err != nil {
		return fmt.Errorf("failed to lock history file: %w", err)
	}
	defer func() {
		if err := unlock(file); err != nil {
			log.GetLogger().Warnf("释放历史文件锁失败: %v", err)
		}
	}()

	_, err = file.Write(append(line, '\n'))
	return err
}

// Recent 最近的 n 条记录，新的在前，同一来源的同名项只保留最新一条。n <= 0 返回全部。
func (s *Store) Recent(n int) ([]Entry, error) {
	entries, err := s.read()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	res := make([]Entry, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		k := e.Source + "\x00" + e.Title
		if seen[k] {
			continue
		}
		seen[k] = true
		res = append(res, e)
		if n > 0 && len(res) == n {
			break
		}
	}
	return res, nil
}

func (s *Store) read() ([]Entry, error) {
	file, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []Entry{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	entries := make([]Entry, 0)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var e Entry
		if err := json.Unmarshal([]byte(line), &e); err != nil {
			log.GetLogger().Warnf("解析历史行失败: %v", err)
			continue
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func ensureFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	info, err := os.Lstat(path)
	switch {
	case err == nil:
		if info.Mode().Perm()&0o077 != 0 {
			return os.Chmod(path, 0o600)
		}
		return nil
	case !errors.Is(err, os.ErrNotExist):
		return err
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	return file.Close()
}

// resolvePath 展开 ~ 并转为绝对路径，拒绝符号链接和目录
func resolvePath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", nil
	}
	if rest, ok := strings.CutPrefix(path, "~"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, rest)
	}
	path, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	info, err := os.Lstat(path)
	if errors.Is(err, os.ErrNotExist) {
		return path, nil
	}
	if err != nil {
		return "", err
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return "", fmt.Errorf("history file must not be a symlink: %s", path)
	}
	if info.IsDir() {
		return "", fmt.Errorf("history file must not be a directory: %s", path)
	}
	return path, nil
}
