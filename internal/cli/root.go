package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wxnacy/typeahead"
	"github.com/wxnacy/typeahead/internal/config"
	"github.com/wxnacy/typeahead/internal/history"
	"github.com/wxnacy/typeahead/pkg/cache"
	"github.com/wxnacy/typeahead/pkg/log"
	"github.com/wxnacy/typeahead/pkg/suggest"
	"github.com/wxnacy/typeahead/pkg/tui"
)

// flagKeys 命令行参数与配置键的对应关系
var flagKeys = map[string]string{
	"url":               "data_url",
	"item-title":        "item_title",
	"item-value":        "item_value",
	"min-chars":         "min_chars",
	"debounce":          "debounce_ms",
	"param":             "request_param",
	"auto-select-first": "auto_select_first",
	"hide-no-data":      "hide_no_data",
	"placeholder":       "placeholder",
	"cache":             "cache",
	"cache-dir":         "cache_dir",
	"log-file":          "log_file",
	"history-file":      "history_file",
}

// NewRootCmd 创建根命令，每次调用使用独立的 viper 实例
func NewRootCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:   "typeahead",
		Short: "Pick a value from a list or a lookup endpoint with autocomplete",
		Long: `typeahead shows an input with a suggestion dropdown in the terminal.

Suggestions come from a static list (--items or "items" in the config file) or
from a remote endpoint (--url) queried with the typed term. The chosen option is
printed to stdout as JSON.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPicker(cmd, v)
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	addPersistentFlags(cmd, v)
	cmd.AddCommand(newLookupCmd(v), newHistoryCmd(v))
	return cmd
}

// Execute 运行根命令
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func addPersistentFlags(cmd *cobra.Command, v *viper.Viper) {
	flags := cmd.PersistentFlags()
	flags.StringP("config", "c", "", "Path to config file (yaml, toml or json)")
	flags.StringP("url", "u", "", "Lookup endpoint queried with the typed term")
	flags.StringSliceP("items", "i", nil, "Static suggestions, comma separated")
	flags.String("item-title", "", "Field used as the option title")
	flags.String("item-value", "", "Field used as the option value")
	flags.Int("min-chars", 0, "Minimum characters before searching")
	flags.Int("debounce", 0, "Debounce delay in milliseconds")
	flags.String("param", "", "Query parameter carrying the term")
	flags.Bool("auto-select-first", false, "Highlight the first option and select it on blur")
	flags.Bool("hide-no-data", true, "Close the dropdown instead of showing a placeholder")
	flags.String("placeholder", "", "Input placeholder")
	flags.Bool("cache", false, "Cache lookup responses")
	flags.String("cache-dir", "", "Cache directory path")
	flags.String("log-file", "", "Write logs to this file")
	flags.Bool("debug", false, "Enable debug logging")
	flags.String("history-file", "", "File recording selected options")
	flags.Bool("no-history", false, "Do not record selected options")

	for name, key := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("failed to bind %s flag: %v", key, err))
		}
	}
}

// loadConfig 合并参数、环境变量与配置文件，并初始化日志
func loadConfig(cmd *cobra.Command, v *viper.Viper) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(v, path)
	if err != nil {
		return nil, err
	}

	// items 未指定时保持 nil，否则会覆盖 data_url
	if cmd.Flags().Changed("items") {
		items, _ := cmd.Flags().GetStringSlice("items")
		cfg.Items = suggest.Strings(items...)
	}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		cfg.LogLevel = "debug"
	}
	if noHistory, _ := cmd.Flags().GetBool("no-history"); noHistory {
		cfg.History = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.SetLogLevel(cfg.Level())
	if cfg.LogFile != "" {
		log.SetOutputFile(cfg.LogFile)
	}
	return cfg, nil
}

// widgetOptions 组件配置，开启缓存时附带打开的缓存
func widgetOptions(cfg *config.Config) ([]typeahead.Option, cache.Cache, error) {
	opts := cfg.Options()
	store, err := cfg.OpenCache()
	if err != nil {
		return nil, nil, err
	}
	if store != nil {
		opts = append(opts, typeahead.WithCache(store, cfg.CacheTTL))
	}
	return opts, store, nil
}

func runPicker(cmd *cobra.Command, v *viper.Viper) error {
	cfg, err := loadConfig(cmd, v)
	if err != nil {
		return err
	}
	defer log.Close()

	opts, store, err := widgetOptions(cfg)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	p := newPicker(store, opts...)
	term := tui.NewTerminal(p,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithOutput(cmd.ErrOrStderr()),
	)
	action, payload, err := term.Run()
	p.Destroy()
	if err != nil {
		return fmt.Errorf("picker failed: %w", err)
	}
	if action != tui.ActionSelect {
		return nil
	}
	option, _ := payload.(*suggest.Option)
	if option == nil {
		return nil
	}
	record(cfg, *option)
	return printOption(cmd.OutOrStdout(), option)
}

// record 写入历史记录，失败只记录日志
func record(cfg *config.Config, option suggest.Option) {
	store, err := cfg.OpenHistory()
	if err != nil {
		log.GetLogger().Warnf("打开历史文件失败: %v", err)
		return
	}
	if store == nil {
		return
	}
	if err := store.Append(history.NewEntry(cfg.Source(), option)); err != nil {
		log.GetLogger().Warnf("写入历史记录失败: %v", err)
	}
}

type optionJSON struct {
	Title string `json:"title" yaml:"title"`
	Value any    `json:"value" yaml:"value"`
}

func printOption(w io.Writer, option *suggest.Option) error {
	if option == nil {
		return nil
	}
	return json.NewEncoder(w).Encode(optionJSON{Title: option.Title, Value: option.Value})
}
