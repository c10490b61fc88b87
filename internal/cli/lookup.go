package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/wxnacy/typeahead"
	"github.com/wxnacy/typeahead/pkg/log"
	"github.com/wxnacy/typeahead/pkg/suggest"
)

func newLookupCmd(v *viper.Viper) *cobra.Command {
	var timeout time.Duration
	var output string
	cmd := &cobra.Command{
		Use:   "lookup <term>",
		Short: "Print the titles matching a term, one per line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term := ""
			if len(args) > 0 {
				term = args[0]
			}

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

			ac := typeahead.New(opts...)
			defer ac.Destroy()

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			options, err := ac.Lookup(ctx, term)
			if err != nil {
				return fmt.Errorf("lookup failed: %w", err)
			}
			return printOptions(cmd.OutOrStdout(), options, output)
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "Lookup timeout")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text, json or yaml")
	return cmd
}

func printOptions(w io.Writer, options []suggest.Option, format string) error {
	switch format {
	case "text", "":
		for _, o := range options {
			fmt.Fprintln(w, o.Title)
		}
		return nil
	}

	res := make([]optionJSON, 0, len(options))
	for _, o := range options {
		res = append(res, optionJSON{Title: o.Title, Value: o.Value})
	}
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
