package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-maskfield"
)

func (a *app) formatCmd() *cobra.Command {
	var (
		typeSpec string
		final    bool
	)
	cmd := &cobra.Command{
		Use:   "format --type TYPE VALUE...",
		Short: "Print the display text of each value",
		Long: `Print the display text of each value as it looks while being typed, or
after the field loses focus with --final.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, raw := range args {
				if !final {
					text, err := maskfield.Format(typeSpec, raw)
					if err != nil {
						return err
					}
					fmt.Fprintln(a.out, text)
					continue
				}
				out, err := maskfield.Finalize(typeSpec, raw)
				if err != nil {
					return err
				}
				a.logger.Debug("format: finalized",
					"type", typeSpec,
					"input", raw,
					"text", out.Text,
					"template", out.Template,
				)
				fmt.Fprintln(a.out, out.Text)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&typeSpec, "type", "t", "data", "field type, e.g. phone or age(18,65)")
	cmd.Flags().BoolVar(&final, "final", false, "run the focus-loss sequence")
	return cmd
}
