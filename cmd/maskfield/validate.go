package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-maskfield"
)

func (a *app) validateCmd() *cobra.Command {
	var (
		typeSpec string
		live     bool
	)
	cmd := &cobra.Command{
		Use:   "validate --type TYPE VALUE...",
		Short: "Validate values, exiting 1 when any fails",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, raw := range args {
				check := maskfield.Validate
				if live {
					check = maskfield.ValidateLive
				}
				res, err := check(typeSpec, raw)
				if err != nil {
					return err
				}
				if res.Valid {
					fmt.Fprintf(a.out, "%s: ok\n", raw)
					continue
				}
				failed++
				fmt.Fprintf(a.out, "%s: %s\n", raw, res.Message)
			}
			if failed > 0 {
				return errValidationFailed
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&typeSpec, "type", "t", "data", "field type, e.g. zip or dataLength(8)")
	cmd.Flags().BoolVar(&live, "live", false, "check as a partially typed value")
	return cmd
}
