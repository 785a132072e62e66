package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-maskfield/pkg/formspec"
	"github.com/goliatone/go-maskfield/pkg/tui"
)

func (a *app) promptCmd() *cobra.Command {
	var (
		formPath string
		confirm  bool
	)
	cmd := &cobra.Command{
		Use:   "prompt --form FILE",
		Short: "Fill in a form interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, ok := tui.ParseOutputFormat(a.v.GetString("prompt.output"))
			if !ok {
				return fmt.Errorf("invalid output format %q", a.v.GetString("prompt.output"))
			}
			form, err := formspec.LoadFile(formPath)
			if err != nil {
				return err
			}

			session := tui.New(
				tui.WithPromptDriver(tui.NewSurveyDriver(a.errOut)),
				tui.WithOutputFormat(format),
				tui.WithLogger(a.logger),
				tui.WithMaxAttempts(a.v.GetInt("prompt.max-attempts")),
				tui.WithConfirm(confirm),
			)
			out, err := session.Run(cmd.Context(), form, nil)
			if errors.Is(err, tui.ErrAborted) {
				fmt.Fprintln(a.errOut, "aborted")
				return errValidationFailed
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, string(out))
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&formPath, "form", "f", "", "form definition (json, yaml or toml)")
	flags.StringP("output", "o", "json", "output format (json, form, pretty)")
	flags.Int("max-attempts", 0, "give up after this many invalid answers to one field (0 = never)")
	flags.BoolVar(&confirm, "confirm", false, "confirm before printing the values")
	_ = cmd.MarkFlagRequired("form")
	_ = a.v.BindPFlag("prompt.output", flags.Lookup("output"))
	_ = a.v.BindPFlag("prompt.max-attempts", flags.Lookup("max-attempts"))
	return cmd
}
