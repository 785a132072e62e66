package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-maskfield/pkg/fieldtype"
)

func (a *app) typesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List every field type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TYPE\tDESCRIPTION\tTEMPLATE\tPLACEHOLDERS\tPRIORITY\tCONFIG")
			for _, t := range fieldtype.All() {
				config := "ok"
				if res := t.ValidateConfiguration(); !res.Valid {
					config = res.Message
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.1f\t%s\n",
					t, t.Description(), dash(t.Template()), dash(t.Placeholders()), t.Priority(), config)
			}
			return w.Flush()
		},
	}
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
