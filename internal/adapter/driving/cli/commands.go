package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ericfisherdev/seedpass/internal/domain/model"
)

func (a *app) newGenerateCmd() *cobra.Command {
	var (
		length int
		noSave bool
		toClip bool
	)

	cmd := &cobra.Command{
		Use:   "generate <seed text>",
		Short: "Generate a password for the seed text and store it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.resolveLength(length)
			if err != nil {
				return err
			}

			if noSave {
				password, err := a.previewService().Preview(args[0], n)
				if err != nil {
					return err
				}
				return a.printPassword(cmd, password, toClip)
			}

			return a.withStore(func(cmd *cobra.Command, args []string) error {
				rec, err := a.svc.Generate(cmd.Context(), args[0], n)
				if err != nil {
					return err
				}
				return a.printPassword(cmd, rec.Password, toClip)
			})(cmd, args)
		},
	}

	cmd.Flags().IntVarP(&length, "length", "l", a.cfg.PasswordLength, "password length (minimum 4, 0 uses the configured default)")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "print the password without storing it")
	cmd.Flags().BoolVarP(&toClip, "copy", "c", false, "also copy the password to the clipboard")

	return cmd
}

// printPassword writes password to stdout and, when toClip is set, copies it
// and reports the copy on stderr.
func (a *app) printPassword(cmd *cobra.Command, password string, toClip bool) error {
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), password); err != nil {
		return err
	}
	if toClip {
		return a.copyToClipboard(cmd.ErrOrStderr(), password)
	}
	return nil
}

func (a *app) newListCmd() *cobra.Command {
	var (
		sortBy    string
		ascending bool
		search    string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored passwords",
		Args:  cobra.NoArgs,
		RunE: a.withStore(func(cmd *cobra.Command, _ []string) error {
			column, err := model.ParseSortColumn(sortBy)
			if err != nil {
				return err
			}

			records, err := a.svc.List(cmd.Context(), model.ListQuery{
				OrderBy:   column,
				Ascending: ascending,
				Search:    search,
			})
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "SEED TEXT\tPASSWORD\tDATE/TIME")
			for _, rec := range records {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", rec.SeedText, rec.Password, rec.FormattedCreatedAt())
			}
			return tw.Flush()
		}),
	}

	cmd.Flags().StringVar(&sortBy, "sort", string(model.SortByCreatedAt), "sort column: seed_text or created_at")
	cmd.Flags().BoolVar(&ascending, "asc", false, "sort ascending instead of descending")
	cmd.Flags().StringVarP(&search, "search", "s", "", "only show seeds containing this text")

	return cmd
}

func (a *app) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <seed text>",
		Short: "Print the stored password for a seed text",
		Args:  cobra.ExactArgs(1),
		RunE: a.withStore(func(cmd *cobra.Command, args []string) error {
			rec, err := a.svc.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rec.Password)
			return err
		}),
	}
}

func (a *app) newCopyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "copy <seed text>",
		Short: "Copy the stored password for a seed text to the clipboard",
		Args:  cobra.ExactArgs(1),
		RunE: a.withStore(func(cmd *cobra.Command, args []string) error {
			rec, err := a.svc.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.copyToClipboard(cmd.OutOrStdout(), rec.Password)
		}),
	}
}
