// Package cli implements the terminal driving adapter as a cobra command tree.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	sqliteadapter "github.com/ericfisherdev/seedpass/internal/adapter/driven/sqlite"
	"github.com/ericfisherdev/seedpass/internal/application"
	"github.com/ericfisherdev/seedpass/internal/config"
	"github.com/ericfisherdev/seedpass/internal/domain/port/driven"
)

// Options carries the collaborators the commands need besides configuration.
type Options struct {
	// Clipboard receives passwords for --copy and the copy command.
	Clipboard driven.Clipboard
	// Random overrides the generator's random source; nil uses crypto/rand.
	Random application.RandomSource
	Logger *slog.Logger
}

// app holds the state shared by the commands of one invocation.
type app struct {
	cfg    *config.Config
	opts   Options
	dbPath string
	svc    *application.PasswordService
}

// NewRootCmd builds the seedpass command tree. cfg supplies flag defaults.
func NewRootCmd(cfg *config.Config, opts Options) *cobra.Command {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	a := &app{cfg: cfg, opts: opts}

	cmd := &cobra.Command{
		Use:   "seedpass",
		Short: "Derive passwords from seed text and keep the latest one per seed.",
		Long: `seedpass turns any text into a password that always contains a lowercase
letter, an uppercase letter, a digit and a symbol. Most of the password is
derived from the SHA-256 digest of the text; the rest is random.

The most recent password for each seed text is stored in a local SQLite file.
Stored passwords are not encrypted.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&a.dbPath, "db", cfg.DBPath, "path to the password database")

	cmd.AddCommand(a.newGenerateCmd())
	cmd.AddCommand(a.newListCmd())
	cmd.AddCommand(a.newShowCmd())
	cmd.AddCommand(a.newCopyCmd())

	return cmd
}

// withStore opens the database for the duration of run, so every command
// opens, uses and closes its connection.
func (a *app) withStore(run func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		db, err := sqliteadapter.NewDB(cmd.Context(), a.dbPath)
		if err != nil {
			return err
		}
		defer func() {
			if closeErr := db.Close(); closeErr != nil && err == nil {
				err = closeErr
			}
		}()

		if err := sqliteadapter.RunMigrations(db.Writer); err != nil {
			return err
		}
		a.opts.Logger.Debug("database opened", "path", a.dbPath)

		a.svc = application.NewPasswordService(
			application.NewGenerator(a.opts.Random),
			sqliteadapter.NewPasswordRepo(db),
		)
		return run(cmd, args)
	}
}

// resolveLength maps the --length flag to a generation length: 0 selects the
// configured default and negative values are rejected.
func (a *app) resolveLength(length int) (int, error) {
	switch {
	case length < 0:
		return 0, fmt.Errorf("--length must not be negative, got %d", length)
	case length == 0:
		return a.cfg.PasswordLength, nil
	}
	return length, nil
}

// previewService builds a PasswordService that never touches storage; only
// Preview may be called on it.
func (a *app) previewService() *application.PasswordService {
	return application.NewPasswordService(application.NewGenerator(a.opts.Random), nil)
}

// copyToClipboard writes password to the clipboard and reports it on w.
func (a *app) copyToClipboard(w io.Writer, password string) error {
	if a.opts.Clipboard == nil {
		return errors.New("no clipboard available")
	}
	if err := a.opts.Clipboard.WriteText(password); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "The password was successfully copied")
	return err
}
