package cli

import (
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/five82/folio/internal/app"
)

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// NewRootCmd creates the root command. With a terminal on stdout it runs the
// viewer; otherwise it prints the requested page like `folio page`.
func NewRootCmd(version string) *cobra.Command {
	var (
		pollSeconds int
		prefsPath   string
		page        pageFlags
	)

	cmd := &cobra.Command{
		Use:     "folio [log-file]",
		Short:   "Page through a log file",
		Long:    "Folio reads a log file, splits it into pages, and lets you move between them with a numbered page bar.",
		Version: version,
		Example: rootCmdExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := appOptions(cmd, args)
			if err != nil {
				return err
			}
			opts.PrefsPath = prefsPath
			opts.PollEvery = time.Duration(pollSeconds) * time.Second

			if !isTerminal(cmd.OutOrStdout()) {
				return runPage(cmd, opts, page)
			}
			return app.Run(cmd.Context(), opts)
		},
	}
	// main reports the returned error once.
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	cmd.PersistentFlags().String("config", "", "config file (default ~/.config/folio/config.toml)")
	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().Int("max-buttons", 0, "page buttons in the navigation bar (min 3)")
	cmd.PersistentFlags().Int("per-page", 0, "entries per page: 25, 50, 100 or 200")

	cmd.Flags().IntVar(&pollSeconds, "poll", 0, "reload interval in seconds (default 2)")
	cmd.Flags().StringVar(&prefsPath, "prefs", "", "preferences file (default ~/.config/folio/prefs.toml)")
	page.register(cmd)

	cmd.AddCommand(newPageCmd())
	return cmd
}

// appOptions collects the persistent flags and the optional log path.
func appOptions(cmd *cobra.Command, args []string) (app.Options, error) {
	flags := cmd.Flags()
	configPath, err := flags.GetString("config")
	if err != nil {
		return app.Options{}, err
	}
	debug, err := flags.GetBool("debug")
	if err != nil {
		return app.Options{}, err
	}
	maxButtons, err := flags.GetInt("max-buttons")
	if err != nil {
		return app.Options{}, err
	}
	perPage, err := flags.GetInt("per-page")
	if err != nil {
		return app.Options{}, err
	}

	opts := app.Options{
		ConfigPath:   configPath,
		MaxButtons:   maxButtons,
		ItemsPerPage: perPage,
		Debug:        debug,
	}
	if len(args) > 0 {
		opts.LogPath = args[0]
	}
	return opts, nil
}

const rootCmdExample = `  # Browse a log interactively
  folio /var/log/app.log

  # Start with 100 entries per page and a wider page bar
  folio --per-page 100 --max-buttons 11 /var/log/app.log

  # Print page 3 of the warnings and errors
  folio page --page 3 --level warn /var/log/app.log`
