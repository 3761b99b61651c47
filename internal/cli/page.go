package cli

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/five82/folio/internal/app"
	"github.com/five82/folio/internal/logging"
	"github.com/five82/folio/internal/logtail"
	"github.com/five82/folio/internal/pagination"
	"github.com/five82/folio/internal/state"
)

// pageFlags selects what the non-interactive output prints.
type pageFlags struct {
	page  int
	level string
}

func (f *pageFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.page, "page", 1, "page to print (clamped to the available pages)")
	cmd.Flags().StringVar(&f.level, "level", "", "minimum level: debug, info, warn or error")
}

func newPageCmd() *cobra.Command {
	var flags pageFlags

	cmd := &cobra.Command{
		Use:   "page [log-file]",
		Short: "Print one page of a log with its page bar",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := appOptions(cmd, args)
			if err != nil {
				return err
			}
			return runPage(cmd, opts, flags)
		},
	}
	flags.register(cmd)
	return cmd
}

// runPage loads the log once and prints the selected page.
func runPage(cmd *cobra.Command, opts app.Options, flags pageFlags) error {
	logger := logging.Console(cmd.ErrOrStderr(), opts.Debug)

	cfg, err := app.Resolve(opts)
	if err != nil {
		return err
	}

	entries, err := logtail.Load(cfg.LogPath, cfg.TailLines)
	if err != nil {
		return fmt.Errorf("load log: %w", err)
	}

	minLevel := logtail.LevelUnknown
	if flags.level != "" {
		minLevel = logtail.ParseLevel(flags.level)
		if minLevel == logtail.LevelUnknown {
			logger.Warn().Str("level", flags.level).Msg("unknown level, showing all entries")
		}
	}
	snap := state.Snapshot{Entries: entries}
	filtered := snap.Filter(minLevel)

	view := pageView(cfg.MaxButtons, cfg.ItemsPerPage, flags.page, len(filtered), logger)
	writePage(cmd.OutOrStdout(), filtered, view)
	return nil
}

// pageView runs the requested settings through a controller so the printed
// bar matches what the viewer would draw.
func pageView(maxButtons, perPage, page, count int, logger zerolog.Logger) pagination.View {
	ctl := pagination.NewController(
		pagination.WithMaxButtons(maxButtons),
		pagination.WithItemsPerPage(perPage),
	)
	st := ctl.State()
	if st.ItemsPerPage != perPage {
		logger.Warn().Int("per_page", perPage).Int("using", st.ItemsPerPage).Msg("unsupported page size")
	}
	ctl.SetPagination(page, state.TotalPages(count, st.ItemsPerPage))
	if got := ctl.State().CurrentPage; got != page {
		logger.Debug().Int("requested", page).Int("page", got).Msg("page clamped")
	}
	return ctl.View()
}

func writePage(w io.Writer, entries []logtail.Entry, view pagination.View) {
	st := view.State
	start, end := state.PageBounds(len(entries), st.CurrentPage, st.ItemsPerPage)
	for _, e := range entries[start:end] {
		fmt.Fprintln(w, e.Raw)
		for _, d := range e.Details {
			fmt.Fprintln(w, d)
		}
	}

	p := message.NewPrinter(language.English)
	fmt.Fprintln(w)
	fmt.Fprintln(w, navLine(view))
	p.Fprintf(w, "Page %d of %d, %d entries\n", st.CurrentPage, st.TotalPages, len(entries))
}

// navLine renders the page bar as text with arrow affordances. Disabled
// arrows are replaced by spaces so the numbers stay in place.
func navLine(view pagination.View) string {
	back, forward := "  ", "  "
	if view.CanGoBack {
		back = "‹ "
	}
	if view.CanGoForward {
		forward = " ›"
	}
	return back + view.Model.String() + forward
}
