package cli

import (
	"fmt"

	platformErrors "bitbucket.org/crgw/flexrates/internal/platform/errors"
	"bitbucket.org/crgw/flexrates/internal/platform/interfaces"
	"bitbucket.org/crgw/flexrates/internal/render"
	"bitbucket.org/crgw/flexrates/internal/search"
	"github.com/spf13/cobra"
)

func (a *app) availabilityCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "availability",
		Short: "Summarize reservation totals by vehicle class for one date pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}

			if err := a.cfg.ValidateSchedule(); err != nil {
				return err
			}

			p, err := a.platform()
			if err != nil {
				return err
			}

			fetcher, ok := p.(interfaces.WithAvailability)
			if !ok {
				return platformErrors.ErrorNotImplemented
			}

			location, err := a.location(cmd.Context(), p)
			if err != nil {
				return err
			}

			params, err := a.cfg.AvailabilityParams(location)
			if err != nil {
				return err
			}

			quotes, err := fetcher.FetchAvailability(cmd.Context(), params, a.logger)
			if err != nil {
				return err
			}

			if format == formatJSON {
				return render.JSON(a.out, quotes)
			}

			if len(quotes) == 0 {
				fmt.Fprintln(a.out, "No vehicles available.")
				return nil
			}

			render.PrintSummary(a.out, search.SummarizeByClass(quotes))

			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format (table, json)")

	return cmd
}
