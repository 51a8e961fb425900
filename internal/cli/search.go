package cli

import (
	"fmt"

	"bitbucket.org/crgw/flexrates/internal/platform"
	platformErrors "bitbucket.org/crgw/flexrates/internal/platform/errors"
	"bitbucket.org/crgw/flexrates/internal/platform/interfaces"
	"bitbucket.org/crgw/flexrates/internal/render"
	"bitbucket.org/crgw/flexrates/internal/schema"
	"bitbucket.org/crgw/flexrates/internal/search"
	"github.com/spf13/cobra"
)

func (a *app) searchCommand() *cobra.Command {
	var (
		fullGrid bool
		format   string
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Build the flexible-date price matrix",
		Long: `Query availability for the pickup and dropoff dates shifted by -1, 0 and +1
days and print the cheapest vehicle of every combination.

Rows are dropoff dates, columns are pickup dates. Date pairs the supplier
failed to answer are logged and left out; the command still succeeds.`,
		Args: cobra.NoArgs,
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

			request, err := a.cfg.SearchRequest(location)
			if err != nil {
				return err
			}

			bucket := schema.NewSupplierRequestsBucket()
			ctx := schema.WithRequestsBucket(cmd.Context(), bucket)

			result, err := search.
				NewSearcher(fetcher, search.WithSlowThreshold(a.cfg.SlowThreshold)).
				Search(ctx, request, a.logger)
			if err != nil {
				return fmt.Errorf("search aborted: %w", err)
			}

			response := platform.NewMatrixResponse(location, result, fullGrid, bucket.SupplierRequests())

			if format == formatJSON {
				return render.JSON(a.out, response)
			}

			render.Print(a.out, response.Table)

			if response.Cheapest != nil {
				fmt.Fprintf(a.out, "Cheapest: %s, pickup %s, dropoff %s\n",
					render.Cell(response.Cheapest.BestQuote),
					response.Cheapest.PickupDate,
					response.Cheapest.DropoffDate)
			}

			if failed := len(result.Failures); failed > 0 {
				fmt.Fprintf(a.out, "%d of %d date pairs failed\n", failed, len(result.Grid))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&fullGrid, "full-grid", false, "show every generated date, N/A where nothing was quoted")
	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format (table, json)")

	return cmd
}
