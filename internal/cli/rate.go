package cli

import (
	platformErrors "bitbucket.org/crgw/flexrates/internal/platform/errors"
	"bitbucket.org/crgw/flexrates/internal/platform/implementations/abg"
	"bitbucket.org/crgw/flexrates/internal/platform/interfaces"
	"bitbucket.org/crgw/flexrates/internal/render"
	"bitbucket.org/crgw/flexrates/internal/schema"
	"github.com/spf13/cobra"
)

func (a *app) rateCommand() *cobra.Command {
	var rateCode, vehicleClassCode string

	cmd := &cobra.Command{
		Use:   "rate",
		Short: "Print the supplier rate for one vehicle class and date pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.cfg.ValidateSchedule(); err != nil {
				return err
			}

			p, err := a.platform()
			if err != nil {
				return err
			}

			rater, ok := p.(interfaces.WithRate)
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

			rate, err := rater.GetRate(cmd.Context(), schema.RateParams{
				AvailabilityParams: params,
				RateCode:           rateCode,
				VehicleClassCode:   vehicleClassCode,
			}, a.logger)
			if err != nil {
				return err
			}

			return render.JSON(a.out, rate)
		},
	}

	cmd.Flags().StringVar(&rateCode, "rate-code", abg.DefaultRateCode, "supplier rate code")
	cmd.Flags().StringVar(&vehicleClassCode, "vehicle-class-code", abg.DefaultVehicleClassCode, "vehicle class code")

	return cmd
}
