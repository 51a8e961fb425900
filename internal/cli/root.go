// Package cli wires the flexrates commands.
package cli

import (
	"bufio"
	"fmt"
	"io"

	"bitbucket.org/crgw/flexrates/internal/config"
	"bitbucket.org/crgw/flexrates/internal/logger"
	"bitbucket.org/crgw/flexrates/internal/platform/factory"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

type app struct {
	cfg     config.Config
	verbose bool

	in  *bufio.Reader
	out io.Writer

	logger  *zerolog.Logger
	factory *factory.Factory
}

// NewRootCommand builds the command tree. Values in cfg act as flag
// defaults, so flags win over the environment.
func NewRootCommand(cfg config.Config, in io.Reader, out io.Writer) *cobra.Command {
	a := &app{
		cfg: cfg,
		in:  bufio.NewReader(in),
		out: out,
	}

	root := &cobra.Command{
		Use:   "flexrates",
		Short: "Find the cheapest rental dates around a trip",
		Long: `flexrates queries the Avis Budget Group car rental API for every
combination of the pickup and dropoff dates shifted by one day either way,
and prints the cheapest vehicle for each combination as a matrix.

Examples:
  flexrates search --location DEN --pickup-date 2024-08-10 --dropoff-date 2024-08-25
  flexrates search --keyword Denver --pickup-date 2024-08-10 --dropoff-date 2024-08-25
  flexrates locations --keyword Denver
  flexrates serve --port 8080`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.SetIn(in)
	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfg.ClientId, "client-id", cfg.ClientId, "ABG client id (ABG_CLIENT_ID)")
	flags.StringVar(&a.cfg.ClientSecret, "client-secret", cfg.ClientSecret, "ABG client secret (ABG_CLIENT_SECRET)")
	flags.StringVar(&a.cfg.ApiUrl, "api-url", cfg.ApiUrl, "ABG API base url (ABG_API_URL)")
	flags.StringVar(&a.cfg.Brand, "brand", cfg.Brand, "rental brand, Avis or Budget (ABG_BRAND)")
	flags.DurationVar(&a.cfg.Timeout, "timeout", cfg.Timeout, "per request timeout, 0 for none (ABG_TIMEOUT in ms)")
	flags.StringVar(&a.cfg.CountryCode, "country-code", cfg.CountryCode, "country of the rental location (COUNTRY_CODE)")
	flags.StringVar(&a.cfg.Keyword, "keyword", cfg.Keyword, "location search keyword (KEYWORD)")
	flags.StringVar(&a.cfg.Location, "location", cfg.Location, "location code, skips the location prompt (LOCATION_CODE)")
	flags.StringVar(&a.cfg.PickupDate, "pickup-date", cfg.PickupDate, "base pickup date YYYY-MM-DD (PICKUP_DATE)")
	flags.StringVar(&a.cfg.PickupTime, "pickup-time", cfg.PickupTime, "pickup time HH:MM:SS (PICKUP_TIME)")
	flags.StringVar(&a.cfg.DropoffDate, "dropoff-date", cfg.DropoffDate, "base dropoff date YYYY-MM-DD (DROPOFF_DATE)")
	flags.StringVar(&a.cfg.DropoffTime, "dropoff-time", cfg.DropoffTime, "dropoff time HH:MM:SS (DROPOFF_TIME)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(
		a.searchCommand(),
		a.locationsCommand(),
		a.availabilityCommand(),
		a.rateCommand(),
		a.serveCommand(),
		versionCommand(),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	level := a.cfg.LogLevel
	if a.verbose {
		level = "debug"
	}

	log := logger.
		NewWithWriter(cmd.ErrOrStderr(), level, a.cfg.LogFormat).
		With().
		Str("runId", uuid.New().String()).
		Logger()

	a.logger = &log
	a.factory = factory.NewFactory(a.cfg.ABG())

	return nil
}

// platform resolves the configured brand to its supplier client.
func (a *app) platform() (any, error) {
	if err := a.cfg.ValidateCredentials(); err != nil {
		return nil, err
	}

	platform, err := a.factory.GetPlatform(a.cfg.Brand)
	if err != nil {
		return nil, fmt.Errorf("unsupported brand %q: %w", a.cfg.Brand, err)
	}

	return platform, nil
}

func validateFormat(format string) error {
	if format != formatTable && format != formatJSON {
		return fmt.Errorf("unknown format %q, expected %s or %s", format, formatTable, formatJSON)
	}

	return nil
}
