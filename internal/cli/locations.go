package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	platformErrors "bitbucket.org/crgw/flexrates/internal/platform/errors"
	"bitbucket.org/crgw/flexrates/internal/platform/interfaces"
	"bitbucket.org/crgw/flexrates/internal/render"
	"bitbucket.org/crgw/flexrates/internal/schema"
	"github.com/spf13/cobra"
)

var (
	ErrInvalidChoice  = errors.New("invalid location choice")
	ErrMissingKeyword = errors.New("a location keyword is required")
)

func (a *app) locationsCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "locations",
		Short: "List rental locations matching a keyword",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}

			platform, err := a.platform()
			if err != nil {
				return err
			}

			locations, err := a.findLocations(cmd.Context(), platform)
			if err != nil {
				return err
			}

			if format == formatJSON {
				return render.JSON(a.out, locations)
			}

			render.PrintLocations(a.out, locations)

			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format (table, json)")

	return cmd
}

// location returns the configured location code, or asks the user to pick
// one of the locations matching the keyword.
func (a *app) location(ctx context.Context, platform any) (string, error) {
	if a.cfg.Location != "" {
		return a.cfg.Location, nil
	}

	locations, err := a.findLocations(ctx, platform)
	if err != nil {
		return "", err
	}

	return a.selectLocation(locations)
}

func (a *app) findLocations(ctx context.Context, platform any) ([]schema.Location, error) {
	locator, ok := platform.(interfaces.WithLocations)
	if !ok {
		return nil, platformErrors.ErrorNotImplemented
	}

	keyword := a.cfg.Keyword
	if keyword == "" {
		answer, err := a.prompt("Enter keyword for location search (e.g., Denver): ")
		if err != nil {
			return nil, err
		}
		keyword = answer
	}

	if keyword == "" {
		return nil, ErrMissingKeyword
	}

	return locator.GetLocations(ctx, schema.LocationsParams{
		CountryCode: a.cfg.CountryCode,
		Keyword:     keyword,
	}, a.logger)
}

func (a *app) selectLocation(locations []schema.Location) (string, error) {
	for i, location := range locations {
		fmt.Fprintf(a.out, "%d: %s (%s) - %s, %s\n",
			i+1, location.Name, location.Code, location.Address.Line1, location.Address.City)
	}

	answer, err := a.prompt("Choose a location by number: ")
	if err != nil {
		return "", err
	}

	choice, err := strconv.Atoi(answer)
	if err != nil || choice < 1 || choice > len(locations) {
		return "", fmt.Errorf("%w %q, expected a number from 1 to %d", ErrInvalidChoice, answer, len(locations))
	}

	location := locations[choice-1]
	a.logger.Info().Str("location", location.Code).Msg("Location selected")

	return location.Code, nil
}

func (a *app) prompt(question string) (string, error) {
	fmt.Fprint(a.out, question)

	line, err := a.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", fmt.Errorf("failed to read answer: %w", err)
	}

	return strings.TrimSpace(line), nil
}
