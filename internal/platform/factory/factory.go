package factory

import (
	"fmt"
	"strings"
	"sync"

	"bitbucket.org/crgw/flexrates/internal/platform/errors"
	"bitbucket.org/crgw/flexrates/internal/platform/implementations/abg"
)

type Factory struct {
	configuration abg.Configuration
	platforms     map[string]any
	sync.Mutex
}

// GetPlatform returns the client for a brand name such as "avis", creating
// it on first use. Clients are kept so their access tokens are reused.
func (f *Factory) GetPlatform(name string) (any, error) {
	name = strings.ToLower(name)

	f.Lock()
	defer f.Unlock()

	_, ok := f.platforms[name]

	if !ok {
		switch name {

		// Register all platforms here
		case "avis":
			f.platforms[name] = abg.New(f.brandConfiguration("Avis"))
		case "budget":
			f.platforms[name] = abg.New(f.brandConfiguration("Budget"))
		default:
			return nil, fmt.Errorf("platform %s not found: %w", name, errors.ErrorUnknownPlatform)
		}
	}

	return f.platforms[name], nil
}

func (f *Factory) brandConfiguration(brand string) abg.Configuration {
	configuration := f.configuration
	configuration.Brand = brand

	return configuration
}

func NewFactory(configuration abg.Configuration) *Factory {
	return &Factory{
		configuration: configuration,
		platforms:     make(map[string]any),
	}
}
