package middleware

import (
	"net/http"
	"strings"

	"bitbucket.org/crgw/flexrates/internal/tools/responding"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type factory interface {
	GetPlatform(string) (any, error)
}

const (
	PlatformKey string = "platform"
	BrandKey    string = "brand"
)

// PreparePlatform resolves the brand path segment, e.g. "Avis" or "budget",
// to its supplier client. Brand names are matched case-insensitively and the
// normalized name is stored under BrandKey.
func PreparePlatform(f factory) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		brand := strings.ToLower(strings.TrimSpace(ctx.Params.ByName("platform")))

		platform, err := f.GetPlatform(brand)
		if err != nil {
			responding.HandleError(ctx, http.StatusNotFound, "Failed to find platform service", err)
			return
		}

		if logger, ok := ctx.Get("logger"); ok {
			logger.(*zerolog.Logger).
				Debug().
				Str("brand", brand).
				Msg("Resolved supplier client")
		}

		ctx.Set(PlatformKey, platform)
		ctx.Set(BrandKey, brand)
	}
}
