// internal/api/facilities/handlers.go
package facilities

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/sgchoi-dev/facilitybook/internal/api/apiutil"
	"github.com/sgchoi-dev/facilitybook/internal/db"
	"github.com/sgchoi-dev/facilitybook/internal/registry"
)

var (
	catalog     *registry.Registry
	catalogOnce sync.Once
)

const facilityQueryTimeout = 5 * time.Second

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(r *registry.Registry) {
	if r == nil {
		return
	}
	catalogOnce.Do(func() {
		catalog = r
	})
}

// GET /reservations/facilities
func HandleList(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	reg := loadRegistry()
	if reg == nil {
		logger.Error().Msg("Registry not initialized")
		apiutil.WriteError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), facilityQueryTimeout)
	defer cancel()

	facilities, err := reg.List(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list facilities")
		apiutil.WriteError(w, http.StatusInternalServerError, "Failed to list facilities")
		return
	}

	if facilities == nil {
		facilities = []db.Facility{}
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, facilities); err != nil {
		logger.Error().Err(err).Msg("Failed to write facility list response")
	}
}

func loadRegistry() *registry.Registry {
	return catalog
}
