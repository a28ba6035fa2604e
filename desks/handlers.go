package desks

import (
	"context"
	"errors"
	"net/http"

	"sena/models"
	"sena/snapshot"
	"sena/utils"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

// SnapshotBuilder is the slice of the snapshot engine the HTTP
// handlers need.
type SnapshotBuilder interface {
	Build(ctx context.Context, targetDate string) (*models.AvailabilitySnapshot, error)
}

// GetAvailability serves the availability snapshot over plain HTTP for
// non-persistent consumers. Today's snapshot when no date is supplied.
func GetAvailability(builder SnapshotBuilder) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		date := r.URL.Query().Get("date")

		snap, err := builder.Build(r.Context(), date)
		if err != nil {
			switch {
			case errors.Is(err, snapshot.ErrInvalidDate):
				utils.RespondWithError(w, http.StatusBadRequest, "Invalid date format. Please use YYYY-MM-DD.")
			case errors.Is(err, snapshot.ErrDataSourceUnavailable), errors.Is(err, snapshot.ErrBuildTimeout):
				utils.GetLogger().Error("availability build failed", zap.String("date", date), zap.Error(err))
				utils.RespondWithError(w, http.StatusServiceUnavailable, "Failed to fetch desk data")
			default:
				utils.GetLogger().Error("availability build failed", zap.String("date", date), zap.Error(err))
				utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch desk data")
			}
			return
		}

		utils.RespondWithJSON(w, http.StatusOK, utils.M{
			"date":  snap.Date,
			"desks": snap.Desks,
		})
	}
}
