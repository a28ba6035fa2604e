package masterdata

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"sena/db"
	"sena/models"
	"sena/rdx"
	"sena/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Master data changes rarely; a short Redis TTL keeps the catalog
// collections off the hot path.
const cacheTTL = 5 * time.Minute

func GetLocations(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	serveList(w, "masterdata:locations", "locations", db.LocationsCollection, &[]models.Location{})
}

func GetSlots(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	serveList(w, "masterdata:slots", "slots", db.SlotMasterCollection, &[]models.SlotDefinition{})
}

func GetDeskTypes(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	serveList(w, "masterdata:desktypes", "desk_types", db.DeskTypesCollection, &[]models.DeskType{})
}

// GetAllMasterData returns locations, slots and desk types in one call.
func GetAllMasterData(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var locations []models.Location
	var slots []models.SlotDefinition
	var deskTypes []models.DeskType

	if err := fetchAll(ctx, db.LocationsCollection, &locations); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch master data")
		return
	}
	if err := fetchAll(ctx, db.SlotMasterCollection, &slots); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch master data")
		return
	}
	if err := fetchAll(ctx, db.DeskTypesCollection, &deskTypes); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch master data")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"locations":  locations,
		"slots":      slots,
		"desk_types": deskTypes,
	})
}

// serveList answers from Redis when possible and falls back to Mongo,
// refreshing the cache on the way out.
func serveList(w http.ResponseWriter, cacheKey, field string, coll *mongo.Collection, out any) {
	if cached, err := rdx.RdxGet(cacheKey); err == nil && cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := fetchAll(ctx, coll, out); err != nil {
		utils.GetLogger().Error("master data query failed", zap.String("field", field), zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch master data")
		return
	}

	payload, err := json.Marshal(utils.M{field: out})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to encode master data")
		return
	}
	if err := rdx.SetWithExpiry(cacheKey, string(payload), cacheTTL); err != nil {
		utils.GetLogger().Warn("master data cache write failed", zap.Error(err))
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(payload)
}

func fetchAll(ctx context.Context, coll *mongo.Collection, out any) error {
	cur, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return err
	}
	defer cur.Close(ctx)
	return cur.All(ctx, out)
}
