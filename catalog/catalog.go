package catalog

import (
	"context"

	"sena/db"
	"sena/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store is the read-only catalog provider backed by MongoDB. The
// snapshot builder consumes it through the interfaces it defines, so
// tests can swap in fakes.
type Store struct {
	Desks      *mongo.Collection
	SlotMaster *mongo.Collection
	Pricing    *mongo.Collection
}

func NewStore() *Store {
	return &Store{
		Desks:      db.DesksCollection,
		SlotMaster: db.SlotMasterCollection,
		Pricing:    db.DeskPricingCollection,
	}
}

// ListDesksWithLocation returns one row per catalog desk, joined with
// its building and location attributes. Desks without a building or
// location still come back, with those fields empty.
func (s *Store) ListDesksWithLocation(ctx context.Context) ([]models.DeskWithLocation, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         "buildings",
			"localField":   "buildingid",
			"foreignField": "buildingid",
			"as":           "building",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$building", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "locations",
			"localField":   "locationid",
			"foreignField": "locationid",
			"as":           "location",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$location", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$project", Value: bson.M{
			"deskid":          1,
			"name":            1,
			"floornumber":     1,
			"capacity":        1,
			"description":     1,
			"status":          1,
			"desktypeid":      1,
			"buildingname":    "$building.name",
			"buildingaddress": "$building.address",
			"amenities":       "$building.amenities",
			"operatinghours":  "$building.operatinghours",
			"city":            "$location.name",
		}}},
	}

	cur, err := s.Desks.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var desks []models.DeskWithLocation
	if err := cur.All(ctx, &desks); err != nil {
		return nil, err
	}
	return desks, nil
}

// ListSlotDefinitions returns every slot in catalog definition order.
func (s *Store) ListSlotDefinitions(ctx context.Context) ([]models.SlotDefinition, error) {
	cur, err := s.SlotMaster.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var slots []models.SlotDefinition
	if err := cur.All(ctx, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// ActivePrice resolves the active price for a (desk type, slot) pair.
// A nil price means the pair is unpriced.
func (s *Store) ActivePrice(ctx context.Context, deskTypeID, slotID string) (*float64, error) {
	cur, err := s.Pricing.Find(ctx, bson.M{
		"desktypeid": deskTypeID,
		"slotid":     slotID,
		"isactive":   true,
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rules []models.PriceRule
	if err := cur.All(ctx, &rules); err != nil {
		return nil, err
	}

	rule := PickActiveRule(rules)
	if rule == nil {
		return nil, nil
	}
	price := rule.Price
	return &price, nil
}

// PickActiveRule handles dirty data carrying multiple active rules for
// one (desk type, slot) pair: the rule with the lowest id wins, so
// price resolution stays deterministic regardless of row order.
func PickActiveRule(rules []models.PriceRule) *models.PriceRule {
	var picked *models.PriceRule
	for i := range rules {
		r := &rules[i]
		if !r.IsActive {
			continue
		}
		if picked == nil || r.RuleID < picked.RuleID {
			picked = r
		}
	}
	return picked
}
