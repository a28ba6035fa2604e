package ledger

import (
	"context"

	"sena/db"
	"sena/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Ledger reads booking transactions. It never mutates them; the
// booking subsystem owns the collection.
type Ledger struct {
	Txns *mongo.Collection
}

func NewLedger() *Ledger {
	return &Ledger{Txns: db.BookingTxnsCollection}
}

// Status looks up the booking transaction for a (desk, slot, date)
// triple. ok is false when no transaction exists, which callers treat
// as available.
func (l *Ledger) Status(ctx context.Context, deskID, slotID, date string) (models.BookingStatus, bool, error) {
	var txn models.BookingTransaction
	err := l.Txns.FindOne(ctx, bson.M{
		"deskid": deskID,
		"slotid": slotID,
		"date":   date,
	}).Decode(&txn)
	if err == mongo.ErrNoDocuments {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return txn.Status, true, nil
}
