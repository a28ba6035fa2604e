package snapshot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sena/models"
)

const dateLayout = "2006-01-02"

// DefaultTimeout bounds one build against its data sources.
const DefaultTimeout = 5 * time.Second

// Catalog is the read-only catalog provider the builder consumes.
type Catalog interface {
	ListDesksWithLocation(ctx context.Context) ([]models.DeskWithLocation, error)
	ListSlotDefinitions(ctx context.Context) ([]models.SlotDefinition, error)
	ActivePrice(ctx context.Context, deskTypeID, slotID string) (*float64, error)
}

// Ledger is the read-only booking transaction provider.
type Ledger interface {
	Status(ctx context.Context, deskID, slotID, date string) (models.BookingStatus, bool, error)
}

// Builder joins catalog and ledger state for one target date into a
// single AvailabilitySnapshot. Pure read and transform; no caching.
type Builder struct {
	Catalog Catalog
	Ledger  Ledger
	Timeout time.Duration
}

func NewBuilder(c Catalog, l Ledger) *Builder {
	return &Builder{Catalog: c, Ledger: l, Timeout: DefaultTimeout}
}

// ValidDate reports whether date is a well-formed ISO calendar date.
func ValidDate(date string) bool {
	_, err := time.Parse(dateLayout, date)
	return err == nil
}

// Today returns the current date in the builder's wire format.
func Today() string {
	return time.Now().Format(dateLayout)
}

// Build computes the availability snapshot for targetDate, defaulting
// to today when targetDate is empty. Every catalog desk appears in the
// result, each carrying one entry per defined slot; a (desk, slot)
// pair with no ledger transaction on targetDate is available.
func (b *Builder) Build(ctx context.Context, targetDate string) (*models.AvailabilitySnapshot, error) {
	if targetDate == "" {
		targetDate = Today()
	}
	if !ValidDate(targetDate) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, targetDate)
	}

	timeout := b.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	desks, err := b.Catalog.ListDesksWithLocation(ctx)
	if err != nil {
		return nil, classify("list desks", err)
	}
	slots, err := b.Catalog.ListSlotDefinitions(ctx)
	if err != nil {
		return nil, classify("list slots", err)
	}

	snap := &models.AvailabilitySnapshot{
		Date:  targetDate,
		Desks: make([]models.DeskAvailability, 0, len(desks)),
	}

	for _, desk := range desks {
		entries := make([]models.SlotEntry, 0, len(slots))
		for _, slot := range slots {
			status, ok, err := b.Ledger.Status(ctx, desk.DeskID, slot.SlotID, targetDate)
			if err != nil {
				return nil, classify("ledger status", err)
			}
			if !ok {
				status = models.StatusAvailable
			}

			price, err := b.Catalog.ActivePrice(ctx, desk.DeskTypeID, slot.SlotID)
			if err != nil {
				return nil, classify("active price", err)
			}

			entries = append(entries, models.SlotEntry{
				SlotID:    slot.SlotID,
				SlotType:  slot.SlotType,
				StartTime: slot.StartTime,
				EndTime:   slot.EndTime,
				TimeZone:  slot.TimeZone,
				Status:    status,
				Price:     price,
			})
		}

		snap.Desks = append(snap.Desks, models.DeskAvailability{
			DeskID:          desk.DeskID,
			DeskName:        desk.Name,
			FloorNumber:     desk.FloorNumber,
			Capacity:        desk.Capacity,
			Description:     desk.Description,
			DeskStatus:      desk.Status,
			BuildingName:    desk.BuildingName,
			BuildingAddress: desk.BuildingAddress,
			Amenities:       desk.Amenities,
			OperatingHours:  desk.OperatingHours,
			City:            desk.City,
			Slots:           entries,
		})
	}

	return snap, nil
}

func classify(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s: %v", ErrBuildTimeout, op, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrDataSourceUnavailable, op, err)
}
