package models

// SlotEntry is one bookable slot of one desk on the snapshot's date.
// Price is nil when no active price rule covers the (desk type, slot)
// pair; that is not an error.
type SlotEntry struct {
	SlotID    string        `json:"slot_id"`
	SlotType  SlotType      `json:"slot_type"`
	StartTime string        `json:"start_time"`
	EndTime   string        `json:"end_time"`
	TimeZone  string        `json:"time_zone"`
	Status    BookingStatus `json:"status"`
	Price     *float64      `json:"price"`
}

type DeskAvailability struct {
	DeskID          string      `json:"desk_id"`
	DeskName        string      `json:"desk_name"`
	FloorNumber     int         `json:"floor_number"`
	Capacity        int         `json:"capacity"`
	Description     string      `json:"description"`
	DeskStatus      DeskStatus  `json:"desk_status"`
	BuildingName    string      `json:"building_name"`
	BuildingAddress string      `json:"building_address"`
	Amenities       []string    `json:"amenities"`
	OperatingHours  string      `json:"operating_hours"`
	City            string      `json:"city"`
	Slots           []SlotEntry `json:"slots"`
}

// AvailabilitySnapshot is the full availability and pricing state of
// every desk for a single calendar date. It is derived on every build
// and never persisted.
type AvailabilitySnapshot struct {
	Date  string             `json:"date"`
	Desks []DeskAvailability `json:"desks"`
}
