package models

// BookingStatus is the state of one (desk, slot, date) triple in the
// booking ledger. The absence of a ledger row means StatusAvailable.
type BookingStatus string

const (
	StatusAvailable BookingStatus = "available"
	StatusBooked    BookingStatus = "booked"
	StatusPending   BookingStatus = "pending"
	StatusCancelled BookingStatus = "cancelled"
)

// Known reports whether the status is one of the closed set above.
// Unknown values coming out of the ledger are still carried into
// snapshots verbatim; callers that branch on status should treat
// unknown values as non-available.
func (s BookingStatus) Known() bool {
	switch s {
	case StatusAvailable, StatusBooked, StatusPending, StatusCancelled:
		return true
	}
	return false
}

// DeskStatus is the catalog-level state of a desk, independent of any
// slot booking state.
type DeskStatus string

const (
	DeskActive      DeskStatus = "active"
	DeskInactive    DeskStatus = "inactive"
	DeskMaintenance DeskStatus = "maintenance"
)

type SlotType string

const (
	SlotFullDay SlotType = "full_day"
	SlotHalfDay SlotType = "half_day"
	SlotHourly  SlotType = "hour"
)

type Desk struct {
	DeskID      string     `json:"desk_id" bson:"deskid"`
	Name        string     `json:"desk_name" bson:"name"`
	FloorNumber int        `json:"floor_number" bson:"floornumber"`
	Capacity    int        `json:"capacity" bson:"capacity"`
	Description string     `json:"description" bson:"description"`
	Status      DeskStatus `json:"desk_status" bson:"status"`
	BuildingID  string     `json:"buildingId,omitempty" bson:"buildingid"`
	LocationID  string     `json:"locationId,omitempty" bson:"locationid"`
	DeskTypeID  string     `json:"deskTypeId,omitempty" bson:"desktypeid"`
}

type Building struct {
	BuildingID     string   `json:"building_id" bson:"buildingid"`
	Name           string   `json:"building_name" bson:"name"`
	Address        string   `json:"building_address" bson:"address"`
	Amenities      []string `json:"amenities" bson:"amenities"`
	OperatingHours string   `json:"operating_hours" bson:"operatinghours"`
	LocationID     string   `json:"locationId,omitempty" bson:"locationid"`
}

type Location struct {
	LocationID string `json:"location_id" bson:"locationid"`
	Name       string `json:"location_name" bson:"name"`
}

type DeskType struct {
	DeskTypeID string `json:"desk_type_id" bson:"desktypeid"`
	Type       string `json:"type" bson:"type"`
	Capacity   int    `json:"capacity" bson:"capacity"`
}

// SlotDefinition is catalog-wide: every desk is bookable for every
// defined slot.
type SlotDefinition struct {
	SlotID    string   `json:"slot_id" bson:"slotid"`
	SlotType  SlotType `json:"slot_type" bson:"slottype"`
	StartTime string   `json:"start_time" bson:"starttime"`
	EndTime   string   `json:"end_time" bson:"endtime"`
	TimeZone  string   `json:"time_zone" bson:"timezone"`
}

// PriceRule maps (desk type, slot) to a price. At most one rule per
// pair should be active; when the data violates that, the rule with
// the lowest id wins.
type PriceRule struct {
	RuleID     string  `json:"rule_id" bson:"ruleid"`
	DeskTypeID string  `json:"desk_type_id" bson:"desktypeid"`
	SlotID     string  `json:"slot_id" bson:"slotid"`
	Price      float64 `json:"price" bson:"price"`
	IsActive   bool    `json:"is_active" bson:"isactive"`
}

// BookingTransaction is read-only here; the booking subsystem owns it.
type BookingTransaction struct {
	DeskID string        `json:"deskId" bson:"deskid"`
	SlotID string        `json:"slotId" bson:"slotid"`
	Date   string        `json:"date" bson:"date"`
	Status BookingStatus `json:"status" bson:"status"`
}

// DeskWithLocation is one row of the desks ⋈ buildings ⋈ locations join.
type DeskWithLocation struct {
	DeskID          string     `bson:"deskid"`
	Name            string     `bson:"name"`
	FloorNumber     int        `bson:"floornumber"`
	Capacity        int        `bson:"capacity"`
	Description     string     `bson:"description"`
	Status          DeskStatus `bson:"status"`
	DeskTypeID      string     `bson:"desktypeid"`
	BuildingName    string     `bson:"buildingname"`
	BuildingAddress string     `bson:"buildingaddress"`
	Amenities       []string   `bson:"amenities"`
	OperatingHours  string     `bson:"operatinghours"`
	City            string     `bson:"city"`
}
