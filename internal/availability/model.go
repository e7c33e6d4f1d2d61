package availability

// SlotStatus classifies a single generated time slot.
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotBooked    SlotStatus = "booked"
	SlotBuffer    SlotStatus = "buffer"
	SlotPast      SlotStatus = "past"
	// SlotClosed is never produced by slot generation; it exists so the
	// slot and day status vocabularies line up for API consumers.
	SlotClosed SlotStatus = "closed"
)

// DayStatus is the aggregate status of a whole calendar day.
type DayStatus string

const (
	DayAvailable DayStatus = "available"
	DayLimited   DayStatus = "limited"
	DayFull      DayStatus = "full"
	DayClosed    DayStatus = "closed"
)

// TimeSlot is one bookable interval of a day, expressed as wall-clock
// "HH:mm" strings in the resource's timezone.
type TimeSlot struct {
	Start  string     `json:"start"`
	End    string     `json:"end"`
	Status SlotStatus `json:"status"`
	Price  float64    `json:"price"`
}

// DayAvailability summarizes one calendar day of a resource.
// TotalSlots counts slots that are still actionable (booked, buffer or
// available); slots already in the past are excluded from the count.
type DayAvailability struct {
	Date           string     `json:"date"`
	Status         DayStatus  `json:"status"`
	AvailableSlots int        `json:"available_slots"`
	TotalSlots     int        `json:"total_slots"`
	Slots          []TimeSlot `json:"slots"`
}
