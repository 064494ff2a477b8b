package domain

import "time"

// Coordinates is a WGS84 position reported by a courier device.
type Coordinates struct {
	Lat float64
	Lng float64
}

// Valid checks that the coordinates are inside the WGS84 range.
func (c Coordinates) Valid() bool {
	if c.Lat < -90 || c.Lat > 90 {
		return false
	}
	if c.Lng < -180 || c.Lng > 180 {
		return false
	}
	return true
}

// LocationSample is one append-only position record for a courier,
// optionally tied to the delivery the courier was handling at the time.
type LocationSample struct {
	ID         int64
	CourierID  int64
	DeliveryID *int64
	Coords     Coordinates
	RecordedAt time.Time
}
