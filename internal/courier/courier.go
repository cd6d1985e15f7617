// Package courier generates deep links for external ride-hailing apps so an
// emergency delivery can be dispatched with pickup and dropoff pre-filled.
package courier

import "fmt"

// Point is a latitude/longitude pair.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Links holds equivalent deep links for the supported courier apps plus a
// mobile-web fallback.
type Links struct {
	UberApp string `json:"uber_app"`
	BoltApp string `json:"bolt_app"`
	UberWeb string `json:"uber_web"`
}

// GenerateDeeplink formats the pickup and dropoff coordinates into courier
// deep links. Coordinates are embedded verbatim; no range validation and no
// network calls happen here.
func GenerateDeeplink(pickup, dropoff Point) Links {
	return Links{
		UberApp: fmt.Sprintf(
			"uber://?action=setPickup&pickup[latitude]=%v&pickup[longitude]=%v&dropoff[latitude]=%v&dropoff[longitude]=%v",
			pickup.Lat, pickup.Lon, dropoff.Lat, dropoff.Lon),
		BoltApp: fmt.Sprintf(
			"bolt://rider?pickup=%v,%v&destination=%v,%v",
			pickup.Lat, pickup.Lon, dropoff.Lat, dropoff.Lon),
		UberWeb: fmt.Sprintf(
			"https://m.uber.com/ul/?action=setPickup&client_id=YOUR_CLIENT_ID&pickup[latitude]=%v&pickup[longitude]=%v&dropoff[latitude]=%v&dropoff[longitude]=%v",
			pickup.Lat, pickup.Lon, dropoff.Lat, dropoff.Lon),
	}
}
