package courier

import "testing"

func TestGenerateDeeplink(t *testing.T) {
	pickup := Point{Lat: -1.2921, Lon: 36.8219}
	dropoff := Point{Lat: -1.3, Lon: 36.9}

	links := GenerateDeeplink(pickup, dropoff)

	want := Links{
		UberApp: "uber://?action=setPickup&pickup[latitude]=-1.2921&pickup[longitude]=36.8219&dropoff[latitude]=-1.3&dropoff[longitude]=36.9",
		BoltApp: "bolt://rider?pickup=-1.2921,36.8219&destination=-1.3,36.9",
		UberWeb: "https://m.uber.com/ul/?action=setPickup&client_id=YOUR_CLIENT_ID&pickup[latitude]=-1.2921&pickup[longitude]=36.8219&dropoff[latitude]=-1.3&dropoff[longitude]=36.9",
	}
	if links != want {
		t.Fatalf("links mismatch:\n got  %+v\n want %+v", links, want)
	}
}

func TestGenerateDeeplinkZeroCoordinates(t *testing.T) {
	// Coordinates go in verbatim, zero included.
	links := GenerateDeeplink(Point{}, Point{})
	want := "bolt://rider?pickup=0,0&destination=0,0"
	if links.BoltApp != want {
		t.Fatalf("bolt link: got %s, want %s", links.BoltApp, want)
	}
}
