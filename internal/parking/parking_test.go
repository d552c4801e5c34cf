package parking_test

import (
	"testing"

	"campus-services-client/internal/parking"
)

func TestAvailabilityLevels(t *testing.T) {
	cases := []struct {
		available, total int
		want             parking.Level
	}{
		{89, 150, parking.LevelHigh},  // 59%
		{23, 80, parking.LevelMedium}, // 28%
		{12, 50, parking.LevelMedium}, // 24%
		{10, 100, parking.LevelLow},
		{0, 100, parking.LevelLow},
		{0, 0, parking.LevelLow},
	}
	for _, c := range cases {
		lot := parking.Lot{Available: c.available, Total: c.total}
		if got := lot.Availability(); got != c.want {
			t.Errorf("%d/%d: got %s, want %s", c.available, c.total, got, c.want)
		}
	}
}

func TestLots(t *testing.T) {
	lots := parking.Lots()
	if len(lots) != 5 {
		t.Fatalf("got %d lots, want 5", len(lots))
	}
	for _, lot := range lots {
		if lot.Available > lot.Total {
			t.Errorf("%s: available %d exceeds total %d", lot.Name, lot.Available, lot.Total)
		}
		if p := lot.Percent(); p < 0 || p > 100 {
			t.Errorf("%s: percent %d out of range", lot.Name, p)
		}
	}
}

func TestPlacesNearCampusCenter(t *testing.T) {
	for _, p := range parking.Places() {
		if p.Name == "" {
			t.Fatal("place without a name")
		}
		dLat := p.Latitude - parking.CampusLatitude
		dLon := p.Longitude - parking.CampusLongitude
		if dLat > 0.01 || dLat < -0.01 || dLon > 0.01 || dLon < -0.01 {
			t.Errorf("%s: coordinates %.4f,%.4f far from campus", p.Name, p.Latitude, p.Longitude)
		}
	}
}
