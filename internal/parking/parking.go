// Package parking carries the static campus parking and map data the app
// displays; there is no backend endpoint for it.
package parking

type Lot struct {
	ID        int
	Name      string
	Available int
	Total     int
	Location  string
}

type Level string

const (
	LevelHigh   Level = "high"   // > 50% free
	LevelMedium Level = "medium" // > 20% free
	LevelLow    Level = "low"
)

func Lots() []Lot {
	return []Lot{
		{ID: 1, Name: "Lot A", Available: 45, Total: 100, Location: "Main Entrance"},
		{ID: 2, Name: "Lot B", Available: 23, Total: 80, Location: "South Side"},
		{ID: 3, Name: "Lot C", Available: 67, Total: 120, Location: "East Wing"},
		{ID: 4, Name: "Lot D", Available: 12, Total: 50, Location: "Library"},
		{ID: 5, Name: "Lot E", Available: 89, Total: 150, Location: "Sports Complex"},
	}
}

func (l Lot) Percent() int {
	if l.Total == 0 {
		return 0
	}
	return l.Available * 100 / l.Total
}

func (l Lot) Availability() Level {
	switch p := l.Percent(); {
	case p > 50:
		return LevelHigh
	case p > 20:
		return LevelMedium
	default:
		return LevelLow
	}
}

// Campus center used by the map screen.
const (
	CampusLatitude  = 26.8431
	CampusLongitude = 75.5647
)

// Place is a campus point of interest shown as a map marker.
type Place struct {
	Name      string
	Latitude  float64
	Longitude float64
}

func Places() []Place {
	return []Place{
		{Name: "Academic Block 1", Latitude: 26.8435, Longitude: 75.5650},
		{Name: "Academic Block 2", Latitude: 26.8428, Longitude: 75.5655},
		{Name: "Central Library", Latitude: 26.8440, Longitude: 75.5640},
		{Name: "Student Hostels", Latitude: 26.8420, Longitude: 75.5660},
		{Name: "Food Court", Latitude: 26.8438, Longitude: 75.5645},
		{Name: "Sports Complex", Latitude: 26.8415, Longitude: 75.5635},
	}
}
