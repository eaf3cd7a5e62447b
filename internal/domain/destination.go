package domain

import (
	"strconv"
	"strings"
)

// Coordinates is a validated latitude/longitude pair.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Destination is a single catalog entry. Instances are immutable once fetched;
// identity for de-duplication is the ID.
//
// Latitude/Longitude are kept as the dataset's raw strings; use Coordinates()
// for a validated numeric pair.
type Destination struct {
	ID       DestinationID
	Name     string
	Country  string
	Region   string
	Category string

	Latitude  string
	Longitude string

	Currency             string
	Language             string
	BestTimeToVisit      string
	CostOfLiving         string
	Safety               string
	AnnualTourists       string
	CulturalSignificance string
	FamousFoods          string
	Description          string
}

// Coordinates parses the raw latitude/longitude fields. ok is false when
// either is absent or not numeric; callers must not drive the map from an
// unvalidated pair.
func (d Destination) Coordinates() (Coordinates, bool) {
	return ParseCoordinates(d.Latitude, d.Longitude)
}

// ParseCoordinates validates a raw latitude/longitude string pair. Values
// outside the WGS84 range are rejected like non-numeric ones.
func ParseCoordinates(lat, lon string) (Coordinates, bool) {
	latv, err := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	if err != nil {
		return Coordinates{}, false
	}
	lonv, err := strconv.ParseFloat(strings.TrimSpace(lon), 64)
	if err != nil {
		return Coordinates{}, false
	}
	if latv < -90 || latv > 90 || lonv < -180 || lonv > 180 {
		return Coordinates{}, false
	}
	return Coordinates{Latitude: latv, Longitude: lonv}, true
}

// Valid reports whether a dataset row is well-formed enough to show to a user.
// Malformed rows (missing id or name) are silently dropped at the ingestion
// boundary, never rendered as suggestions or search results.
func (d Destination) Valid() bool {
	return d.ID != "" && d.Name != ""
}
