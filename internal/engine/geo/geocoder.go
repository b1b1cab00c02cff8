package geo

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rendis/triptap/internal/model"
)

// Geocoder resolves a free-text place name to coordinates. ok=false with a
// nil error means the service had no match, which is a normal outcome.
type Geocoder interface {
	Geocode(name string) (coords model.Coordinates, ok bool, err error)
}

type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Nominatim geocodes place names using the OSM Nominatim API. Every call is
// one network round-trip; results are not cached.
type Nominatim struct {
	baseURL string
	client  *http.Client
}

// NewNominatim returns a geocoder backed by nominatim.openstreetmap.org.
func NewNominatim() *Nominatim {
	return &Nominatim{
		baseURL: "https://nominatim.openstreetmap.org/search",
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// NewNominatimWithBase returns a geocoder pointed at an alternate endpoint,
// e.g. a self-hosted instance or a test server.
func NewNominatimWithBase(baseURL string) *Nominatim {
	g := NewNominatim()
	g.baseURL = baseURL
	return g
}

func (g *Nominatim) Geocode(name string) (model.Coordinates, bool, error) {
	u := g.baseURL + "?" + url.Values{
		"q":      {name},
		"format": {"json"},
		"limit":  {"1"},
	}.Encode()

	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return model.Coordinates{}, false, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", "triptap/0.1 (travel destination recommender)")

	resp, err := g.client.Do(req)
	if err != nil {
		return model.Coordinates{}, false, fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.Coordinates{}, false, fmt.Errorf("geocoding returned status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return model.Coordinates{}, false, fmt.Errorf("decoding geocoding response: %w", err)
	}

	if len(results) == 0 {
		return model.Coordinates{}, false, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return model.Coordinates{}, false, fmt.Errorf("invalid latitude from geocoder: %w", err)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return model.Coordinates{}, false, fmt.Errorf("invalid longitude from geocoder: %w", err)
	}

	return model.Coordinates{Lat: lat, Lng: lng}, true, nil
}
