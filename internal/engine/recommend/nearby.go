package recommend

import "github.com/rendis/triptap/internal/model"

// DefaultNearbyCount is how many same-city places a result carries.
const DefaultNearbyCount = 3

// Nearby returns up to topN other destinations in the same city as row, in
// table order. The row itself is excluded by name; there is deliberately no
// ranking by rating or proximity.
func Nearby(row model.Destination, table []model.Destination, topN int) []model.NearbyPlace {
	var out []model.NearbyPlace
	for _, d := range table {
		if d.City != row.City || d.Name == row.Name {
			continue
		}
		out = append(out, model.NearbyPlace{
			Name:   d.Name,
			Type:   d.Type,
			Rating: d.Rating,
		})
		if len(out) == topN {
			break
		}
	}
	return out
}
