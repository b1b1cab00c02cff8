package recommend

import "github.com/rendis/triptap/internal/model"

// Assemble filters the table and projects each match into a Result. When the
// criteria ask for nearby places, each result carries the first
// DefaultNearbyCount same-city destinations from the full (unfiltered) table.
// An empty return is a normal outcome, not an error.
func Assemble(table []model.Destination, c model.Criteria) []model.Result {
	matched := Filter(table, c)

	results := make([]model.Result, 0, len(matched))
	for _, d := range matched {
		r := model.Result{
			Name:     d.Name,
			City:     d.City,
			Rating:   d.Rating,
			Fee:      d.Fee,
			BestTime: d.BestTime,
		}
		if c.IncludeNearby {
			r.Nearby = Nearby(d, table, DefaultNearbyCount)
		}
		results = append(results, r)
	}
	return results
}
