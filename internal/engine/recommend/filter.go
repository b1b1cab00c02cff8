package recommend

import (
	"strings"

	"github.com/rendis/triptap/internal/model"
)

// Filter applies the criteria's predicates (logical AND) over the table in a
// single pass, preserving row order. Absent criteria impose no constraint.
func Filter(table []model.Destination, c model.Criteria) []model.Destination {
	var out []model.Destination
	typeQ := strings.ToLower(strings.TrimSpace(c.Type))
	for _, d := range table {
		if c.Zone != "" && d.Zone != c.Zone {
			continue
		}
		if typeQ != "" && !strings.Contains(strings.ToLower(d.Type), typeQ) {
			continue
		}
		if c.MaxFee != nil && d.Fee > *c.MaxFee {
			continue
		}
		if c.DSLR != "" && d.DSLR != c.DSLR {
			continue
		}
		out = append(out, d)
	}
	return out
}
