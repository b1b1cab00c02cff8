package recommend

import (
	"testing"

	"github.com/rendis/triptap/internal/model"
)

func feeCeil(v float64) *float64 { return &v }

func fixtureTable() []model.Destination {
	return []model.Destination{
		{Name: "Taj Mahal", City: "Agra", Zone: "North", Type: "Monument", Fee: 50, Rating: 4.6, BestTime: "Morning", DSLR: "Yes"},
		{Name: "Agra Fort", City: "Agra", Zone: "North", Type: "Fort", Fee: 40, Rating: 4.5, BestTime: "Evening", DSLR: "No"},
		{Name: "Red Fort", City: "Delhi", Zone: "North", Type: "Fort", Fee: 35, Rating: 4.4, BestTime: "Evening", DSLR: "Yes"},
		{Name: "National Museum", City: "Delhi", Zone: "North", Type: "Art Museum", Fee: 20, Rating: 4.3, BestTime: "Afternoon", DSLR: "No"},
		{Name: "Marina Beach", City: "Chennai", Zone: "South", Type: "Beach", Fee: 0, Rating: 4.2, BestTime: "Evening", DSLR: "Yes"},
	}
}

func names(dests []model.Destination) []string {
	out := make([]string, len(dests))
	for i, d := range dests {
		out[i] = d.Name
	}
	return out
}

func TestFilter(t *testing.T) {
	table := fixtureTable()

	tests := []struct {
		name     string
		criteria model.Criteria
		want     []string
	}{
		{
			name:     "no criteria returns full table in order",
			criteria: model.Criteria{},
			want:     []string{"Taj Mahal", "Agra Fort", "Red Fort", "National Museum", "Marina Beach"},
		},
		{
			name:     "zone exact match",
			criteria: model.Criteria{Zone: "South"},
			want:     []string{"Marina Beach"},
		},
		{
			name:     "type is case-insensitive substring",
			criteria: model.Criteria{Type: "museum"},
			want:     []string{"National Museum"},
		},
		{
			name:     "type substring matches within longer value",
			criteria: model.Criteria{Type: "fort"},
			want:     []string{"Agra Fort", "Red Fort"},
		},
		{
			name:     "max fee zero keeps only free entry",
			criteria: model.Criteria{MaxFee: feeCeil(0)},
			want:     []string{"Marina Beach"},
		},
		{
			name:     "dslr equality",
			criteria: model.Criteria{DSLR: "No"},
			want:     []string{"Agra Fort", "National Museum"},
		},
		{
			name:     "combined zone and fee ceiling",
			criteria: model.Criteria{Zone: "North", MaxFee: feeCeil(45)},
			want:     []string{"Agra Fort", "Red Fort", "National Museum"},
		},
		{
			name:     "all predicates together",
			criteria: model.Criteria{Zone: "North", Type: "fort", MaxFee: feeCeil(40), DSLR: "No"},
			want:     []string{"Agra Fort"},
		},
		{
			name:     "nothing matches",
			criteria: model.Criteria{Zone: "East"},
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(Filter(table, tt.criteria))
			if len(got) != len(tt.want) {
				t.Fatalf("Filter = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Filter[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNearby(t *testing.T) {
	table := fixtureTable()

	t.Run("same city excluding self", func(t *testing.T) {
		got := Nearby(table[0], table, DefaultNearbyCount) // Taj Mahal
		if len(got) != 1 {
			t.Fatalf("expected 1 nearby place, got %d", len(got))
		}
		if got[0].Name != "Agra Fort" {
			t.Errorf("nearby = %q, want Agra Fort", got[0].Name)
		}
		if got[0].Type != "Fort" || got[0].Rating != 4.5 {
			t.Errorf("projection = %+v, want Fort / 4.5", got[0])
		}
	})

	t.Run("city with no other entries", func(t *testing.T) {
		got := Nearby(table[4], table, DefaultNearbyCount) // Marina Beach
		if len(got) != 0 {
			t.Errorf("expected empty nearby, got %v", got)
		}
	})

	t.Run("duplicate names never include self", func(t *testing.T) {
		dupes := []model.Destination{
			{Name: "City Palace", City: "Jaipur", Type: "Palace", Rating: 4.2},
			{Name: "City Palace", City: "Jaipur", Type: "Palace", Rating: 4.2},
			{Name: "Hawa Mahal", City: "Jaipur", Type: "Palace", Rating: 4.4},
		}
		got := Nearby(dupes[0], dupes, DefaultNearbyCount)
		for _, n := range got {
			if n.Name == "City Palace" {
				t.Errorf("nearby includes the queried row's name: %v", got)
			}
		}
		if len(got) != 1 {
			t.Errorf("expected only Hawa Mahal, got %v", got)
		}
	})

	t.Run("topN cuts in table order", func(t *testing.T) {
		big := []model.Destination{
			{Name: "A", City: "Goa"},
			{Name: "B", City: "Goa"},
			{Name: "C", City: "Goa"},
			{Name: "D", City: "Goa"},
			{Name: "E", City: "Goa"},
		}
		got := Nearby(big[0], big, 3)
		if len(got) != 3 {
			t.Fatalf("expected 3 nearby places, got %d", len(got))
		}
		for i, want := range []string{"B", "C", "D"} {
			if got[i].Name != want {
				t.Errorf("nearby[%d] = %q, want %q", i, got[i].Name, want)
			}
		}
	})
}

func TestAssemble(t *testing.T) {
	table := fixtureTable()

	t.Run("worked example", func(t *testing.T) {
		small := []model.Destination{
			{Name: "Taj Mahal", City: "Agra", Zone: "North", Fee: 50},
			{Name: "Agra Fort", City: "Agra", Zone: "North", Fee: 40},
			{Name: "Red Fort", City: "Delhi", Zone: "North", Fee: 35},
		}
		got := Assemble(small, model.Criteria{Zone: "North", MaxFee: feeCeil(45)})
		if len(got) != 2 || got[0].Name != "Agra Fort" || got[1].Name != "Red Fort" {
			t.Fatalf("Assemble = %+v, want [Agra Fort, Red Fort]", got)
		}
	})

	t.Run("nearby attached on request", func(t *testing.T) {
		got := Assemble(table, model.Criteria{Zone: "North", IncludeNearby: true})
		if len(got) != 4 {
			t.Fatalf("expected 4 results, got %d", len(got))
		}
		// Taj Mahal's nearby comes from the full table, not the filtered set
		if len(got[0].Nearby) != 1 || got[0].Nearby[0].Name != "Agra Fort" {
			t.Errorf("Taj Mahal nearby = %+v, want [Agra Fort]", got[0].Nearby)
		}
	})

	t.Run("nearby omitted by default", func(t *testing.T) {
		got := Assemble(table, model.Criteria{})
		for _, r := range got {
			if r.Nearby != nil {
				t.Errorf("result %s has nearby without request", r.Name)
			}
		}
	})

	t.Run("empty result is not an error", func(t *testing.T) {
		got := Assemble(table, model.Criteria{Zone: "West"})
		if len(got) != 0 {
			t.Errorf("expected no results, got %+v", got)
		}
	})
}
