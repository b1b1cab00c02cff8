package dataset

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "destinations.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

const header = "Name,City,Zone,Type,Entrance Fee in INR,Google review rating,Best Time to visit,DSLR Allowed\n"

func TestLoadCSV_DropsRowsWithBadFee(t *testing.T) {
	csv := header +
		"Taj Mahal,Agra,North,Monument,50,4.6,Morning,Yes\n" +
		"Mystery Fort,Agra,North,Fort,unknown,4.1,Evening,No\n" +
		"Ghost Palace,Agra,North,Palace,,4.0,Evening,No\n" +
		"Weird Temple,Agra,North,Temple,-10,4.2,Morning,Yes\n" +
		"Agra Fort,Agra,North,Fort,40,4.5,Evening,No\n"

	table, err := LoadCSV(writeCSV(t, csv))
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}

	if len(table) != 2 {
		t.Fatalf("expected 2 rows after coercion, got %d", len(table))
	}
	if table[0].Name != "Taj Mahal" || table[1].Name != "Agra Fort" {
		t.Errorf("unexpected rows or order: %q, %q", table[0].Name, table[1].Name)
	}

	for _, d := range table {
		if d.Fee < 0 {
			t.Errorf("row %s has negative fee %f after load", d.Name, d.Fee)
		}
	}
}

func TestLoadCSV_KeepsRowWithUnparseableRating(t *testing.T) {
	csv := header + "Red Fort,Delhi,North,Fort,35,not-a-number,Evening,Yes\n"

	table, err := LoadCSV(writeCSV(t, csv))
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if len(table) != 1 {
		t.Fatalf("expected 1 row, got %d", len(table))
	}
	if table[0].Rating != 0 {
		t.Errorf("expected zero rating for unparseable value, got %f", table[0].Rating)
	}
}

func TestLoadCSV_MissingColumns(t *testing.T) {
	csv := "Name,City,Zone\nTaj Mahal,Agra,North\n"

	_, err := LoadCSV(writeCSV(t, csv))
	if err == nil {
		t.Fatal("expected error for missing columns")
	}
	if !strings.Contains(err.Error(), "Entrance Fee in INR") {
		t.Errorf("error should name the missing column, got: %v", err)
	}
}

func TestLoadCSV_MissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	_, err := Load("destinations.txt")
	if err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestDistinctValues(t *testing.T) {
	csv := header +
		"Taj Mahal,Agra,North,Monument,50,4.6,Morning,Yes\n" +
		"Agra Fort,Agra,North,Fort,40,4.5,Evening,No\n" +
		"Marina Beach,Chennai,South,Beach,0,4.2,Evening,Yes\n" +
		"Fort St George,Chennai,South,Fort,15,4.0,Morning,Yes\n"

	table, err := LoadCSV(writeCSV(t, csv))
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}

	if got, want := Zones(table), []string{"North", "South"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Zones = %v, want %v", got, want)
	}
	if got, want := Types(table), []string{"Beach", "Fort", "Monument"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Types = %v, want %v", got, want)
	}
}
