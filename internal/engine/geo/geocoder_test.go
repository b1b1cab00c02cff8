package geo

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNominatimGeocode(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantOK  bool
		wantErr bool
		wantLat float64
		wantLng float64
	}{
		{
			name: "match",
			handler: func(w http.ResponseWriter, r *http.Request) {
				if got := r.URL.Query().Get("q"); got != "Agra" {
					t.Errorf("query q = %q, want Agra", got)
				}
				w.Write([]byte(`[{"lat":"27.1767","lon":"78.0081","display_name":"Agra, India"}]`))
			},
			wantOK:  true,
			wantLat: 27.1767,
			wantLng: 78.0081,
		},
		{
			name: "no match is not an error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`[]`))
			},
			wantOK: false,
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
			wantErr: true,
		},
		{
			name: "garbage response",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`not json`))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			g := NewNominatimWithBase(srv.URL)
			coords, ok, err := g.Geocode("Agra")

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Geocode: %v", err)
			}
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !tt.wantOK {
				return
			}
			if coords.Lat != tt.wantLat || coords.Lng != tt.wantLng {
				t.Errorf("coords = %+v, want (%f, %f)", coords, tt.wantLat, tt.wantLng)
			}
		})
	}
}
