package models

import (
	"reflect"
	"testing"
)

func TestGetAmenitiesList(t *testing.T) {
	tests := []struct {
		name      string
		amenities string
		want      []string
	}{
		{"simple", "WiFi,Pool,Kitchen", []string{"WiFi", "Pool", "Kitchen"}},
		{"padded", " WiFi , Pool ", []string{"WiFi", "Pool"}},
		{"trailing comma", "WiFi,Pool,", []string{"WiFi", "Pool"}},
		{"single", "WiFi", []string{"WiFi"}},
		{"empty", "", []string{}},
		{"whitespace only", "   ", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Property{Amenities: tt.amenities}
			if got := p.GetAmenitiesList(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("GetAmenitiesList(%q) = %v, want %v", tt.amenities, got, tt.want)
			}
		})
	}
}
