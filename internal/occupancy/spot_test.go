package occupancy

import (
	"errors"
	"image"
	"testing"
)

func TestSpot_Rect(t *testing.T) {
	s := Spot{X: 87, Y: 60, Width: 87, Height: 160}

	if got, want := s.Rect(), image.Rect(87, 60, 174, 220); got != want {
		t.Errorf("Rect: got %v, want %v", got, want)
	}
	if got := s.Area(); got != 13920 {
		t.Errorf("Area: got %d, want 13920", got)
	}
	if got := s.String(); got != "(x=87, y=60, w=87, h=160)" {
		t.Errorf("String: got %q", got)
	}
}

func TestSpot_Validate(t *testing.T) {
	tests := []struct {
		name    string
		spot    Spot
		wantErr bool
	}{
		{"valid", Spot{0, 60, 87, 160}, false},
		{"single pixel", Spot{5, 5, 1, 1}, false},
		{"negative x", Spot{-1, 0, 10, 10}, true},
		{"negative y", Spot{0, -1, 10, 10}, true},
		{"zero width", Spot{0, 0, 0, 10}, true},
		{"zero height", Spot{0, 0, 10, 0}, true},
		{"negative width", Spot{0, 0, -5, 10}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spot.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidSpot) {
					t.Errorf("expected ErrInvalidSpot, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateSpots(t *testing.T) {
	if err := ValidateSpots(nil); err != nil {
		t.Errorf("empty lot should be valid: %v", err)
	}

	err := ValidateSpots([]Spot{{0, 0, 10, 10}, {10, 0, 0, 10}})
	if !errors.Is(err, ErrInvalidSpot) {
		t.Fatalf("expected ErrInvalidSpot, got %v", err)
	}
	if want := "spot 2"; len(err.Error()) < len(want) || err.Error()[:len(want)] != want {
		t.Errorf("error should name the failing spot, got %q", err.Error())
	}
}

func TestParseBoundsPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    BoundsPolicy
		wantErr bool
	}{
		{"", BoundsClip, false},
		{"clip", BoundsClip, false},
		{"reject", BoundsReject, false},
		{"ignore", "", true},
	}

	for _, tt := range tests {
		got, err := ParseBoundsPolicy(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseBoundsPolicy(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseBoundsPolicy(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
