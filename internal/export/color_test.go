package export

import (
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{in: "#000000", want: color.NRGBA{A: 255}},
		{in: "#FF8000", want: color.NRGBA{R: 255, G: 128, A: 255}},
		{in: "#f80", want: color.NRGBA{R: 255, G: 136, A: 255}},
		{in: "#11223344", want: color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x44}},
		{in: " Red ", want: color.NRGBA{R: 255, A: 255}},
		{in: "gray", want: color.NRGBA{R: 128, G: 128, B: 128, A: 255}},
		{in: "", wantErr: true},
		{in: "purple", wantErr: true},
		{in: "#12345", wantErr: true},
		{in: "#zzzzzz", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHexColor(t *testing.T) {
	tests := []struct {
		in   color.Color
		want string
	}{
		{color.Black, "#000000"},
		{color.NRGBA{R: 255, G: 255, A: 255}, "#ffff00"},
		{color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x44}, "#11223344"},
	}
	for _, tt := range tests {
		if got := HexColor(tt.in); got != tt.want {
			t.Errorf("HexColor(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
