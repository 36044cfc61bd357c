package core

import "testing"

func TestColorLighten(t *testing.T) {
	tests := []struct {
		name     string
		c        Color
		step     int
		expected Color
	}{
		{"plain", RGB(80, 80, 170), 20, RGB(100, 100, 190)},
		{"clamps at 255", RGB(250, 10, 240), 20, RGB(255, 30, 255)},
		{"negative darkens", RGB(10, 100, 100), -20, RGB(0, 80, 80)},
		{"default stays default", ColorDefault, 20, ColorDefault},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.c.Lighten(tc.step); got != tc.expected {
				t.Errorf("Lighten(%d) = %v, expected %v", tc.step, got, tc.expected)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in       string
		expected Color
		wantErr  bool
	}{
		{"#aa5050", RGB(0xaa, 0x50, 0x50), false},
		{"AA5050", RGB(0xaa, 0x50, 0x50), false},
		{" #ffffff ", RGB(255, 255, 255), false},
		{"default", ColorDefault, false},
		{"", ColorDefault, false},
		{"#fff", ColorDefault, true},
		{"#gggggg", ColorDefault, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseColor(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.expected {
				t.Errorf("ParseColor(%q) = %v, expected %v", tc.in, got, tc.expected)
			}
		})
	}
}

func TestColorHex(t *testing.T) {
	if got := RGB(60, 60, 60).Hex(); got != "#3c3c3c" {
		t.Errorf("Hex() = %q, expected #3c3c3c", got)
	}
	if got := ColorDefault.Hex(); got != "" {
		t.Errorf("default Hex() = %q, expected empty", got)
	}
	if ColorDefault.String() != "default" {
		t.Errorf("default String() = %q", ColorDefault.String())
	}
}
