package version

import "testing"

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"patch less", "1.2.3", "1.2.4", -1},
		{"minor greater", "1.3", "1.2.9", 1},
		{"v prefix equal", "v1.0.0", "1.0.0", 0},
		{"dev greatest", "dev", "9.9.9", 1},
		{"release below dev", "9.9.9", "dev", -1},
		{"dev equal", "dev", "dev", 0},
		{"semver before junk", "1.0.0", "banana", -1},
		{"junk string order", "apple", "banana", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestCompatible(t *testing.T) {
	tests := []struct {
		a, b    string
		want    bool
		wantErr bool
	}{
		{"1.2.0", "1.9.3", true, false},
		{"v2.0.0", "1.9.3", false, false},
		{"dev", "3.0.0", true, false},
		{"1.0.0", "dev", true, false},
		{"1.0.0", "latest", false, true},
	}
	for _, tt := range tests {
		got, err := Compatible(tt.a, tt.b)
		if (err != nil) != tt.wantErr {
			t.Errorf("Compatible(%q, %q) error = %v, wantErr %v", tt.a, tt.b, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("Compatible(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
