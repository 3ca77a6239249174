package util

import "testing"

func TestParseSemver(t *testing.T) {
	tests := []struct {
		in   string
		want string
		err  bool
	}{
		{"1.2.3", "1.2.3", false},
		{"v0.4.0", "0.4.0", false},
		{"2.0.0-beta.3", "2.0.0-beta.3", false},
		{"2.0.0-alpha.1", "2.0.0-alpha.1", false},
		{"1.2", "", true},
		{"1.x.0", "", true},
		{"1.0.0-rc.1", "", true},
	}
	for _, tt := range tests {
		v, err := ParseSemver(tt.in)
		if (err != nil) != tt.err {
			t.Errorf("%q: unexpected error %v", tt.in, err)
			continue
		}
		if err == nil && v.String() != tt.want {
			t.Errorf("%q: expected %s, got %s", tt.in, tt.want, v)
		}
	}
}

func TestSatisfies(t *testing.T) {
	tests := []struct {
		version    string
		constraint string
		want       bool
	}{
		{"1.2.3", "1.2.3", true},
		{"1.2.3", "1.2.4", false},
		{"1.2.3", ">=1.2.0", true},
		{"1.2.3", ">1.2.3", false},
		{"1.10.0", ">1.9.5", true},
		{"1.2.3", "<2.0.0", true},
		{"1.2.3", "<=1.2.2", false},
		{"1.2.9", "~1.2.3", true},
		{"1.3.0", "~1.2.3", false},
		{"1.9.0", "^1.2.3", true},
		{"2.0.0", "^1.2.3", false},
		{"1.0.0-beta.1", ">=1.0.0", false},
		{"1.0.0-beta.2", ">1.0.0-alpha.5", true},
	}
	for _, tt := range tests {
		v, err := ParseSemver(tt.version)
		if err != nil {
			t.Fatal(err)
		}
		got, err := v.Satisfies(tt.constraint)
		if err != nil {
			t.Fatalf("%s %s: %v", tt.version, tt.constraint, err)
		}
		if got != tt.want {
			t.Errorf("%s %s: expected %v, got %v", tt.version, tt.constraint, tt.want, got)
		}
	}
}
