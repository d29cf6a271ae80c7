package gocryptfs_test

import (
	"testing"

	"cryptkeep/internal/provider/gocryptfs"
)

func TestParseVersion(t *testing.T) {
	cases := []struct {
		name string
		out  string
		want string
		ok   bool
	}{
		{"plain", "gocryptfs 1.6.0", "1.6.0", true},
		{"v prefix and trailer", "gocryptfs v2.4.0; go-fuse v2.1.0; 2023-03-04", "2.4.0", true},
		{"case insensitive", "GoCryptFS V1.7.1 on linux", "1.7.1", true},
		{"surrounding text", "some banner\nthis is gocryptfs 1.8.0 built today\n", "1.8.0", true},
		{"no token", "command not understood", "", false},
		{"incomplete version", "gocryptfs 1.6", "", false},
	}
	for _, tc := range cases {
		got, ok := gocryptfs.ParseVersion("gocryptfs", tc.out)
		if ok != tc.ok || got != tc.want {
			t.Errorf("%s: ParseVersion = %q, %v; want %q, %v", tc.name, got, ok, tc.want, tc.ok)
		}
	}
}

func TestMeetsMinimum(t *testing.T) {
	cases := []struct {
		version string
		want    bool
	}{
		{"1.6.0", true},  // equality satisfies the floor
		{"1.5.9", false}, // just below
		{"1.10.0", true}, // numeric, not lexicographic
		{"2.0.0", true},
		{"0.9.9", false},
	}
	for _, tc := range cases {
		if got := gocryptfs.MeetsMinimum(tc.version); got != tc.want {
			t.Errorf("MeetsMinimum(%q) = %v, want %v", tc.version, got, tc.want)
		}
	}
}
