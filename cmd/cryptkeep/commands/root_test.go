package commands

import "testing"

func TestDefaultArgs(t *testing.T) {
	if got := defaultArgs(nil); len(got) != 1 || got[0] != "mount" {
		t.Fatalf("bare invocation = %q, want [mount]", got)
	}
	if got := defaultArgs([]string{"passwd"}); len(got) != 1 || got[0] != "passwd" {
		t.Fatalf("explicit command rewritten: %q", got)
	}
}
