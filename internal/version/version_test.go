package version

import (
	"strings"
	"testing"
)

func TestStringCarriesVersionAndCommit(t *testing.T) {
	got := String()
	if !strings.Contains(got, Version) {
		t.Errorf("%q missing version %q", got, Version)
	}
	if !strings.Contains(got, Commit) {
		t.Errorf("%q missing commit %q", got, Commit)
	}
}
