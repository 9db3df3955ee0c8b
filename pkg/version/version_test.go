package version

import (
	"strings"
	"testing"
)

func TestInfo(t *testing.T) {
	origVersion := Version
	origBuildTime := BuildTime
	origCommit := Commit

	defer func() {
		Version = origVersion
		BuildTime = origBuildTime
		Commit = origCommit
	}()

	Version = "1.0.0"
	BuildTime = "2023-01-01"
	Commit = "abcdef0123456789"

	info := Info()

	if !strings.Contains(info, "1.0.0") {
		t.Errorf("Expected info to contain version, got: %s", info)
	}
	if !strings.Contains(info, "abcdef01") {
		t.Errorf("Expected info to contain short commit, got: %s", info)
	}
	if strings.Contains(info, "abcdef0123456789") {
		t.Errorf("Expected commit to be shortened, got: %s", info)
	}
}

func TestMap(t *testing.T) {
	m := Map()

	for _, key := range []string{"version", "commit", "buildTime", "goVersion", "os", "arch"} {
		if _, ok := m[key]; !ok {
			t.Errorf("Expected map to contain key %q", key)
		}
	}
}
