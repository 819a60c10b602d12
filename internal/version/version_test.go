package version

import "testing"

func TestVersionInfo_String(t *testing.T) {
	tests := []struct {
		name string
		info VersionInfo
		want string
	}{
		{"dev build", VersionInfo{Version: "dev", GitCommit: "unknown"}, "dev"},
		{"no commit", VersionInfo{Version: "1.0.0"}, "1.0.0"},
		{"release", VersionInfo{Version: "1.2.0", GitCommit: "abc1234"}, "1.2.0 (abc1234)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
