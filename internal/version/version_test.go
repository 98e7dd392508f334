package version

import "testing"

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		version  string
		commit   string
		date     string
		expected string
	}{
		{
			name:     "development build",
			version:  "development",
			commit:   "unknown",
			expected: "development",
		},
		{
			name:     "release with commit",
			version:  "1.2.0",
			commit:   "abc1234",
			expected: "1.2.0+abc1234",
		},
		{
			name:     "release with commit and date",
			version:  "1.2.0",
			commit:   "abc1234",
			date:     "2026-08-01",
			expected: "1.2.0+abc1234 (2026-08-01)",
		},
		{
			name:     "empty commit treated as unknown",
			version:  "1.2.0",
			commit:   "",
			expected: "1.2.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origVersion, origCommit, origDate := Version, Commit, Date
			defer func() {
				Version, Commit, Date = origVersion, origCommit, origDate
			}()

			Version = tt.version
			Commit = tt.commit
			Date = tt.date

			if got := String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}
