package wiki

import "testing"

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "API timestamp", in: "2023-09-23T17:28:39Z", want: "2023-09-23 17:28:39"},
		{name: "with offset", in: "2023-09-23T17:28:39+02:00", want: "2023-09-23 17:28:39"},
		{name: "unparseable passes through", in: "invalid-timestamp", want: "invalid-timestamp"},
		{name: "empty passes through", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTimestamp(tt.in); got != tt.want {
				t.Errorf("FormatTimestamp(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeLimit(t *testing.T) {
	tests := []struct {
		name       string
		limit      int
		defaultVal int
		maxVal     int
		want       int
	}{
		{name: "zero uses default", limit: 0, defaultVal: 30, maxVal: 500, want: 30},
		{name: "negative uses default", limit: -1, defaultVal: 30, maxVal: 500, want: 30},
		{name: "within bounds", limit: 10, defaultVal: 30, maxVal: 500, want: 10},
		{name: "above max is capped", limit: 1000, defaultVal: 30, maxVal: 500, want: 500},
		{name: "exactly max", limit: 500, defaultVal: 30, maxVal: 500, want: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeLimit(tt.limit, tt.defaultVal, tt.maxVal); got != tt.want {
				t.Errorf("normalizeLimit(%d, %d, %d) = %d, want %d",
					tt.limit, tt.defaultVal, tt.maxVal, got, tt.want)
			}
		})
	}
}

func TestGetHelpers(t *testing.T) {
	m := map[string]interface{}{
		"name":  "Alice",
		"count": float64(7),
		"flag":  true,
	}

	if got := getString(m, "name"); got != "Alice" {
		t.Errorf("getString(name) = %q, want %q", got, "Alice")
	}
	if got := getString(m, "count"); got != "" {
		t.Errorf("getString(count) = %q, want empty for non-string", got)
	}
	if got := getString(m, "absent"); got != "" {
		t.Errorf("getString(absent) = %q, want empty", got)
	}
	if got := getInt(m, "count"); got != 7 {
		t.Errorf("getInt(count) = %d, want 7", got)
	}
	if got := getInt(m, "name"); got != 0 {
		t.Errorf("getInt(name) = %d, want 0 for non-number", got)
	}
}
