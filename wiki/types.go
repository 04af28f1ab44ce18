package wiki

import "time"

// Revision is a single saved edit: when it happened and who made it.
// The User is a username or an IP address for anonymous edits.
type Revision struct {
	Timestamp string `json:"timestamp"`
	User      string `json:"user"`
}

// PageHistoryArgs are the inputs for a revision history lookup
type PageHistoryArgs struct {
	Title string `json:"title" jsonschema:"required,description=Wikipedia article title"`
	Limit int    `json:"limit,omitempty" jsonschema:"description=Maximum revisions to return (default 30, max 500)"`
}

// PageHistory is the interpreted result of one revision history query.
// Revisions are newest-first, in the order the API returned them.
type PageHistory struct {
	Title        string     `json:"title"`
	PageID       int        `json:"page_id"`
	RedirectedTo string     `json:"redirected_to,omitempty"`
	Revisions    []Revision `json:"revisions"`
	Count        int        `json:"count"`
}

// FormatTimestamp converts an API timestamp (RFC 3339) to a readable form.
// Unparseable values pass through unchanged.
func FormatTimestamp(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return t.Format("2006-01-02 15:04:05")
}

// normalizeLimit ensures limit is within bounds
func normalizeLimit(limit, defaultVal, maxVal int) int {
	if limit <= 0 {
		return defaultVal
	}
	if limit > maxVal {
		return maxVal
	}
	return limit
}

func getString(m map[string]interface{}, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

func getInt(m map[string]interface{}, key string) int {
	if f, ok := m[key].(float64); ok {
		return int(f)
	}
	return 0
}
