package wiki

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// PageHistory retrieves the recent revision history of a page, newest-first,
// using the configured revision limit. Redirects are resolved by the API;
// the canonical target ends up in PageHistory.RedirectedTo.
func (c *Client) PageHistory(ctx context.Context, title string) (PageHistory, error) {
	return c.PageHistoryWithArgs(ctx, PageHistoryArgs{Title: title, Limit: c.config.RevisionLimit})
}

// PageHistoryWithArgs is PageHistory with an explicit revision limit
func (c *Client) PageHistoryWithArgs(ctx context.Context, args PageHistoryArgs) (PageHistory, error) {
	if args.Title == "" {
		return PageHistory{}, fmt.Errorf("title is required")
	}

	limit := normalizeLimit(args.Limit, DefaultRevisionLimit, MaxRevisionLimit)

	params := url.Values{}
	params.Set("prop", "revisions")
	params.Set("titles", args.Title)
	params.Set("rvprop", "timestamp|user")
	params.Set("rvlimit", strconv.Itoa(limit))
	params.Set("redirects", "1")

	resp, err := c.apiRequest(ctx, "query", params)
	if err != nil {
		return PageHistory{}, err
	}

	history, err := parsePageHistory(resp, args.Title)
	if err != nil {
		return PageHistory{}, err
	}

	c.logger.Debug("Retrieved page history",
		"title", history.Title,
		"revisions", history.Count,
		"redirected_to", history.RedirectedTo)

	return history, nil
}

// parsePageHistory interprets the raw query response exactly once, deciding
// between missing, redirected, and found before any field is consumed.
func parsePageHistory(resp map[string]interface{}, title string) (PageHistory, error) {
	query, ok := resp["query"].(map[string]interface{})
	if !ok {
		return PageHistory{}, &RequestError{Op: "decode", Err: errMissingQuery}
	}

	history := PageHistory{Title: title}

	// The API reports the title the original query was redirected to
	if redirects, ok := query["redirects"].([]interface{}); ok && len(redirects) > 0 {
		if first, ok := redirects[0].(map[string]interface{}); ok {
			history.RedirectedTo = getString(first, "to")
		}
	}

	pages, ok := query["pages"].(map[string]interface{})
	if !ok || len(pages) == 0 {
		return PageHistory{}, &RequestError{Op: "decode", Err: errMissingPages}
	}

	// The query names a single title, so there is exactly one page entry
	for _, pageData := range pages {
		page, ok := pageData.(map[string]interface{})
		if !ok {
			return PageHistory{}, &RequestError{Op: "decode", Err: errMissingPages}
		}

		if _, missing := page["missing"]; missing {
			return PageHistory{}, &PageNotFoundError{Title: title}
		}

		history.PageID = getInt(page, "pageid")
		if t := getString(page, "title"); t != "" {
			history.Title = t
		}

		revisions, _ := page["revisions"].([]interface{})
		history.Revisions = make([]Revision, 0, len(revisions))
		for _, rev := range revisions {
			r, ok := rev.(map[string]interface{})
			if !ok {
				continue
			}
			user := getString(r, "user")
			if user == "" {
				// Hidden or suppressed editors have no user field
				user = "Unknown"
			}
			history.Revisions = append(history.Revisions, Revision{
				Timestamp: getString(r, "timestamp"),
				User:      user,
			})
		}
		break
	}

	history.Count = len(history.Revisions)
	return history, nil
}
