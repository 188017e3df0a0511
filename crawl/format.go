package crawl

import (
	"fmt"
	"net/url"
)

// TruncateURL shortens a URL for display. It keeps the path, since most
// URLs in a crawl share the same host, and cuts from the left so the
// distinguishing suffix stays visible. Lengths are counted in runes.
func TruncateURL(rawURL string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	display := rawURL
	if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
		display = u.Path
		if display == "" {
			display = "/"
		}
	}

	runes := []rune(display)
	if len(runes) <= maxLen {
		return display
	}
	if maxLen < 4 {
		return string(runes[:maxLen])
	}
	return "..." + string(runes[len(runes)-maxLen+3:])
}

// FormatBytes formats bytes in human-readable form.
func FormatBytes(bytes int) string {
	const (
		KB = 1024
		MB = KB * 1024
	)
	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// FormatTokens formats token count in human-readable form.
func FormatTokens(tokens int) string {
	if tokens < 1000 {
		return fmt.Sprintf("~%d tokens", tokens)
	}
	return fmt.Sprintf("~%dk tokens", (tokens+500)/1000)
}

// FormatProgress renders a one-line status for a completed or failed page.
// Other event types render as an empty string.
func FormatProgress(event ProgressEvent) string {
	switch event.Type {
	case ProgressCompleted:
		return fmt.Sprintf("[%d/%d] depth=%d %s: %d pairs, %d links",
			event.Visited, event.MaxPages, event.Depth, TruncateURL(event.URL, 50), event.Records, event.Links)
	case ProgressFailed:
		return fmt.Sprintf("skip %s: %v", event.URL, event.Error)
	default:
		return ""
	}
}
