package renderer

import (
	"github.com/fornance/fornance"
)

// HistoryMarkdown renders the activity log, newest first.
func HistoryMarkdown(items []fornance.ActivityItem) string {
	r := newRenderer()
	r.Printf("# Activity History\n\n")
	if len(items) == 0 {
		r.Printf("No activity yet.\n")
		return r.String()
	}
	r.Header("When", "Type", "Description")
	for _, item := range items {
		r.Row(item.Timestamp.Format("2006-01-02 15:04"), string(item.Type), item.Description)
	}
	return r.String()
}
