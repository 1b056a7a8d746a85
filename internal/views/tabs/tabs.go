package tabs

import "strings"

// Tab is one selectable view of the application shell.
type Tab struct {
	Key   string
	Label string
	Title string
	Blurb string
}

const (
	Home   = "home"
	Master = "master"
	Change = "change"
	Excel  = "excel"
	Test   = "test"
	Report = "report"

	// DefaultKey is selected when no tab, or an unknown one, is requested.
	DefaultKey = Home
)

var catalogue = map[string]Tab{
	Home: {
		Key:   Home,
		Label: "Home",
		Title: "Stability Batch Records",
	},
	Master: {
		Key:   Master,
		Label: "Master",
		Title: "Master Data Management",
		Blurb: "Master data configuration and management tools.",
	},
	Change: {
		Key:   Change,
		Label: "Change",
		Title: "Change Management",
		Blurb: "Track and manage system changes.",
	},
	Excel: {
		Key:   Excel,
		Label: "Excel",
		Title: "Excel Integration",
		Blurb: "Import schedule rows from a CSV export into the current draft.",
	},
	Test: {
		Key:   Test,
		Label: "Test",
		Title: "Test Management",
		Blurb: "Manage testing protocols and results.",
	},
	Report: {
		Key:   Report,
		Label: "Report",
		Title: "Reports",
		Blurb: "Generate and view system reports.",
	},
}

var order = []string{Home, Master, Change, Excel, Test, Report}

// Resolve returns the tab registered under key, falling back to home.
func Resolve(key string) Tab {
	normalized := strings.ToLower(strings.TrimSpace(key))
	if tab, ok := catalogue[normalized]; ok {
		return tab
	}
	return catalogue[DefaultKey]
}

// Valid reports whether key names a tab.
func Valid(key string) bool {
	_, ok := catalogue[strings.ToLower(strings.TrimSpace(key))]
	return ok
}

// All lists the tabs in navigation order.
func All() []Tab {
	out := make([]Tab, 0, len(order))
	for _, key := range order {
		out = append(out, catalogue[key])
	}
	return out
}
