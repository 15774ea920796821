package models

import "strings"

const notAvailable = "N/A"

// BuildInfo is the version stamp injected with -ldflags at build time.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// Filled returns a copy with every empty field replaced by "N/A".
func (b BuildInfo) Filled() BuildInfo {
	return BuildInfo{
		Version: orNotAvailable(b.Version),
		Date:    orNotAvailable(b.Date),
		Commit:  orNotAvailable(b.Commit),
	}
}

// Lines renders the stamp as "label: value" lines for banners.
func (b BuildInfo) Lines() []string {
	f := b.Filled()
	return []string{
		"Build version: " + f.Version,
		"Build date: " + f.Date,
		"Build commit: " + f.Commit,
	}
}

func orNotAvailable(v string) string {
	if v = strings.TrimSpace(v); v == "" {
		return notAvailable
	}
	return v
}
