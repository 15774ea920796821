package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-auth-session/models"
)

func renderBuildInfoWindow(info models.BuildInfo) string {
	f := info.Filled()
	rows := [][2]string{
		{"Приложение", "go-auth-session"},
		{"Версия", f.Version},
		{"Дата сборки", f.Date},
		{"Коммит", f.Commit},
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("%-12s │ %s\n", row[0], row[1]))
	}

	return renderPage("О ПРОГРАММЕ", strings.TrimRight(b.String(), "\n"), "esc: назад")
}
