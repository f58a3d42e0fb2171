package tui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-secure-url/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

const timeLayout = "2006-01-02 15:04:05 MST"

func row(label, value string) string {
	return labelStyle.Render(label) + value + "\n"
}

func accessibility(accessible bool) string {
	if accessible {
		return "accessible"
	}
	return mutedStyle.Render("no longer available")
}

// RenderEntity formats a single secured entity including its password.
func RenderEntity(e models.SecuredEntityResponse) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Secured entity " + e.ID))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")
	b.WriteString(row("Type", string(e.Type)))
	b.WriteString(row("Created", e.Created.UTC().Format(timeLayout)))
	b.WriteString(row("Access URL", e.AccessURL))
	b.WriteString(row("Password", secretStyle.Render(e.Password)))
	b.WriteString(row("Status", accessibility(e.IsAccessible)))
	if len(e.Accesses) > 0 {
		b.WriteString(row("Accesses", strconv.Itoa(len(e.Accesses))))
		b.WriteString(row("Last access", e.Accesses[0].UTC().Format(timeLayout)))
	}
	return b.String()
}

// RenderEntities formats entities as a compact listing without passwords.
func RenderEntities(entities []models.SecuredEntityResponse) string {
	if len(entities) == 0 {
		return mutedStyle.Render("nothing secured yet") + "\n"
	}

	var b strings.Builder
	for _, e := range entities {
		fmt.Fprintf(&b, "%s  %-5s  %s  %s\n",
			e.ID, e.Type, e.Created.UTC().Format(timeLayout), accessibility(e.IsAccessible))
	}
	return b.String()
}

// RenderStats formats per-day access counters, oldest day first.
func RenderStats(stats models.Stats) string {
	if len(stats) == 0 {
		return mutedStyle.Render("no accesses recorded") + "\n"
	}

	days := make([]string, 0, len(stats))
	for day := range stats {
		days = append(days, day)
	}
	sort.Strings(days)

	var b strings.Builder
	b.WriteString(titleStyle.Render("day         files  links"))
	b.WriteString("\n")
	for _, day := range days {
		fmt.Fprintf(&b, "%s  %5d  %5d\n", day, stats[day].Files, stats[day].Links)
	}
	return b.String()
}
