package forgekit

import (
	"strings"
)

// packageMarker precedes the bundle path in forgekit's package output, e.g.
//
//	Package created at "/home/me/app/target/app.mox"
//
// The path may be debug-quoted; quotes are stripped.
const packageMarker = "Package created at"

// bulletPrefixes are the list markers forgekit uses for search output.
var bulletPrefixes = []string{"- ", "* ", "• "}

// descSeparator splits an identifier from its description in search and
// template listings.
const descSeparator = " - "

// Template describes one scaffolding template known to the toolchain.
type Template struct {
	Name        string
	Description string
}

// parsePackagePath scans captured stdout for the package marker and returns
// the path that follows it. ok is false when no marker is present.
func parsePackagePath(stdout string) (path string, ok bool) {
	for _, line := range strings.Split(stdout, "\n") {
		idx := strings.Index(line, packageMarker)
		if idx < 0 {
			continue
		}
		rest := strings.Fields(line[idx+len(packageMarker):])
		if len(rest) == 0 {
			continue
		}
		return strings.Trim(rest[0], `"`), true
	}
	return "", false
}

// parseSearchResults extracts search hits from captured output, one per
// line. A line counts as a hit if, after trimming, it starts with a bullet
// marker (which is stripped) or contains the name/description separator.
// Anything else is skipped; the result may be empty.
func parseSearchResults(out string) []string {
	var results []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if bullet, found := trimBullet(line); found {
			if bullet != "" {
				results = append(results, bullet)
			}
			continue
		}
		if strings.Contains(line, descSeparator) {
			results = append(results, line)
		}
	}
	return results
}

// parseTemplates extracts template descriptors from captured output. A line
// qualifies when it has the shape `<identifier> - <description>` with a
// single-token identifier; other lines are skipped.
func parseTemplates(out string) []Template {
	var templates []Template
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if bullet, found := trimBullet(line); found {
			line = bullet
		}
		name, desc, found := strings.Cut(line, descSeparator)
		if !found {
			continue
		}
		name = strings.TrimSpace(name)
		desc = strings.TrimSpace(desc)
		if name == "" || desc == "" || strings.ContainsAny(name, " \t") {
			continue
		}
		templates = append(templates, Template{Name: name, Description: desc})
	}
	return templates
}

// trimBullet strips a leading bullet marker, reporting whether one was
// present.
func trimBullet(line string) (string, bool) {
	for _, prefix := range bulletPrefixes {
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(line[len(prefix):]), true
		}
	}
	return line, false
}
