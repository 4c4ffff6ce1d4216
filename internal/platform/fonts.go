package platform

import (
	"bufio"
	"sort"
	"strings"
)

// parseFontFamilies turns `fc-list : family` output into a sorted list of
// unique family names. Only the first of several localized names is kept.
func parseFontFamilies(output string) []string {
	seen := make(map[string]bool)
	var families []string

	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		name, _, _ := strings.Cut(scanner.Text(), ",")
		name = strings.TrimSpace(strings.ReplaceAll(name, `\-`, "-"))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		families = append(families, name)
	}
	sort.Slice(families, func(i, j int) bool {
		return strings.ToLower(families[i]) < strings.ToLower(families[j])
	})
	return families
}
