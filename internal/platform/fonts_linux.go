//go:build linux

package platform

import (
	"fmt"
	"strings"
)

// ListFonts returns the font families known to fontconfig right now.
func ListFonts() ([]string, error) {
	output, err := runCommand("fc-list", ":", "family")
	if err != nil {
		return nil, fmt.Errorf("list fonts: %w", err)
	}
	return parseFontFamilies(string(output)), nil
}

// ResolveFont returns the font file fontconfig picks for family.
func ResolveFont(family string) (string, error) {
	if strings.TrimSpace(family) == "" {
		return "", fmt.Errorf("resolve font: family is empty")
	}
	output, err := runCommand("fc-match", "-f", "%{file}", family)
	if err != nil {
		return "", fmt.Errorf("resolve font %q: %w", family, err)
	}
	path := strings.TrimSpace(string(output))
	if path == "" {
		return "", fmt.Errorf("resolve font %q: no match", family)
	}
	return path, nil
}
