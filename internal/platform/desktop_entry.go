package platform

import (
	"fmt"
	"strings"
	"unicode"
)

const desktopEntryComment = "Analog desk clock with stopwatch"

var execArgEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "$", `\$`, "`", "\\`")

// escapeExecArg quotes one Exec argument per the desktop entry rules.
func escapeExecArg(arg string) string {
	needsQuotes := strings.ContainsAny(arg, "\"\\$`") ||
		strings.IndexFunc(arg, unicode.IsSpace) >= 0
	if !needsQuotes {
		return arg
	}
	return `"` + execArgEscaper.Replace(arg) + `"`
}

func desktopFileName(appName string) string {
	name := strings.TrimSpace(appName)
	if name == "" {
		name = "deskclock"
	}
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, " ", "-")
	return name + ".desktop"
}

func buildDesktopEntry(appName, execPath string, autostart bool) string {
	execLine := escapeExecArg(execPath)

	var builder strings.Builder
	fmt.Fprintf(&builder, `[Desktop Entry]
Type=Application
Name=%s
Comment=%s
Exec=%s
Icon=%s
Terminal=false
Categories=Utility;Clock;
StartupWMClass=%s
`,
		appName,
		desktopEntryComment,
		execLine,
		strings.ToLower(appName),
		strings.ToLower(appName),
	)
	if autostart {
		builder.WriteString("X-GNOME-Autostart-enabled=true\n")
	}
	return builder.String()
}
