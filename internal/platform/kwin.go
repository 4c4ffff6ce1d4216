package platform

import (
	"os"
	"strings"
)

// KWinHelper manages the KWin keep-above rule for one window class.
type KWinHelper struct {
	service     Service
	windowClass string
	getenv      func(string) string
}

// NewKWinHelper binds service to the widget's window class.
func NewKWinHelper(service Service, windowClass string) *KWinHelper {
	return &KWinHelper{service: service, windowClass: windowClass, getenv: os.Getenv}
}

// Available reports whether the session runs KDE Plasma.
func (helper *KWinHelper) Available() bool {
	return isKDESession(helper.getenv)
}

// RuleEnabled reports whether the keep-above rule is present in kwinrulesrc.
func (helper *KWinHelper) RuleEnabled() (bool, error) {
	return helper.service.KWinRuleInstalled(helper.windowClass)
}

// SetRuleEnabled installs or removes the keep-above rule.
func (helper *KWinHelper) SetRuleEnabled(enabled bool) error {
	if enabled {
		return helper.service.InstallKWinRule(helper.windowClass)
	}
	return helper.service.RemoveKWinRule(helper.windowClass)
}

// Reload asks KWin to re-read its rules.
func (helper *KWinHelper) Reload() error {
	return helper.service.ReloadKWinRules()
}

func isKDESession(getenv func(string) string) bool {
	desktop := strings.ToLower(getenv("XDG_CURRENT_DESKTOP") + " " + getenv("DESKTOP_SESSION"))
	return strings.Contains(desktop, "kde") || strings.Contains(desktop, "plasma")
}
