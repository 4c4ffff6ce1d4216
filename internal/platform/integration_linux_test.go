//go:build linux

package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setupXDG(t *testing.T) (string, string) {
	t.Helper()
	root := t.TempDir()
	configDir := filepath.Join(root, "config")
	dataDir := filepath.Join(root, "data")
	t.Setenv("XDG_CONFIG_HOME", configDir)
	t.Setenv("XDG_DATA_HOME", dataDir)
	return configDir, dataDir
}

func TestAutostartEnableDisable(t *testing.T) {
	configDir, _ := setupXDG(t)
	service := NewService()

	if err := service.EnableAutostart("deskclock", "/usr/bin/deskclock"); err != nil {
		t.Fatalf("enable: %v", err)
	}
	entryPath := filepath.Join(configDir, "autostart", "deskclock.desktop")
	content, err := os.ReadFile(entryPath)
	if err != nil {
		t.Fatalf("read entry: %v", err)
	}
	if !strings.Contains(string(content), "X-GNOME-Autostart-enabled=true") {
		t.Fatalf("unexpected autostart entry:\n%s", content)
	}

	if err := service.DisableAutostart("deskclock"); err != nil {
		t.Fatalf("disable: %v", err)
	}
	if _, err := os.Stat(entryPath); !os.IsNotExist(err) {
		t.Fatalf("expected entry to be removed, stat err: %v", err)
	}
	if err := service.DisableAutostart("deskclock"); err != nil {
		t.Fatalf("disabling twice should succeed: %v", err)
	}
}

func TestLauncherInstallRemove(t *testing.T) {
	_, dataDir := setupXDG(t)
	integration := NewIntegration(NewService(), "deskclock", "/usr/local/bin/deskclock")

	if err := integration.SetShowInMenu(true); err != nil {
		t.Fatalf("install: %v", err)
	}
	entryPath := filepath.Join(dataDir, "applications", "deskclock.desktop")
	content, err := os.ReadFile(entryPath)
	if err != nil {
		t.Fatalf("read entry: %v", err)
	}
	if !strings.Contains(string(content), "Exec=/usr/local/bin/deskclock") {
		t.Fatalf("unexpected launcher entry:\n%s", content)
	}

	if err := integration.SetShowInMenu(false); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := os.Stat(entryPath); !os.IsNotExist(err) {
		t.Fatalf("expected entry to be removed, stat err: %v", err)
	}
}

func TestLauncherRejectsRelativeExecPath(t *testing.T) {
	setupXDG(t)
	if err := NewService().InstallLauncher("deskclock", "bin/deskclock"); err == nil {
		t.Fatal("expected relative exec path to be rejected")
	}
}

func TestKWinRuleInstallIsIdempotent(t *testing.T) {
	configDir, _ := setupXDG(t)
	t.Setenv("DBUS_SESSION_BUS_ADDRESS", "unix:path="+filepath.Join(configDir, "no-bus"))
	service := NewService()

	if err := service.InstallKWinRule("deskclock"); err != nil {
		t.Fatalf("install: %v", err)
	}
	if err := service.InstallKWinRule("deskclock"); err != nil {
		t.Fatalf("second install: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(configDir, kwinRulesFileName))
	if err != nil {
		t.Fatalf("read rules: %v", err)
	}
	rules := parseKWinRules(content)
	if ids := rules.ruleIDs(); len(ids) != 1 {
		t.Fatalf("expected exactly one rule, got %v", ids)
	}

	if err := service.RemoveKWinRule("deskclock"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	content, err = os.ReadFile(filepath.Join(configDir, kwinRulesFileName))
	if err != nil {
		t.Fatalf("read rules: %v", err)
	}
	if ids := parseKWinRules(content).ruleIDs(); len(ids) != 0 {
		t.Fatalf("expected no rules after removal, got %v", ids)
	}
}

func TestKWinHelperTracksRuleState(t *testing.T) {
	configDir, _ := setupXDG(t)
	t.Setenv("DBUS_SESSION_BUS_ADDRESS", "unix:path="+filepath.Join(configDir, "no-bus"))
	helper := NewKWinHelper(NewService(), "deskclock")

	if enabled, err := helper.RuleEnabled(); err != nil || enabled {
		t.Fatalf("expected no rule before install, got %v (%v)", enabled, err)
	}
	if err := helper.SetRuleEnabled(true); err != nil {
		t.Fatalf("enable: %v", err)
	}
	if enabled, err := helper.RuleEnabled(); err != nil || !enabled {
		t.Fatalf("expected rule after install, got %v (%v)", enabled, err)
	}
	if err := helper.SetRuleEnabled(false); err != nil {
		t.Fatalf("disable: %v", err)
	}
	if enabled, _ := helper.RuleEnabled(); enabled {
		t.Fatal("expected rule to be gone after removal")
	}
	if err := helper.Reload(); err == nil {
		t.Fatal("expected reload to fail without a session bus")
	}
}
