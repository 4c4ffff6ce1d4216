//go:build linux

package platform

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/godbus/dbus/v5"
	"github.com/google/uuid"
)

func (service *platformService) InstallKWinRule(windowClass string) error {
	if windowClass == "" {
		return fmt.Errorf("install kwin rule: window class is empty")
	}
	return service.editKWinRules("install kwin rule", func(rules *kwinRules) bool {
		rules.upsertKeepAbove(windowClass, uuid.NewString)
		return true
	})
}

func (service *platformService) RemoveKWinRule(windowClass string) error {
	if windowClass == "" {
		return fmt.Errorf("remove kwin rule: window class is empty")
	}
	return service.editKWinRules("remove kwin rule", func(rules *kwinRules) bool {
		return rules.removeKeepAbove(windowClass)
	})
}

func (service *platformService) KWinRuleInstalled(windowClass string) (bool, error) {
	rules, _, err := service.readKWinRules()
	if err != nil {
		return false, fmt.Errorf("read kwin rules: %w", err)
	}
	return rules.findRule(windowClass) != "", nil
}

func (service *platformService) ReloadKWinRules() error {
	return reconfigureKWin()
}

func (service *platformService) readKWinRules() (*kwinRules, string, error) {
	configDir, err := service.GetConfigDir()
	if err != nil {
		return nil, "", err
	}
	rulesPath := filepath.Join(configDir, kwinRulesFileName)

	rawData, err := os.ReadFile(rulesPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, "", fmt.Errorf("read %s: %w", rulesPath, err)
	}
	return parseKWinRules(rawData), rulesPath, nil
}

func (service *platformService) editKWinRules(action string, edit func(*kwinRules) bool) error {
	rules, rulesPath, err := service.readKWinRules()
	if err != nil {
		return fmt.Errorf("%s: %w", action, err)
	}
	if !edit(rules) {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(rulesPath), 0o755); err != nil {
		return fmt.Errorf("%s: create config dir: %w", action, err)
	}
	if err := os.WriteFile(rulesPath, rules.bytes(), 0o644); err != nil {
		return fmt.Errorf("%s: write %s: %w", action, rulesPath, err)
	}

	if err := reconfigureKWin(); err != nil {
		slog.Debug("kwin reconfigure skipped", "error", err)
	}
	return nil
}

// reconfigureKWin asks a running KWin to reload its rules.
func reconfigureKWin() error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return fmt.Errorf("connect session bus: %w", err)
	}
	defer conn.Close()

	call := conn.Object("org.kde.KWin", "/KWin").Call("org.kde.KWin.reconfigure", 0)
	if call.Err != nil {
		return fmt.Errorf("call reconfigure: %w", call.Err)
	}
	return nil
}
