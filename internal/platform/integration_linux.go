//go:build linux

package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

func (service *platformService) EnableAutostart(appName, execPath string) error {
	if err := validateEntry(appName, execPath); err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}

	configDir, err := service.GetConfigDir()
	if err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}
	if err := writeDesktopEntry(filepath.Join(configDir, "autostart"), appName, execPath, true); err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}
	return nil
}

func (service *platformService) DisableAutostart(appName string) error {
	if appName == "" {
		return fmt.Errorf("disable autostart: app name is empty")
	}

	configDir, err := service.GetConfigDir()
	if err != nil {
		return fmt.Errorf("disable autostart: %w", err)
	}
	if err := removeDesktopEntry(filepath.Join(configDir, "autostart"), appName); err != nil {
		return fmt.Errorf("disable autostart: %w", err)
	}
	return nil
}

func (service *platformService) InstallLauncher(appName, execPath string) error {
	if err := validateEntry(appName, execPath); err != nil {
		return fmt.Errorf("install launcher: %w", err)
	}

	dataDir, err := service.GetDataDir()
	if err != nil {
		return fmt.Errorf("install launcher: %w", err)
	}
	if err := writeDesktopEntry(filepath.Join(dataDir, "applications"), appName, execPath, false); err != nil {
		return fmt.Errorf("install launcher: %w", err)
	}
	return nil
}

func (service *platformService) RemoveLauncher(appName string) error {
	if appName == "" {
		return fmt.Errorf("remove launcher: app name is empty")
	}

	dataDir, err := service.GetDataDir()
	if err != nil {
		return fmt.Errorf("remove launcher: %w", err)
	}
	if err := removeDesktopEntry(filepath.Join(dataDir, "applications"), appName); err != nil {
		return fmt.Errorf("remove launcher: %w", err)
	}
	return nil
}

func validateEntry(appName, execPath string) error {
	if appName == "" {
		return fmt.Errorf("app name is empty")
	}
	if execPath == "" {
		return fmt.Errorf("exec path is empty")
	}
	if !filepath.IsAbs(execPath) {
		return fmt.Errorf("exec path %q is not absolute", execPath)
	}
	return nil
}

func writeDesktopEntry(dir, appName, execPath string, autostart bool) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	entryPath := filepath.Join(dir, desktopFileName(appName))
	if err := os.WriteFile(entryPath, []byte(buildDesktopEntry(appName, execPath, autostart)), 0o644); err != nil {
		return fmt.Errorf("write desktop entry: %w", err)
	}
	return nil
}

func removeDesktopEntry(dir, appName string) error {
	entryPath := filepath.Join(dir, desktopFileName(appName))
	if err := os.Remove(entryPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove desktop entry: %w", err)
	}
	return nil
}
