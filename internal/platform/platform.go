package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrUnsupported is returned when a desktop integration is not available
// on the running system.
var ErrUnsupported = errors.New("not supported on this platform")

// Service defines OS-specific helpers needed by the application.
type Service interface {
	GetConfigDir() (string, error)
	GetDataDir() (string, error)
	EnableAutostart(appName, execPath string) error
	DisableAutostart(appName string) error
	InstallLauncher(appName, execPath string) error
	RemoveLauncher(appName string) error
	InstallKWinRule(windowClass string) error
	RemoveKWinRule(windowClass string) error
	KWinRuleInstalled(windowClass string) (bool, error)
	ReloadKWinRules() error
}

type platformService struct{}

// NewService returns a platform-specific implementation.
func NewService() Service {
	return &platformService{}
}

// GetConfigDir returns the OS-standard configuration directory.
func (service *platformService) GetConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err == nil && configDir != "" {
		return configDir, nil
	}

	homeDir, homeErr := os.UserHomeDir()
	if homeErr != nil {
		if err != nil {
			return "", fmt.Errorf("get config dir: %w", err)
		}
		return "", fmt.Errorf("get config dir: %w", homeErr)
	}

	return filepath.Join(homeDir, ".config"), nil
}

// GetDataDir returns $XDG_DATA_HOME or ~/.local/share.
func (service *platformService) GetDataDir() (string, error) {
	if dataDir := os.Getenv("XDG_DATA_HOME"); filepath.IsAbs(dataDir) {
		return dataDir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get data dir: %w", err)
	}
	return filepath.Join(homeDir, ".local", "share"), nil
}

// Integration toggles the desktop integration entries of one application.
type Integration struct {
	service  Service
	appName  string
	execPath string
}

// NewIntegration binds service to an application name and executable.
func NewIntegration(service Service, appName, execPath string) *Integration {
	return &Integration{service: service, appName: appName, execPath: execPath}
}

// SetShowInMenu installs or removes the application launcher entry.
func (integration *Integration) SetShowInMenu(enabled bool) error {
	if enabled {
		return integration.service.InstallLauncher(integration.appName, integration.execPath)
	}
	return integration.service.RemoveLauncher(integration.appName)
}

// SetStartAtLogin installs or removes the autostart entry.
func (integration *Integration) SetStartAtLogin(enabled bool) error {
	if enabled {
		return integration.service.EnableAutostart(integration.appName, integration.execPath)
	}
	return integration.service.DisableAutostart(integration.appName)
}
