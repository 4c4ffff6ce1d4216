//go:build !linux

package platform

func (service *platformService) EnableAutostart(appName, execPath string) error {
	return ErrUnsupported
}

func (service *platformService) DisableAutostart(appName string) error {
	return ErrUnsupported
}

func (service *platformService) InstallLauncher(appName, execPath string) error {
	return ErrUnsupported
}

func (service *platformService) RemoveLauncher(appName string) error {
	return ErrUnsupported
}

func (service *platformService) InstallKWinRule(windowClass string) error {
	return ErrUnsupported
}

func (service *platformService) RemoveKWinRule(windowClass string) error {
	return ErrUnsupported
}

func (service *platformService) KWinRuleInstalled(windowClass string) (bool, error) {
	return false, ErrUnsupported
}

func (service *platformService) ReloadKWinRules() error {
	return ErrUnsupported
}
