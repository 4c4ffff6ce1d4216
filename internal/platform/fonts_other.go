//go:build !linux

package platform

// ListFonts is only implemented on fontconfig systems.
func ListFonts() ([]string, error) {
	return nil, ErrUnsupported
}

// ResolveFont is only implemented on fontconfig systems.
func ResolveFont(family string) (string, error) {
	return "", ErrUnsupported
}
