package resources

import (
	"embed"
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
)

const iconFile = "icon.svg"

//go:embed icon.svg
var assetFS embed.FS

var assetCache sync.Map

// Asset returns a Fyne resource for an embedded file.
func Asset(fileName string) (fyne.Resource, error) {
	return loadResource(assetFS, fileName, &assetCache)
}

// Icon returns the application and tray icon.
func Icon() fyne.Resource {
	resource, err := Asset(iconFile)
	if err != nil {
		panic(err)
	}
	return resource
}

func loadResource(fs embed.FS, path string, cache *sync.Map) (fyne.Resource, error) {
	if cached, ok := cache.Load(path); ok {
		return cached.(fyne.Resource), nil
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load resource %s: %w", path, err)
	}

	resource := fyne.NewStaticResource(path, data)
	cache.Store(path, resource)
	return resource, nil
}
