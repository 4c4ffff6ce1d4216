package resources

import (
	"bytes"
	"testing"
)

func TestIconEmbedded(t *testing.T) {
	icon := Icon()
	if icon.Name() != "icon.svg" {
		t.Fatalf("unexpected name %q", icon.Name())
	}
	if !bytes.Contains(icon.Content(), []byte("<svg")) {
		t.Fatal("icon is not an SVG document")
	}
	if Icon() != icon {
		t.Fatal("expected cached resource")
	}
}

func TestMissingAsset(t *testing.T) {
	if _, err := Asset("missing.png"); err == nil {
		t.Fatal("expected error for missing asset")
	}
}
