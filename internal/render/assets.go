package render

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed assets/*
var embeddedAssets embed.FS

// assetsFS returns the web template rooted at the embedded assets directory.
func assetsFS() (fs.FS, error) {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return nil, fmt.Errorf("render: open embedded assets: %w", err)
	}
	return sub, nil
}
