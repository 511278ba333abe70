package driven

import (
	port "github.com/alorle/livetv-sync/internal/port/driven"
)

// Compile-time check that PlaywrightLauncher implements BrowserLauncher interface
var _ port.BrowserLauncher = (*PlaywrightLauncher)(nil)

// Compile-time check that PlaywrightBrowser implements Browser interface
var _ port.Browser = (*PlaywrightBrowser)(nil)

// Compile-time check that playwrightPage implements Page interface
var _ port.Page = (*playwrightPage)(nil)

// Compile-time check that PlaylistFileRepository implements PlaylistRepository interface
var _ port.PlaylistRepository = (*PlaylistFileRepository)(nil)

// Compile-time check that CategoryYAMLSource implements CategorySource interface
var _ port.CategorySource = (*CategoryYAMLSource)(nil)
