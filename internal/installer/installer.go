package installer

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"matclean/internal/config"
	"matclean/internal/fileutil"
	"matclean/internal/preflight"
	"matclean/internal/services"
)

//go:embed clean_metadata.sh
var shimScript string

// ScriptName is the filename the shim is installed under. Nautilus shows it
// verbatim in the Scripts context menu.
const ScriptName = "Clean Metadata"

// ownershipMarker identifies files written by this installer. Uninstall never
// touches a script that lacks it.
const ownershipMarker = "matclean file-manager shim"

// ScriptPath returns the shim's install location for the given config.
func ScriptPath(cfg *config.Config) string {
	return filepath.Join(cfg.Paths.ScriptsDir, ScriptName)
}

// Install writes the shim into the configured scripts directory. It refuses to
// run when the required cleaning tool is missing, so the menu entry never
// appears on a machine where it cannot work.
func Install(cfg *config.Config) (string, error) {
	for _, status := range preflight.CheckSystemDeps(cfg) {
		if status.Available || status.Optional {
			continue
		}
		detail := status.Detail
		if status.InstallHint != "" {
			detail = fmt.Sprintf("%s (install with: %s)", detail, status.InstallHint)
		}
		return "", services.Wrap(services.ErrNotFound, "installer", "install", detail, nil)
	}

	if err := os.MkdirAll(cfg.Paths.ScriptsDir, 0o755); err != nil {
		return "", services.Wrap(services.ErrConfiguration, "installer", "install", "create scripts directory", err)
	}

	target := ScriptPath(cfg)
	if err := fileutil.WriteFileAtomic(target, []byte(shimScript), 0o755); err != nil {
		return "", services.Wrap(services.ErrConfiguration, "installer", "install", "write script", err)
	}
	return target, nil
}

// Uninstall removes the shim. Only a file carrying the ownership marker is
// deleted; an unmanaged script with the same name is left alone and reported.
func Uninstall(cfg *config.Config) (string, error) {
	target := ScriptPath(cfg)

	content, err := os.ReadFile(target)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", services.Wrap(services.ErrConfiguration, "installer", "uninstall", "read script", err)
	}
	if !strings.Contains(string(content), ownershipMarker) {
		return "", services.Wrap(services.ErrConfiguration, "installer", "uninstall",
			fmt.Sprintf("%s was not installed by matclean", target), nil)
	}

	if err := os.Remove(target); err != nil {
		return "", services.Wrap(services.ErrConfiguration, "installer", "uninstall", "remove script", err)
	}
	return target, nil
}

// Installed reports whether a matclean-managed shim is present.
func Installed(cfg *config.Config) bool {
	content, err := os.ReadFile(ScriptPath(cfg))
	return err == nil && strings.Contains(string(content), ownershipMarker)
}
