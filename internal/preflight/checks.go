package preflight

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"matclean/internal/config"
	"matclean/internal/deps"
)

// CheckTool verifies that the cleaning tool responds to a version probe.
func CheckTool(ctx context.Context, cfg *config.Config) Result {
	const name = "Cleaning tool"

	version, err := deps.ProbeVersion(ctx, cfg.ToolBinary(), cfg.VersionTimeout())
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (%v)", cfg.ToolBinary(), err)}
	}
	return Result{Name: name, Passed: true, Detail: version}
}

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// Requirements builds the system dependency list for the given config. The
// check command and the installer both use this to avoid duplicating it.
func Requirements(cfg *config.Config) []deps.Requirement {
	requirements := []deps.Requirement{
		{
			Name:        "mat2",
			Command:     cfg.ToolBinary(),
			Description: "Required for metadata removal",
			InstallHint: "sudo apt install mat2",
		},
	}
	if cfg.Notifications.Desktop {
		requirements = append(requirements,
			deps.Requirement{
				Name:        "notify-send",
				Command:     cfg.Notifications.NotifySendBinary,
				Description: "Desktop completion notifications",
				InstallHint: "sudo apt install libnotify-bin",
				Optional:    true,
			},
			deps.Requirement{
				Name:        "zenity",
				Command:     cfg.Notifications.ZenityBinary,
				Description: "Error dialogs for fatal failures",
				InstallHint: "sudo apt install zenity",
				Optional:    true,
			},
		)
	}
	return requirements
}

// CheckSystemDeps evaluates all external binaries for the given config.
func CheckSystemDeps(cfg *config.Config) []deps.Status {
	return deps.CheckBinaries(Requirements(cfg))
}
