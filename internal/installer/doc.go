// Package installer places the file-manager script shim into the user's
// Nautilus scripts directory and removes it again. The shim is a small shell
// script that invokes matclean; Nautilus passes the selection through the
// NAUTILUS_SCRIPT_SELECTED_FILE_PATHS environment variable.
package installer
