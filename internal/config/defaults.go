package config

const (
	defaultLogDir           = "~/.local/share/matclean/logs"
	defaultScriptsDir       = "~/.local/share/nautilus/scripts"
	defaultToolBinary       = "mat2"
	defaultFileTimeout      = 300
	defaultVersionTimeout   = 2
	defaultWorkers          = 1
	defaultNotifySendBinary = "notify-send"
	defaultZenityBinary     = "zenity"
	defaultNtfyTimeout      = 10
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
)

// defaultProtectedPrefixes lists system directories that are never processed,
// no matter what the selection contains.
func defaultProtectedPrefixes() []string {
	return []string{"/bin", "/sbin", "/usr", "/etc", "/var", "/boot", "/root"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:     defaultLogDir,
			ScriptsDir: defaultScriptsDir,
		},
		Cleaner: Cleaner{
			ToolBinary:        defaultToolBinary,
			FileTimeout:       defaultFileTimeout,
			VersionTimeout:    defaultVersionTimeout,
			Workers:           defaultWorkers,
			ProtectedPrefixes: defaultProtectedPrefixes(),
		},
		Notifications: Notifications{
			Desktop:          true,
			NotifySendBinary: defaultNotifySendBinary,
			ZenityBinary:     defaultZenityBinary,
			RequestTimeout:   defaultNtfyTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
