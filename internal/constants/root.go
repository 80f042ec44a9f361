package constants

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName            = "noteboard"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/noteboard/noteboard.db"
	DefaultSettingsDir = "~/.config/noteboard"
	SettingsFileName   = "config.yaml"
	ConnectionEnvVar   = "NOTEBOARD_DB_CONNECTION"
	SettingsEnvVar     = "NOTEBOARD_SETTINGS"
	Version            = "v0.1.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Persisted keys
	NotesKey    = "notes-v3"
	HabitsKey   = "habits-v1"
	ViewModeKey = "notes-view-mode"

	// Notes defaults
	UntitledTitle = "Untitled"

	// Export constants
	ExportFilePrefix = "notes-export-"
	ExportFileSuffix = ".csv"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "noteboard-"
	BackupFileSuffix = ".db"

	// Notify constants
	NotifierLockfileName   = "noteboard-notifier.lock"
	NotificationDurationMs = 3000
	TrayAppIdentifier      = "com.julianstephens.noteboard"
	TrayAppExecutable      = "noteboard-tray"
)

// Session States
const (
	StateBrowse SessionState = iota
	StateSearch
	StateEditNote
	StateHabitForm
	StateConfirmDelete
)
