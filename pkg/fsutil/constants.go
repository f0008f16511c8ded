package fsutil

// File and directory permission constants.
const (
	FileModeDefault = 0o644 // -rw-r--r--
	DirModeDefault  = 0o755 // drwxr-xr-x
)
