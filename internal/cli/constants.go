package cli

// Default values for CLI flags and formatted output.
const (
	// TabWidth is the padding between columns in text output.
	TabWidth = 2
	// ActiveMarker prefixes the selected tab in text output.
	ActiveMarker = "*"
	// setCommandArgs is the number of arguments expected by the config set command.
	setCommandArgs = 2
)
