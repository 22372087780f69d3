// Package messages centralizes all user-facing strings.
package messages

// Workflow output.
const (
	Scanning = "Scanning for build prerequisites..."

	NotInstalled = "\nVisual Studio is not installed"
	DownloadHint = "Download it from https://visualstudio.microsoft.com/"

	FoundComponentFmt = "\tFound %s"
	FoundSDKFmt       = "\tFound Windows SDK version %s"
	MissingSDK        = "\tMissing component: Windows SDK"
	MissingToolset    = "\tMissing component: MSVC build tools"
	AllInstalled      = "\nall build prerequisites have been installed successfully"
	FindingComponents = "\nFinding components to install..."
	ComponentsForFmt  = "\nFound components for %s:"
	ComponentLineFmt  = "\t%s"
	ConfirmInstall    = "\nWould you like to install the missing components? [y/n]"
	InstallDeclined   = "Skipping installation."
)

// Fatal diagnostics.
const (
	ErrorCodeFmt        = "Error %#x"
	ErrorFmt            = "Error: %v"
	ConfigUnreadableFmt = "could not read config %s: %w"
	ConfigInvalidFmt    = "invalid config %s: %w"
)
