package settings

const (
	explorerAdvanced = `Software\Microsoft\Windows\CurrentVersion\Explorer\Advanced`
	searchKey        = `Software\Microsoft\Windows\CurrentVersion\Search`
	contentDelivery  = `Software\Microsoft\Windows\CurrentVersion\ContentDeliveryManager`
	privacyKey       = `Software\Microsoft\Windows\CurrentVersion\Privacy`
	desktopKey       = `Control Panel\Desktop`
)

// DefaultProfile returns the settings written into the Default User hive.
// Every new local account inherits these at first logon. Integer values are
// written as REG_DWORD, strings as REG_SZ, matching what the corresponding
// Control Panel and Explorer toggles write for an existing account.
func DefaultProfile() []Setting {
	return []Setting{
		{
			Path:   explorerAdvanced,
			Values: map[string]Value{
				"HideFileExt":        DWORD(0), // show file extensions
				"LaunchTo":           DWORD(1), // open Explorer to This PC
				"ShowTaskViewButton": DWORD(0),
				"TaskbarDa":          DWORD(0), // widgets button
				"TaskbarMn":          DWORD(0), // chat button
				"Start_TrackDocs":    DWORD(0),
			},
		},
		{
			Path:   searchKey,
			Values: map[string]Value{
				"SearchboxTaskbarMode": DWORD(0), // hide taskbar search box
			},
		},
		{
			Path:   contentDelivery,
			Values: map[string]Value{
				"SystemPaneSuggestionsEnabled":    DWORD(0),
				"SilentInstalledAppsEnabled":      DWORD(0),
				"SoftLandingEnabled":              DWORD(0),
				"SubscribedContent-338388Enabled": DWORD(0), // Start menu suggestions
				"SubscribedContent-338389Enabled": DWORD(0), // tips and tricks
			},
		},
		{
			Path:   privacyKey,
			Values: map[string]Value{
				"TailoredExperiencesWithDiagnosticDataEnabled": DWORD(0),
			},
		},
		{
			Path:   desktopKey,
			Values: map[string]Value{
				"MenuShowDelay":     String("200"),
				"WallpaperStyle":    String("10"), // fill
				"JPEGImportQuality": DWORD(100),
			},
		},
	}
}
