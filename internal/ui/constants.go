package ui

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
)

// Layout sizing
const (
	WindowWidth  float32 = 600
	WindowHeight float32 = 620

	DetailsMinHeight float32 = 180
	RangeEntryWidth  float32 = 80
)

// Settings dialog size
const (
	SettingsDialogWidth  float32 = 420
	SettingsDialogHeight float32 = 260
)
