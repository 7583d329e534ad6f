package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconRefresh  = "⟳"
	IconSearch   = "🔍"
	IconError    = "❌"
	IconEmptyBox = "📦"
	IconClose    = "×"
)

// Text fragments
const (
	DashPlaceholder = "—"
)

// Layout sizing (product grid / cards)
const (
	CardMinWidth  float32 = 180
	CardMinHeight float32 = 110

	// Description preview length in grid cells, in runes
	CardDescriptionLength = 60
)

// Skeleton placeholders shown while loading
const (
	SkeletonRows = 2
)

// Dialog sizing
const (
	DetailDialogWidth    float32 = 420
	DetailDialogHeight   float32 = 320
	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 400
)
