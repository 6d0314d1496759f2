package models

import "time"

// SettingsID is the fixed key of the settings singleton document.
const SettingsID = "site"

// Settings holds the theme/contact/branding fields read by the public site
// and the receipt renderer. A single document with _id SettingsID exists.
type Settings struct {
	ID string `bson:"_id" json:"-"`

	// Theme colors
	PrimaryGold   string `bson:"primaryGold" json:"primaryGold"`
	SecondaryGold string `bson:"secondaryGold" json:"secondaryGold"`
	AccentGold    string `bson:"accentGold" json:"accentGold"`
	BgPrimary     string `bson:"bgPrimary" json:"bgPrimary"`
	BgSecondary   string `bson:"bgSecondary" json:"bgSecondary"`
	BgTertiary    string `bson:"bgTertiary" json:"bgTertiary"`
	TextPrimary   string `bson:"textPrimary" json:"textPrimary"`
	TextSecondary string `bson:"textSecondary" json:"textSecondary"`
	TextMuted     string `bson:"textMuted" json:"textMuted"`
	BorderLight   string `bson:"borderLight" json:"borderLight"`
	BorderMedium  string `bson:"borderMedium" json:"borderMedium"`

	// Branding
	SiteName        string `bson:"siteName" json:"siteName"`
	SiteDescription string `bson:"siteDescription" json:"siteDescription"`
	FontFamily      string `bson:"fontFamily" json:"fontFamily"`

	// Contact
	Phone   string `bson:"phone" json:"phone"`
	Email   string `bson:"email" json:"email"`
	Address string `bson:"address" json:"address"`

	// Social
	Facebook  string `bson:"facebook" json:"facebook"`
	Instagram string `bson:"instagram" json:"instagram"`
	Twitter   string `bson:"twitter" json:"twitter"`

	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// DefaultSettings returns the seed document used at startup and by reset.
func DefaultSettings() Settings {
	return Settings{
		ID:              SettingsID,
		PrimaryGold:     "#C9A961",
		SecondaryGold:   "#B8935E",
		AccentGold:      "#D4AF37",
		BgPrimary:       "#FFFFFF",
		BgSecondary:     "#F8F7F4",
		BgTertiary:      "#F5F3EF",
		TextPrimary:     "#1A1A1A",
		TextSecondary:   "#4A4A4A",
		TextMuted:       "#8B8B8B",
		BorderLight:     "#E8E6E1",
		BorderMedium:    "#D4D2CD",
		SiteName:        "RAHHALAH",
		SiteDescription: "Premium Streetwear Collection",
		FontFamily:      "-apple-system, BlinkMacSystemFont, 'Segoe UI', 'Helvetica Neue', Arial, sans-serif",
		UpdatedAt:       time.Now(),
	}
}
