package handlers

import "testing"

func TestSettingsFieldWhitelist(t *testing.T) {
	for _, key := range []string{"siteName", "phone", "instagram", "primaryGold", "fontFamily"} {
		if !settingsField(key) {
			t.Fatalf("expected %q to be updatable", key)
		}
	}
	for _, key := range []string{"_id", "updatedAt", "passwordHash", "stock", ""} {
		if settingsField(key) {
			t.Fatalf("expected %q to be rejected", key)
		}
	}
}
