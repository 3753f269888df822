// Package i18n holds the bilingual message catalogs. The app ships
// English and Arabic; unknown language codes fall back to the default
// silently.
package i18n

import "os"

const (
	LangEnglish = "en"
	LangArabic  = "ar"
)

var catalogs = map[string]map[string]string{
	LangEnglish: {
		"welcome":                   "Welcome to Raya! Your account has been created.",
		"logged_out":                "Logged out successfully",
		"profile_created":           "Your profile has been created",
		"profile_updated":           "Your profile has been updated",
		"deal_created":              "Your deal has been created as a draft",
		"deal_status_updated":       "Deal status updated",
		"interest_recorded":         "Your interest has been recorded",
		"commitment_recorded":       "Your commitment has been recorded",
		"startup_profile_required":  "Create your startup profile first to post deals",
		"investor_profile_required": "Create your investor profile first to participate in deals",
	},
	LangArabic: {
		"welcome":                   "مرحباً بك في رايا! تم إنشاء حسابك.",
		"logged_out":                "تم تسجيل الخروج بنجاح",
		"profile_created":           "تم إنشاء ملفك الشخصي",
		"profile_updated":           "تم تحديث ملفك الشخصي",
		"deal_created":              "تم إنشاء صفقتك كمسودة",
		"deal_status_updated":       "تم تحديث حالة الصفقة",
		"interest_recorded":         "تم تسجيل اهتمامك",
		"commitment_recorded":       "تم تسجيل التزامك",
		"startup_profile_required":  "أنشئ ملف شركتك الناشئة أولاً لنشر الصفقات",
		"investor_profile_required": "أنشئ ملف المستثمر أولاً للمشاركة في الصفقات",
	},
}

// DefaultLang returns the configured default language, "en" unless
// DEFAULT_LANG names a supported code.
func DefaultLang() string {
	if lang := os.Getenv("DEFAULT_LANG"); Supported(lang) {
		return lang
	}
	return LangEnglish
}

func Supported(lang string) bool {
	_, ok := catalogs[lang]
	return ok
}

// T translates a message key for the given language. Unsupported
// languages fall back to the default; unknown keys come back as the key
// itself so a missing translation is visible, not fatal.
func T(lang, key string) string {
	catalog, ok := catalogs[lang]
	if !ok {
		catalog = catalogs[DefaultLang()]
	}

	if msg, ok := catalog[key]; ok {
		return msg
	}

	return key
}
