package i18n

// Catalog resolves message keys to user-facing text. Lookup falls back to
// the default language, then to the raw key so a missing entry is still
// traceable.
type Catalog struct {
	defaultLang string
	messages    map[string]map[string]string
}

func NewCatalog(defaultLang string) *Catalog {
	if _, ok := messages[defaultLang]; !ok {
		defaultLang = "en"
	}
	return &Catalog{defaultLang: defaultLang, messages: messages}
}

func (c *Catalog) Lookup(lang, key string) string {
	if m, ok := c.messages[lang]; ok {
		if text, ok := m[key]; ok {
			return text
		}
	}
	if text, ok := c.messages[c.defaultLang][key]; ok {
		return text
	}
	return key
}

var messages = map[string]map[string]string{
	"en": {
		"user.login":           "Login success.",
		"user.refresh":         "Refresh token success.",
		"user.changePassword":  "Change password success.",
		"user.info":            "Info success.",
		"user.grantPermission": "Grant permission success.",
		"user.profile":         "Profile success.",
		"user.upload":          "Upload profile photo success.",

		"user.error.notFound":                  "User not found.",
		"user.error.passwordNotMatch":          "Password not match.",
		"user.error.passwordAttemptMax":        "Password attempt reached the maximum, please contact the admin.",
		"user.error.blocked":                   "User blocked.",
		"user.error.inactive":                  "User inactive.",
		"user.error.passwordExpired":           "Password expired, please change your password.",
		"user.error.newPasswordMustDifference": "New password must be different from the old password.",

		"role.error.notFound": "Role not found.",
		"role.error.inactive": "Role inactive.",

		"apiKey.error.required":     "API key required.",
		"apiKey.error.malformed":    "API key schema invalid.",
		"apiKey.error.notFound":     "API key not found.",
		"apiKey.error.inactive":     "API key inactive.",
		"apiKey.error.notYetActive": "API key not yet active.",
		"apiKey.error.expired":      "API key expired.",
		"apiKey.error.notMatch":     "API key not match.",

		"auth.error.unauthorized":   "Unauthorized.",
		"auth.error.payloadInvalid": "Token payload could not be decrypted.",

		"request.validation":                   "Request validation failed.",
		"http.serverError.internalServerError": "Internal server error.",
		"file.error.required":                  "File required.",
		"file.error.maxSize":                   "File too large.",
		"file.error.mimeInvalid":               "File mime type invalid.",
	},
	"id": {
		"user.login":                  "Login berhasil.",
		"user.error.notFound":         "Pengguna tidak ditemukan.",
		"user.error.passwordNotMatch": "Kata sandi tidak cocok.",
	},
}
