package domain

// Language is a supported interface language.
type Language string

const (
	LanguagePtBR Language = "pt-BR"
	LanguageEnUS Language = "en-US"
)

// Valid reports whether l is a supported language.
func (l Language) Valid() bool {
	return l == LanguagePtBR || l == LanguageEnUS
}

type ThemeColors struct {
	Primary       string `json:"primary" yaml:"primary"`
	Accent        string `json:"accent" yaml:"accent"`
	HeaderBgColor string `json:"headerBgColor" yaml:"headerBgColor"`
}

type CustomTexts struct {
	HeaderTitle    string `json:"headerTitle" yaml:"headerTitle"`
	WelcomeMessage string `json:"welcomeMessage" yaml:"welcomeMessage"`
}

type ContactInfo struct {
	Email string `json:"email" yaml:"email"`
	Phone string `json:"phone" yaml:"phone"`
}

// Settings is the singleton appearance and contact configuration.
type Settings struct {
	ThemeColors ThemeColors `json:"themeColors" yaml:"themeColors"`
	Language    Language    `json:"language" yaml:"language"`
	CustomTexts CustomTexts `json:"customTexts" yaml:"customTexts"`
	LogoURL     *string     `json:"logoUrl,omitempty" yaml:"logoUrl,omitempty"`
	ContactInfo ContactInfo `json:"contactInfo" yaml:"contactInfo"`
}

// ThemeColorsPatch, CustomTextsPatch and ContactInfoPatch carry optional
// leaves; a nil pointer leaves the current value untouched.
type ThemeColorsPatch struct {
	Primary       *string `json:"primary,omitempty"`
	Accent        *string `json:"accent,omitempty"`
	HeaderBgColor *string `json:"headerBgColor,omitempty"`
}

type CustomTextsPatch struct {
	HeaderTitle    *string `json:"headerTitle,omitempty"`
	WelcomeMessage *string `json:"welcomeMessage,omitempty"`
}

type ContactInfoPatch struct {
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// SettingsPatch is a partial settings update.
//
// Merge rules per field:
//   - ThemeColors, CustomTexts, ContactInfo: deep-merged leaf by leaf.
//   - Language, LogoURL: replaced wholesale when present.
type SettingsPatch struct {
	ThemeColors *ThemeColorsPatch `json:"themeColors,omitempty"`
	Language    *Language         `json:"language,omitempty"`
	CustomTexts *CustomTextsPatch `json:"customTexts,omitempty"`
	LogoURL     *string           `json:"logoUrl,omitempty"`
	ContactInfo *ContactInfoPatch `json:"contactInfo,omitempty"`
}

// Merge applies p on top of s and returns the result. s is not modified.
func (s Settings) Merge(p SettingsPatch) Settings {
	out := s
	if s.LogoURL != nil {
		logo := *s.LogoURL
		out.LogoURL = &logo
	}

	if tc := p.ThemeColors; tc != nil {
		setIfPresent(&out.ThemeColors.Primary, tc.Primary)
		setIfPresent(&out.ThemeColors.Accent, tc.Accent)
		setIfPresent(&out.ThemeColors.HeaderBgColor, tc.HeaderBgColor)
	}
	if ct := p.CustomTexts; ct != nil {
		setIfPresent(&out.CustomTexts.HeaderTitle, ct.HeaderTitle)
		setIfPresent(&out.CustomTexts.WelcomeMessage, ct.WelcomeMessage)
	}
	if ci := p.ContactInfo; ci != nil {
		setIfPresent(&out.ContactInfo.Email, ci.Email)
		setIfPresent(&out.ContactInfo.Phone, ci.Phone)
	}
	if p.Language != nil {
		out.Language = *p.Language
	}
	if p.LogoURL != nil {
		logo := *p.LogoURL
		out.LogoURL = &logo
	}
	return out
}

func setIfPresent(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
