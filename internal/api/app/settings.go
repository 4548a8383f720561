package app

import (
	"context"

	"github.com/DmitruNS/kuc/internal/configs"
	"github.com/DmitruNS/kuc/internal/i18n"
	"github.com/DmitruNS/kuc/internal/ports"
)

const languageKey = "language"
const defaultLanguage = "ru"

type SettingsAPI struct {
	settings ports.SettingsRepository
	cfg      *configs.AppConfig
}

func NewSettingsAPI(settings ports.SettingsRepository, cfg *configs.AppConfig) *SettingsAPI {
	return &SettingsAPI{settings: settings, cfg: cfg}
}

// Language returns the persisted UI language, defaulting to Russian like
// the original console.
func (a *SettingsAPI) Language() string {
	ctx := context.Background()
	lang, err := a.settings.Get(ctx, languageKey)
	if err != nil || !i18n.Supported(lang) {
		return defaultLanguage
	}
	return lang
}

func (a *SettingsAPI) SetLanguage(language string) (string, error) {
	ctx := context.Background()
	if !i18n.Supported(language) {
		language = defaultLanguage
	}
	if err := a.settings.Set(ctx, languageKey, language); err != nil {
		return "", err
	}
	return language, nil
}

// Translate resolves a UI string, falling back to English.
func (a *SettingsAPI) Translate(language, key string) string {
	return i18n.T(language, key)
}

func (a *SettingsAPI) Languages() []string { return i18n.Languages() }

// FileURL builds the public URL of an uploaded file for the webview to
// render.
func (a *SettingsAPI) FileURL(path string) string {
	return a.cfg.FileURL(path)
}

func (a *SettingsAPI) APIBaseURL() string { return a.cfg.APIBaseURL }
