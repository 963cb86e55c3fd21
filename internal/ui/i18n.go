package ui

import (
	"embed"
	"encoding/json"
	"io/fs"
	"log/slog"
	"path"
	"slices"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-experience/internal/config"
	"golang.org/x/text/language"
)

const (
	localesDir     = "locales"
	localePrefix   = "active."
	localeFileType = "json"
)

//go:embed locales/*.json
var localeFS embed.FS

// localeSet is the outcome of scanning a locale directory.
type localeSet struct {
	loaded []string // language codes, in directory order
	failed []string // file names that matched but did not parse
}

// SetupI18n builds the translation bundle from the embedded locales and
// selects the localizer for the saved language.
func (app *ExperienceApp) SetupI18n() {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc(localeFileType, json.Unmarshal)

	set, err := loadLocales(bundle, localeFS)
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyError, err,
		)
		return
	}

	slog.Info(config.MsgLocalesReady,
		config.LogKeyComponent, config.CompI18n,
		config.LogKeyCount, len(set.loaded),
		config.LogKeyFailed, set.failed,
	)

	app.SupportedLanguages = set.loaded
	app.I18nBundle = bundle
	app.UpdateLocalizer()
}

// loadLocales registers every locales/active.<lang>.json file of fsys with
// bundle. A file that fails to parse is reported and skipped.
func loadLocales(bundle *i18n.Bundle, fsys fs.FS) (localeSet, error) {
	var set localeSet

	entries, err := fs.ReadDir(fsys, localesDir)
	if err != nil {
		return set, err
	}

	for _, entry := range entries {
		name := entry.Name()
		lang, ok := localeLang(name)
		if !ok {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		data, err := fs.ReadFile(fsys, path.Join(localesDir, name))
		if err == nil {
			_, err = bundle.ParseMessageFileBytes(data, name)
		}
		if err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
			set.failed = append(set.failed, name)
			continue
		}

		set.loaded = append(set.loaded, lang)
		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyFile, name,
			config.LogKeyLang, lang,
		)
	}
	return set, nil
}

// localeLang extracts the language code from "active.<lang>.json".
func localeLang(name string) (string, bool) {
	if !strings.HasPrefix(name, localePrefix) || !strings.HasSuffix(name, "."+localeFileType) {
		return "", false
	}
	lang := strings.TrimSuffix(strings.TrimPrefix(name, localePrefix), "."+localeFileType)
	if lang == "" {
		slog.Warn(config.MsgLocaleBadName,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyFile, name,
		)
		return "", false
	}
	return lang, true
}

// UpdateLocalizer refreshes the translator from the language preference,
// falling back to the default when that language did not load.
func (app *ExperienceApp) UpdateLocalizer() {
	lang := app.Preferences.StringWithFallback(config.PrefLanguage, config.DefaultLanguage)
	if !slices.Contains(app.SupportedLanguages, lang) {
		slog.Warn(config.MsgLangFallback,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, lang,
		)
		lang = config.DefaultLanguage
	}
	app.Localizer = i18n.NewLocalizer(app.I18nBundle, lang)
}

// GetMsg translates a key, returning the key itself when no translation exists.
func (app *ExperienceApp) GetMsg(key string) string {
	if msg := app.localize(key, nil); msg != "" {
		return msg
	}
	return key
}
