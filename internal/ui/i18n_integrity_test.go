package ui_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-experience/internal/config"
)

// translationKeys lists every key the UI looks up.
var translationKeys = []string{
	config.TKeyWinTitle,
	config.TKeyWinSettings,
	config.TKeyLblCompany,
	config.TKeyLblStart,
	config.TKeyLblEnd,
	config.TKeyHintDate,
	config.TKeyBtnAdd,
	config.TKeyBtnReset,
	config.TKeyBtnClearAll,
	config.TKeyBtnDelete,
	config.TKeyBtnExport,
	config.TKeyBtnSettings,
	config.TKeyBtnSave,
	config.TKeyBtnCancel,
	config.TKeyLblOverall,
	config.TKeyFmtDuration,
	config.TKeyLblLanguage,
	config.TKeyHelpLanguage,
	config.TKeyLblAlgorithm,
	config.TKeyHelpAlgorithm,
	config.TKeyAlgoCalendar,
	config.TKeyAlgoBucketed,
	config.TKeyLblGeneral,
	config.TKeyLblFooter,
	config.TKeyNotifExported,
	config.TKeyNotifExportErr,
	config.TKeyColCompany,
	config.TKeyColStart,
	config.TKeyColEnd,
	config.TKeyColDuration,
	config.TKeyColActions,
	config.TKeyErrCompanyReq,
	config.TKeyErrStartAfter,
	config.TKeyErrDateFormat,
}

// loadLocale reads a locale file whether the test runs from internal/ui or the root.
func loadLocale(t *testing.T, lang string) map[string]interface{} {
	t.Helper()

	name := "active." + lang + ".json"
	content, err := os.ReadFile(filepath.Join("locales", name))
	if os.IsNotExist(err) {
		content, err = os.ReadFile(filepath.Join("..", "..", "internal", "ui", "locales", name))
	}
	require.NoErrorf(t, err, "Must load %s", name)

	var jsonMap map[string]interface{}
	require.NoError(t, json.Unmarshal(content, &jsonMap), "JSON must be valid")
	return jsonMap
}

// TestI18nIntegrity ensures that every translation key defined in config.go
// exists in each locale file.
func TestI18nIntegrity(t *testing.T) {
	definedKeys := make(map[string]bool, len(translationKeys))
	for _, k := range translationKeys {
		definedKeys[k] = true
	}

	for _, lang := range config.SupportedLanguages {
		t.Run(lang, func(t *testing.T) {
			jsonMap := loadLocale(t, lang)

			for key := range definedKeys {
				_, exists := jsonMap[key]
				assert.Truef(t, exists, "Key '%s' defined in config.go is missing in active.%s.json", key, lang)
			}

			for jsonKey := range jsonMap {
				if strings.HasPrefix(jsonKey, "_") {
					continue
				}
				if !definedKeys[jsonKey] {
					t.Logf("Warning: Key '%s' exists in JSON but is not checked in the test suite (might be unused)", jsonKey)
				}
			}
		})
	}
}

// TestI18nTemplates checks that templated messages carry their placeholders.
func TestI18nTemplates(t *testing.T) {
	for _, lang := range config.SupportedLanguages {
		jsonMap := loadLocale(t, lang)

		overall, _ := jsonMap[config.TKeyLblOverall].(string)
		assert.Contains(t, overall, "{{.Total}}", lang)

		format, _ := jsonMap[config.TKeyFmtDuration].(string)
		for _, field := range []string{"{{.Years}}", "{{.Months}}", "{{.Days}}"} {
			assert.Contains(t, format, field, lang)
		}

		footer, _ := jsonMap[config.TKeyLblFooter].(string)
		assert.Contains(t, footer, "%s", lang)
	}
}
