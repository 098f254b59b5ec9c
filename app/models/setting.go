package models

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Setting is a single name/value configuration pair. Writes are always
// upserts keyed on name, never plain inserts.
type Setting struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"uniqueIndex;type:varchar(255);not null" json:"name" validate:"required,min=1,max=255"`
	Value string `gorm:"type:text" json:"value"`
}

// Process-wide settings cache. Read on nearly every request, replaced
// wholesale by ReloadSettings after an administrator save. Two concurrent
// cold reads may both load from the database; the overwrite is idempotent so
// last write wins.
var (
	settingsCache map[string]string
	settingsMu    sync.RWMutex
)

// CurrentSettings returns the cached name/value map, loading it from the
// database on first use. The returned map is a snapshot copy; mutating it
// does not touch the cache.
func CurrentSettings(db *gorm.DB) (map[string]string, error) {
	settingsMu.RLock()
	if settingsCache != nil {
		snap := copySettings(settingsCache)
		settingsMu.RUnlock()
		return snap, nil
	}
	settingsMu.RUnlock()

	return ReloadSettings(db)
}

// ReloadSettings re-reads every setting row and replaces the cache. Callers
// that just committed a settings write use this so subsequent reads observe
// the new values immediately.
func ReloadSettings(db *gorm.DB) (map[string]string, error) {
	var rows []Setting
	if err := db.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := make(map[string]string, len(rows))
	for name, def := range SimpleSettings {
		loaded[name] = def.Default
	}
	for _, row := range rows {
		loaded[row.Name] = row.Value
	}

	replaceSettingsCache(loaded)
	return copySettings(loaded), nil
}

func replaceSettingsCache(m map[string]string) {
	settingsMu.Lock()
	settingsCache = m
	settingsMu.Unlock()
}

func copySettings(m map[string]string) map[string]string {
	snap := make(map[string]string, len(m))
	for k, v := range m {
		snap[k] = v
	}
	return snap
}

// SettingDef describes one of the simple key/value settings the admin panel
// edits: how to present it, how to normalise raw input, and how to tell a
// bad value from a good one.
type SettingDef struct {
	Title     string
	Desc      string
	Default   string
	Required  bool
	Normalise func(string) string
	Valid     func(string) bool
}

var currencyRe = regexp.MustCompile(`^[a-z]{3}$`)

// SimpleSettings lists the settings the forms layer knows about. The
// repository itself upserts any key it is handed; this metadata only drives
// normalisation and validation of the admin form.
var SimpleSettings = map[string]SettingDef{
	"title": {
		Title:     "Site Title",
		Desc:      "The name shown in the header of every page.",
		Default:   "Your Name Here",
		Required:  true,
		Normalise: strings.TrimSpace,
		Valid:     func(v string) bool { return v != "" },
	},
	"currency": {
		Title:    "Currency",
		Desc:     "The three letter code of the currency you wish to accept, e.g. usd, gbp, or nzd.",
		Default:  "usd",
		Required: true,
		Normalise: func(v string) string {
			return strings.ToLower(strings.TrimSpace(v))
		},
		Valid: func(v string) bool { return currencyRe.MatchString(v) },
	},
	"splashImage": {
		Title:     "Splash Image",
		Desc:      "The URL of the image shown on the front page. Must be served over https.",
		Default:   "https://s3.postimg.org/qa57kzblf/pexels-photo-117403.jpg",
		Required:  false,
		Normalise: strings.TrimSpace,
		Valid: func(v string) bool {
			if v == "" {
				return true
			}
			if !strings.HasPrefix(v, "https://") {
				return false
			}
			return validator.New().Var(v, "url") == nil
		},
	},
}

// SimpleSettingNames returns the known setting names in a stable order for
// form rendering.
func SimpleSettingNames() []string {
	names := make([]string, 0, len(SimpleSettings))
	for name := range SimpleSettings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NormaliseSetting applies the setting's normalisation, passing unknown
// names through untouched.
func NormaliseSetting(name, value string) string {
	if def, ok := SimpleSettings[name]; ok && def.Normalise != nil {
		return def.Normalise(value)
	}
	return value
}

// ValidateSetting reports whether a (normalised) value is acceptable for the
// named setting. Unknown names are accepted; the validation layer upstream
// decides which keys reach us at all.
func ValidateSetting(name, value string) bool {
	def, ok := SimpleSettings[name]
	if !ok {
		return true
	}
	if value == "" && !def.Required {
		return true
	}
	if def.Valid == nil {
		return true
	}
	return def.Valid(value)
}
