// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/gardentv-cli/gardentv/color"
	"github.com/gardentv-cli/gardentv/constant"
	"github.com/gardentv-cli/gardentv/key"
	"github.com/gardentv-cli/gardentv/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.GardenTV + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON customizes JSON output to include current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

// typeName returns the string representation of the field's underlying value type.
func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	case []int:
		return "[]int"
	default:
		return "unknown"
	}
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	// register validates and adds a new configuration field to the global registry.
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		f := Field{Key: k, Value: v, Description: desc}
		Default[k] = f
		EnvExposed = append(EnvExposed, k)
	}

	register(key.CatalogBaseURL, "https://raw.githubusercontent.com/TVGarden/tv-garden-channel-list/main/channels/raw/countries",
		"Base URL of the per-country channel list dataset.\nThe country code and \".json\" suffix are appended per request")
	register(key.CatalogTimeout, 10, "Timeout in seconds for a single channel list fetch")
	register(key.CatalogFreeLimit, 5, "Maximum channels returned per country on the free tier.\nSet to 0 to disable the limit")
	register(key.ScrapeBaseURL, "https://tv.garden", "Base URL of the channel pages scraped for stream addresses")
	register(key.ScrapeTimeout, 15, "Timeout in seconds for a single channel page fetch.\nLarger than the catalog timeout since third-party pages are heavy")
	register(key.ScrapeRetries, 3, "Attempts per channel page fetch before giving up")
	register(key.ScrapeBackoff, 200, "Initial retry backoff in milliseconds.\nTriples on every subsequent attempt")
	register(key.ScrapeSpoofTLS, true, "Fetch channel pages with a browser TLS fingerprint.\nRequired for pages behind anti-bot challenges")
	register(key.SearchShowQuerySuggestions, true, "Show query suggestions when searching channels")
	register(key.SearchEmptyQueryAll, true, "Return the full channel list for an empty search query.\nWhen false an empty query returns nothing")
	register(key.HistorySaveOnWatch, true, "Save resolved channels to the watch history")
	register(key.WatchApp, "", "Application used to play resolved streams, e.g. mpv or vlc.\nEmpty means the system default handler")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, plain, nerd (nerd-font required)")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, true, "Enable automatic version check")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"cyan":     style.Fg(color.Cyan),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))
