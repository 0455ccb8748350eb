package models

import (
	"regexp"
	"strings"
)

// offsetPattern validates timezone offsets of the form "+02:00" / "-05:30".
var offsetPattern = regexp.MustCompile(`^[+-]\d{2}:\d{2}$`)

// Settings is the persisted store connection record.
//
// Fields:
//   - Domain: bare store host, no scheme (e.g., "my-shop.myshopify.com").
//   - Token: Admin API access token (scope: read_orders). Never logged.
//   - Timezone: optional UTC offset string "±HH:MM"; empty means "use the
//     process-local offset" when computing date ranges.
type Settings struct {
	Domain   string `json:"domain"`
	Token    string `json:"token"`
	Timezone string `json:"timezone,omitempty"`
}

// Configured reports whether the record carries enough to reach the store.
func (s Settings) Configured() bool {
	return s.Domain != "" && s.Token != ""
}

// Normalize trims fields and strips any http(s):// prefix from the domain.
// The domain is stored bare; the client adds the scheme itself.
func (s Settings) Normalize() Settings {
	d := strings.TrimSpace(s.Domain)
	for _, p := range []string{"https://", "http://"} {
		if strings.HasPrefix(strings.ToLower(d), p) {
			d = d[len(p):]
			break
		}
	}
	return Settings{
		Domain:   strings.TrimSuffix(d, "/"),
		Token:    strings.TrimSpace(s.Token),
		Timezone: strings.TrimSpace(s.Timezone),
	}
}

// ValidOffset reports whether the timezone field is empty or matches ±HH:MM.
func (s Settings) ValidOffset() bool {
	return s.Timezone == "" || offsetPattern.MatchString(s.Timezone)
}
