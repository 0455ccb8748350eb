package models

import "testing"

func TestParsePeriod(t *testing.T) {
	cases := []struct {
		in   int
		want Period
	}{
		{0, PeriodDaily},
		{1, PeriodWeekly},
		{2, PeriodMonthly},
		{-1, PeriodDaily},
		{3, PeriodDaily},
		{99, PeriodDaily},
	}
	for _, c := range cases {
		if got := ParsePeriod(c.in); got != c.want {
			t.Fatalf("ParsePeriod(%d)=%v, want %v", c.in, got, c.want)
		}
	}
}

func TestPeriod_String(t *testing.T) {
	if PeriodDaily.String() != "Daily" || PeriodWeekly.String() != "Weekly" || PeriodMonthly.String() != "Monthly" {
		t.Fatalf("unexpected labels: %v %v %v", PeriodDaily, PeriodWeekly, PeriodMonthly)
	}
}

func TestSettings_Normalize(t *testing.T) {
	cases := []struct {
		name string
		in   Settings
		want string
	}{
		{"strips https", Settings{Domain: "https://a.myshopify.com"}, "a.myshopify.com"},
		{"strips http", Settings{Domain: "http://a.myshopify.com"}, "a.myshopify.com"},
		{"strips trailing slash", Settings{Domain: "https://a.myshopify.com/"}, "a.myshopify.com"},
		{"case insensitive scheme", Settings{Domain: "HTTPS://a.myshopify.com"}, "a.myshopify.com"},
		{"trims whitespace", Settings{Domain: "  a.myshopify.com  "}, "a.myshopify.com"},
		{"bare domain untouched", Settings{Domain: "a.myshopify.com"}, "a.myshopify.com"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Normalize().Domain; got != tc.want {
				t.Fatalf("Normalize domain = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSettings_Configured(t *testing.T) {
	if (Settings{}).Configured() {
		t.Fatalf("empty settings must not be configured")
	}
	if (Settings{Domain: "a"}).Configured() {
		t.Fatalf("token required")
	}
	if !(Settings{Domain: "a", Token: "t"}).Configured() {
		t.Fatalf("domain+token should be configured")
	}
}

func TestSettings_ValidOffset(t *testing.T) {
	valid := []string{"", "+02:00", "-05:30", "+00:00", "-11:45"}
	invalid := []string{"02:00", "+2:00", "+02:0", "UTC", "+02:00Z", " +02:00"}

	for _, v := range valid {
		if !(Settings{Timezone: v}).ValidOffset() {
			t.Fatalf("offset %q should be valid", v)
		}
	}
	for _, v := range invalid {
		if (Settings{Timezone: v}).ValidOffset() {
			t.Fatalf("offset %q should be invalid", v)
		}
	}
}
