// Package env validates the process environment at startup.
//
// Two profiles exist. Public holds values that are safe to hand to the
// rendering layer and the browser. Full adds server-only secrets and must
// only ever be handed to server-side code; pass Full.Public on instead.
package env

import (
	"io"
	"os"
	"reflect"
)

// Profile names used in diagnostics.
const (
	ProfilePublic = "public"
	ProfileFull   = "full"
)

// Application environments accepted by APP_ENV.
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// Lookup returns the raw value of a variable and whether it was set.
type Lookup func(key string) (string, bool)

// Public is the browser-safe profile.
type Public struct {
	SiteURL              string `env:"PUBLIC_SITE_URL" default:"http://localhost:3000" validate:"required,url"`
	SupabaseURL          string `env:"PUBLIC_SUPABASE_URL" validate:"required,url"`
	SupabaseAnonKey      string `env:"PUBLIC_SUPABASE_ANON_KEY" validate:"required,supabase_anon"`
	StripePublishableKey string `env:"PUBLIC_STRIPE_PUBLISHABLE_KEY" validate:"required,stripe_publishable"`
	AppEnv               string `env:"APP_ENV" default:"development" validate:"required,oneof=development production test"`
}

// Full is the server-only profile. It embeds the public values.
type Full struct {
	Public

	SupabaseServiceRoleKey string `env:"SUPABASE_SERVICE_ROLE_KEY" validate:"required,supabase_secret"`
	StripeSecretKey        string `env:"STRIPE_SECRET_KEY" validate:"required,stripe_secret"`
	StripeWebhookSecret    string `env:"STRIPE_WEBHOOK_SECRET" validate:"required,startswith=whsec_"`
	ResendAPIKey           string `env:"RESEND_API_KEY" validate:"omitempty,startswith=re_"`
	OpenAIAPIKey           string `env:"OPENAI_API_KEY" validate:"omitempty,startswith=sk-"`
	AnthropicAPIKey        string `env:"ANTHROPIC_API_KEY" validate:"omitempty,startswith=sk-ant-"`
}

// IsProduction reports whether APP_ENV is production.
func (p Public) IsProduction() bool {
	return p.AppEnv == Production
}

// LoadPublic reads and validates the public profile.
// On failure a diagnostic listing every violation is written to stderr.
func LoadPublic(lookup Lookup, stderr io.Writer) (Public, error) {
	var p Public

	fill(reflect.ValueOf(&p).Elem(), lookup)

	if err := check(ProfilePublic, &p, stderr); err != nil {
		return Public{}, err
	}

	return p, nil
}

// Load reads and validates the full profile.
// On failure a diagnostic listing every violation is written to stderr.
func Load(lookup Lookup, stderr io.Writer) (Full, error) {
	var f Full

	fill(reflect.ValueOf(&f).Elem(), lookup)

	if err := check(ProfileFull, &f, stderr); err != nil {
		return Full{}, err
	}

	return f, nil
}

// FromOS looks variables up in the process environment.
func FromOS() Lookup {
	return os.LookupEnv
}

// FromMap looks variables up in m.
func FromMap(m map[string]string) Lookup {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func check(profile string, target any, stderr io.Writer) error {
	fields := validateStruct(target)
	if len(fields) == 0 {
		return nil
	}

	verr := &Error{Profile: profile, Fields: fields}

	if stderr != nil {
		Report(stderr, verr)
	}

	return verr
}

// fill copies variables into the string fields of v tagged with `env`,
// applying `default` for unset or empty values. Embedded structs are walked.
func fill(v reflect.Value, lookup Lookup) {
	t := v.Type()

	for i := range t.NumField() {
		field := t.Field(i)
		fv := v.Field(i)

		if field.Anonymous && fv.Kind() == reflect.Struct {
			fill(fv, lookup)
			continue
		}

		key := field.Tag.Get("env")
		if key == "" || fv.Kind() != reflect.String {
			continue
		}

		value, ok := lookup(key)
		if !ok || value == "" {
			value = field.Tag.Get("default")
		}

		fv.SetString(value)
	}
}
