package algorithm

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// Options carries loosely typed algorithm parameters, as decoded from a CLI
// flag, YAML template or JSON request. Accessors coerce with spf13/cast.
type Options map[string]any

// Has reports whether key is set.
func (o Options) Has(key string) bool {
	_, ok := o.get(key)

	return ok
}

// String returns key as a string, or def when unset.
func (o Options) String(key, def string) (string, error) {
	v, ok := o.get(key)
	if !ok {
		return def, nil
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrBadOption, key, err)
	}

	return s, nil
}

// RequireString returns key as a non-empty string or ErrMissingOption.
func (o Options) RequireString(key string) (string, error) {
	s, err := o.String(key, "")
	if err != nil {
		return "", err
	}
	if s == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingOption, key)
	}

	return s, nil
}

// Float returns key as a float64, or def when unset.
func (o Options) Float(key string, def float64) (float64, error) {
	v, ok := o.get(key)
	if !ok {
		return def, nil
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrBadOption, key, err)
	}

	return f, nil
}

// Int returns key as an int, or def when unset.
func (o Options) Int(key string, def int) (int, error) {
	v, ok := o.get(key)
	if !ok {
		return def, nil
	}
	i, err := cast.ToIntE(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrBadOption, key, err)
	}

	return i, nil
}

// Int64 returns key as an int64, or def when unset.
func (o Options) Int64(key string, def int64) (int64, error) {
	v, ok := o.get(key)
	if !ok {
		return def, nil
	}
	i, err := cast.ToInt64E(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrBadOption, key, err)
	}

	return i, nil
}

// Bool returns key as a bool, or def when unset.
func (o Options) Bool(key string, def bool) (bool, error) {
	v, ok := o.get(key)
	if !ok {
		return def, nil
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return false, fmt.Errorf("%w: %s: %w", ErrBadOption, key, err)
	}

	return b, nil
}

// Strings returns key as a string list. A single string is split on commas.
func (o Options) Strings(key string) ([]string, error) {
	v, ok := o.get(key)
	if !ok {
		return nil, nil
	}
	if s, isString := v.(string); isString {
		var out []string
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}

		return out, nil
	}
	list, err := cast.ToStringSliceE(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrBadOption, key, err)
	}

	return list, nil
}

// get looks key up exactly, then case-insensitively: config loaders such as
// viper lowercase map keys.
func (o Options) get(key string) (any, bool) {
	if v, ok := o[key]; ok {
		return v, true
	}
	for k, v := range o {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}

	return nil, false
}
