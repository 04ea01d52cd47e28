// SPDX-License-Identifier: MIT
// Package: tenjinx/randconfig
//
// randconfig.go — viper → randgen.Option decoding.
//
// Contract:
//   • Values are coerced with spf13/cast (strings from env/flags included).
//   • All decode failures are aggregated with go-multierror; each entry wraps
//     ErrInvalidValue or ErrUnknownCharset and names its key.
//   • Semantic checks (ranges, length policy) stay in randgen.

package randconfig

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/katalvlaran/tenjinx/randgen"
)

// EnvPrefix is prepended to environment variable names.
const EnvPrefix = "TENJIN"

// Configuration keys.
const (
	KeySeed            = "seed"
	KeyDoubleMin       = "double.min"
	KeyDoubleMax       = "double.max"
	KeyInt32Min        = "int32.min"
	KeyInt32Max        = "int32.max"
	KeyStringLength    = "string.length"
	KeyStringMinLength = "string.min-length"
	KeyStringMaxLength = "string.max-length"
	KeyStringCharset   = "string.charset"
	KeyStringAllowed   = "string.allowed"
)

var (
	// ErrInvalidValue: a key holds a value that cannot be coerced to its type.
	ErrInvalidValue = errors.New("randconfig: invalid value")
	// ErrUnknownCharset: string.charset names no known palette.
	ErrUnknownCharset = errors.New("randconfig: unknown charset")
)

// New returns a viper instance wired for TENJIN_* environment variables.
// When file is non-empty it is read; its extension selects the format.
func New(file string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if file == "" {
		return v, nil
	}
	v.SetConfigFile(file)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("randconfig: read %s: %w", file, err)
	}
	return v, nil
}

// Options decodes every set key of v into randgen options.
func Options(v *viper.Viper) ([]randgen.Option, error) {
	var (
		opts []randgen.Option
		errs *multierror.Error
	)

	decode := func(key string, conv func(interface{}) (randgen.Option, error)) {
		if !v.IsSet(key) {
			return
		}
		opt, err := conv(v.Get(key))
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", key, err))
			return
		}
		opts = append(opts, opt)
	}

	decode(KeySeed, func(raw interface{}) (randgen.Option, error) {
		n, err := cast.ToInt64E(raw)
		return randgen.WithSeed(n), invalid(err)
	})
	decode(KeyDoubleMin, func(raw interface{}) (randgen.Option, error) {
		f, err := cast.ToFloat64E(raw)
		return randgen.WithMinimumDouble(f), invalid(err)
	})
	decode(KeyDoubleMax, func(raw interface{}) (randgen.Option, error) {
		f, err := cast.ToFloat64E(raw)
		return randgen.WithMaximumDouble(f), invalid(err)
	})
	decode(KeyInt32Min, func(raw interface{}) (randgen.Option, error) {
		n, err := cast.ToInt32E(raw)
		return randgen.WithMinimumInt32(n), invalid(err)
	})
	decode(KeyInt32Max, func(raw interface{}) (randgen.Option, error) {
		n, err := cast.ToInt32E(raw)
		return randgen.WithMaximumInt32(n), invalid(err)
	})
	decode(KeyStringLength, func(raw interface{}) (randgen.Option, error) {
		n, err := cast.ToUint32E(raw)
		return randgen.WithLength(n), invalid(err)
	})
	decode(KeyStringMinLength, func(raw interface{}) (randgen.Option, error) {
		n, err := cast.ToUint32E(raw)
		return randgen.WithMinimumLength(n), invalid(err)
	})
	decode(KeyStringMaxLength, func(raw interface{}) (randgen.Option, error) {
		n, err := cast.ToUint32E(raw)
		return randgen.WithMaximumLength(n), invalid(err)
	})

	// string.allowed wins over string.charset when both are set.
	if v.IsSet(KeyStringAllowed) {
		decode(KeyStringAllowed, func(raw interface{}) (randgen.Option, error) {
			s, err := cast.ToStringE(raw)
			return randgen.WithAllowedCharacters(s), invalid(err)
		})
	} else {
		decode(KeyStringCharset, func(raw interface{}) (randgen.Option, error) {
			name := strings.ToLower(strings.TrimSpace(cast.ToString(raw)))
			cs, ok := randgen.CharsetByName(name)
			if !ok {
				return nil, fmt.Errorf("%q: %w", name, ErrUnknownCharset)
			}
			return randgen.WithAllowedCharacters(cs), nil
		})
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return opts, nil
}

// Load decodes v and builds Parameters, with extra applied after the
// decoded options (so callers can add a logger or a Source).
func Load(v *viper.Viper, extra ...randgen.Option) (randgen.Parameters, error) {
	opts, err := Options(v)
	if err != nil {
		return randgen.Parameters{}, err
	}
	return randgen.New(append(opts, extra...)...), nil
}

// invalid tags a cast failure with ErrInvalidValue.
func invalid(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrInvalidValue, err)
}
