// SPDX-License-Identifier: MIT
// Package: tenjinx/randgen
//
// constants.go — domain-wide default bounds, method tags and palettes.

package randgen

import "math"

//-----------------------------------------------------------------------------
// Default bounds
//   applied when a caller omits a minimum/maximum for a domain.
//-----------------------------------------------------------------------------

const (
	// MinimumDouble is the lower bound used when no minimum double is set.
	MinimumDouble float64 = 0.0
	// MaximumDouble is the upper bound used when no maximum double is set.
	MaximumDouble float64 = 1.0

	// MinimumInt32 is the lower bound used when no minimum int32 is set.
	MinimumInt32 int32 = math.MinInt32
	// MaximumInt32 is the upper bound used when no maximum int32 is set.
	// It is one below math.MaxInt32; callers relying on the default domain
	// observe this exact value.
	MaximumInt32 int32 = math.MaxInt32 - 1
)

//-----------------------------------------------------------------------------
// Method name constants
//   used to prefix errors and log events with the entry point name.
//-----------------------------------------------------------------------------

const (
	MethodDouble  = "Double"
	MethodInt32   = "Int32"
	MethodString  = "String"
	MethodDoubles = "Doubles"
	MethodInt32s  = "Int32s"
	MethodStrings = "Strings"
)

//-----------------------------------------------------------------------------
// Palettes
//-----------------------------------------------------------------------------

const (
	CharsetUpper        = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	CharsetLower        = "abcdefghijklmnopqrstuvwxyz"
	CharsetDigits       = "0123456789"
	CharsetHex          = "0123456789abcdef"
	CharsetAlpha        = CharsetUpper + CharsetLower
	CharsetAlphanumeric = CharsetAlpha + CharsetDigits
)

// charsets maps the names accepted by CharsetByName to their palettes.
var charsets = map[string]string{
	"upper":        CharsetUpper,
	"lower":        CharsetLower,
	"digits":       CharsetDigits,
	"hex":          CharsetHex,
	"alpha":        CharsetAlpha,
	"alphanumeric": CharsetAlphanumeric,
}

// CharsetByName returns the palette registered under name
// ("upper", "lower", "digits", "hex", "alpha", "alphanumeric").
func CharsetByName(name string) (string, bool) {
	cs, ok := charsets[name]
	return cs, ok
}
