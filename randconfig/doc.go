// Package randconfig decodes randgen.Parameters from layered configuration:
// a config file (YAML, JSON, TOML), TENJIN_* environment variables and
// bound command line flags, resolved through spf13/viper.
//
// Keys:
//
//	seed               int64
//	double.min         float64
//	double.max         float64
//	int32.min          int32
//	int32.max          int32
//	string.length      uint32
//	string.min-length  uint32
//	string.max-length  uint32
//	string.charset     alphanumeric | alpha | lower | upper | digits | hex
//	string.allowed     literal palette; wins over string.charset
//
// Environment names replace "." and "-" with "_": TENJIN_STRING_MIN_LENGTH.
//
// Only keys that are actually set become options, so an absent key keeps
// randgen's default. Every malformed key is reported at once.
package randconfig
