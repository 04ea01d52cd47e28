// Package stringx holds small string predicates shared across tenjinx.
package stringx
