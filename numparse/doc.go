// SPDX-License-Identifier: MIT

// Package numparse turns calculator text input into numbers.
//
// The policy is strict: text that is not a finite number is an error
// (ErrParse, wrapped with the offending text) and is never read as 0.
// Before parsing, input is NFKC-normalized so full-width digits and
// punctuation ("１２．５") read as ASCII, the unicode minus sign (U+2212)
// becomes '-', and surrounding whitespace is trimmed.
//
// List helpers (Floats, Ints) split on commas, semicolons and whitespace.
package numparse
