// Package match provides name normalization, edit distance and
// "did you mean" suggestions for mapping discriminators and field keys.
//
// Key functions:
//   - Normalize: folds case and separators so "dateNanos", "date-nanos"
//     and "date_nanos" compare equal
//   - Levenshtein: computes edit distance between strings
//   - Suggest: picks the closest known name for a misspelled one
package match
