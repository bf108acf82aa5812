// Package diagnostic provides structured errors, warnings and notes produced
// while validating a variant catalog or linting a decoded mapping tree.
//
// Key capabilities:
//   - Stable codes per finding so tooling can filter or suppress them
//   - A subject (catalog entry, mapping document) and a dotted field path
//   - Suggested fixes attached to a finding
//   - A combined error value for callers that only need pass/fail
package diagnostic
