// Package match ranks known names against a name that failed to resolve.
//
// The analyzer uses it to attach "did you mean" hints to lookup errors:
//   - Normalize folds case and drops separators, so "sample-plugin" and
//     "sample_plugin" compare equal
//   - Distance computes the edit distance between two names
//   - Suggest returns the closest candidates above a similarity floor
package match
