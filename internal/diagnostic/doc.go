// Package diagnostic provides structured errors, warnings and notes raised
// while building or validating a semantic model.
//
// Key capabilities:
//   - Coded findings tied to the entity they concern (a unit, module or
//     declaration path)
//   - Collapsing all error findings into a single error value
//   - Forwarding findings to a structured logger
package diagnostic
