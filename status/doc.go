// Package status provides the error taxonomy for the interactivity core.
// Every failing operation reports a *Status value; nothing in the core
// signals failure by panicking, with one documented exception (registering
// a teardown hook twice, which is an unrecoverable programming error).
//
// # Categories
//
// Statuses are classified into three categories:
//
//   - Transient: a later call may succeed (construction failures; the
//     affected slot is left empty so the caller can retry)
//   - Permanent: protocol violations where retry will not help
//     (double registration, nil instances)
//   - Internal: invariant violations and bugs
//
// # Usage
//
// Report a protocol violation:
//
//	return status.AlreadyRegistered("console window")
//
// Check a specific code:
//
//	if status.Is(err, status.CodeAlreadyRegistered) {
//	    // slot was occupied; keep using the existing instance
//	}
//
// Decide whether to retry:
//
//	if status.IsRetryable(err) {
//	    // construction failed; the slot is still empty
//	}
package status
