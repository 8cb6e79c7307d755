package submit

import "errors"

// ErrLedgerUnavailable indicates the submission ledger could not be
// consulted. Submissions fail closed rather than risk a duplicate enqueue.
var ErrLedgerUnavailable = errors.New("submission ledger unavailable")
