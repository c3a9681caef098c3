package service

import "errors"

// ErrNotConfirmed is returned by destructive operations that were invoked
// without the explicit confirmation flag. The upstream call is never issued
// in that case.
var ErrNotConfirmed = errors.New("destructive operation requires confirmation")
