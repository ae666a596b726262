package config

import "errors"

// ErrInvalidBatchWorkers indicates that BATCH_WORKERS is not a positive
// integer.
var ErrInvalidBatchWorkers = errors.New("BATCH_WORKERS must be a positive integer")

// ErrInvalidMaxBatchSize indicates that MAX_BATCH_SIZE is not a positive
// integer.
var ErrInvalidMaxBatchSize = errors.New("MAX_BATCH_SIZE must be a positive integer")
