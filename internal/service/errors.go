package service

import "errors"

var (
	ErrSameToken        = errors.New("src and dst are equal")
	ErrPairMismatch     = errors.New("pair does not match src/dst")
	ErrEmptyReserves    = errors.New("empty reserves")
	ErrUnknownOperation = errors.New("unknown curve operation")
	ErrBatchTooLarge    = errors.New("batch exceeds maximum size")
)
