package fsp

import (
	"fmt"
	"io/fs"
	"syscall"
)

// OpsErr is a custom type for the error codes returned by the filesystem
// proxy service.
type OpsErr int32

// Enumeration of the service error codes surfaced to clients.
const (
	OpsErr_SUCCESS        OpsErr = 0
	OpsErr_INTERNAL       OpsErr = 1
	OpsErr_COMMUNICATION  OpsErr = 2
	OpsErr_PATHNOTEXISTS  OpsErr = 3
	OpsErr_EXISTS         OpsErr = 4
	OpsErr_NOTADIR        OpsErr = 5
	OpsErr_NOTAFILE       OpsErr = 6
	OpsErr_NOTEMPTY       OpsErr = 7
	OpsErr_NOSPACE        OpsErr = 8
	OpsErr_NOTSUPP        OpsErr = 9
	OpsErr_SESSIONCLOSED  OpsErr = 10
	OpsErr_OUTOFRANGE     OpsErr = 11
	OpsErr_TARGETNOTFOUND OpsErr = 12
)

func (e OpsErr) Error() string {
	return e.String()
}

// Is maps service error codes onto the standard sentinels so callers can use
// errors.Is with fs.ErrNotExist and friends. Matching is forward-only.
func (e OpsErr) Is(target error) bool {
	switch e {
	case OpsErr_PATHNOTEXISTS:
		return target == fs.ErrNotExist || target == syscall.ENOENT
	case OpsErr_EXISTS:
		return target == fs.ErrExist || target == syscall.EEXIST
	case OpsErr_NOTADIR:
		return target == syscall.ENOTDIR
	case OpsErr_NOTEMPTY:
		return target == syscall.ENOTEMPTY
	case OpsErr_NOSPACE:
		return target == syscall.ENOSPC
	case OpsErr_NOTSUPP:
		return target == syscall.ENOTSUP
	default:
		return false
	}
}

// String method returns a string representation of the error codes.
func (e OpsErr) String() string {
	switch e {
	case OpsErr_SUCCESS:
		return "Success"
	case OpsErr_INTERNAL:
		return "Internal error"
	case OpsErr_COMMUNICATION:
		return "Communication error"
	case OpsErr_PATHNOTEXISTS:
		return "Path does not exist"
	case OpsErr_EXISTS:
		return "Entry exists already"
	case OpsErr_NOTADIR:
		return "Entry is not a directory"
	case OpsErr_NOTAFILE:
		return "Entry is not a file"
	case OpsErr_NOTEMPTY:
		return "Directory is not empty"
	case OpsErr_NOSPACE:
		return "No space left"
	case OpsErr_NOTSUPP:
		return "Operation not supported"
	case OpsErr_SESSIONCLOSED:
		return "Session is closed"
	case OpsErr_OUTOFRANGE:
		return "Offset or size out of range"
	case OpsErr_TARGETNOTFOUND:
		return "Unknown storage target"
	default:
		return fmt.Sprintf("Unknown error (%d)", int(e))
	}
}
