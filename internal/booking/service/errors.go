package service

import "errors"

// Error kinds recovered at the HTTP boundary and translated to structured
// responses. Services wrap these with fmt.Errorf("%w: ...") to add detail;
// handlers classify with errors.Is. ErrAuthentication is deliberately bare —
// it must never reveal which part of a credential check failed.
var (
	ErrValidation     = errors.New("validation failed")
	ErrAuthentication = errors.New("invalid credentials")
	ErrAuthorization  = errors.New("forbidden")
	ErrConflict       = errors.New("conflict")
	ErrNotFound       = errors.New("not found")
)
