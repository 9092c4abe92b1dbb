package identity

import (
	"errors"
)

// Indicates that resolution process completed successfully, but the DID does not exist.
var ErrDIDNotFound = errors.New("DID not found")

// Indicates that DID resolution process failed. A wrapped error may provide more context.
var ErrDIDResolutionFailed = errors.New("DID resolution failed")

// Indicates that DID document did not include any handle ("at://" URI in alsoKnownAs).
var ErrHandleNotDeclared = errors.New("DID document did not declare a handle")

// Indicates that the input could not be parsed as a resolvable DID.
var ErrInvalidDID = errors.New("invalid DID")
