package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Authentication and authorization errors
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrNotAuthenticated   = fmt.Errorf("not authenticated")
	ErrForbidden          = fmt.Errorf("role not permitted")

	// Remote call errors. ErrConnection means no response was received at
	// all; ErrRemoteRejected means the server answered with success=false.
	ErrConnection     = fmt.Errorf("connection error")
	ErrRemoteRejected = fmt.Errorf("request rejected by server")

	// Domain errors
	ErrNoCandidates = fmt.Errorf("no candidates available")

	// Input validation errors
	ErrValidation      = fmt.Errorf("validation failed")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)
