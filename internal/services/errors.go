package services

import (
	"errors"

	"github.com/sbilibin2017/psiarze/internal/logger"
)

// ErrValidation matches every *ValidationError.
var ErrValidation = errors.New("validation error")

// ValidationError is a rejected input. Its message is safe to show to the caller.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Is makes errors.Is(err, ErrValidation) hold.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func invalid(msg string) error {
	return &ValidationError{Msg: msg}
}

// Validation failures with a fixed meaning
var (
	ErrSelfRequest       = &ValidationError{Msg: "cannot friend yourself"}
	ErrRequestNotPending = &ValidationError{Msg: "request not pending"}
	ErrSelfRoom          = &ValidationError{Msg: "cannot create room with yourself"}
	ErrInvalidKind       = &ValidationError{Msg: "invalid kind"}
)

// Error variables
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrDogNotFound        = errors.New("dog not found")
	ErrDuplicateRequest   = errors.New("request already exists")
	ErrRequestNotFound    = errors.New("request not found")
	ErrRoomNotFound       = errors.New("room not found")
	ErrDuplicateMember    = errors.New("user already in room")
	ErrNotFriends         = errors.New("you are not friends")
	ErrNoLocation         = errors.New("friend is not sharing location")
)

// expected reports whether err is a domain outcome the caller is told about,
// as opposed to a store or infrastructure failure.
func expected(err error) bool {
	if errors.Is(err, ErrValidation) {
		return true
	}
	for _, target := range []error{
		ErrEmailTaken, ErrUsernameTaken, ErrInvalidCredentials, ErrUserNotFound,
		ErrDogNotFound, ErrDuplicateRequest, ErrRequestNotFound, ErrRoomNotFound,
		ErrDuplicateMember, ErrNotFriends, ErrNoLocation,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// logFailure logs expected outcomes at debug level and everything else as an error.
func logFailure(msg string, err error, keysAndValues ...any) {
	keysAndValues = append(keysAndValues, "error", err)
	if expected(err) {
		logger.Log.Debugw(msg, keysAndValues...)
		return
	}
	logger.Log.Errorw(msg, keysAndValues...)
}
