package authview

import "errors"

// ErrInvalidRoute is returned when a view mode must be derived from an empty route.
var ErrInvalidRoute = errors.New("authview: route has no segments")

// LoginSegment is the final route segment that selects SignIn.
const LoginSegment = "login"

type Mode int

const (
	SignUp Mode = iota
	SignIn
)

func (m Mode) String() string {
	switch m {
	case SignIn:
		return "SignIn"
	case SignUp:
		return "SignUp"
	default:
		return "Unknown"
	}
}

// Title is the human-readable heading for the mode.
func (m Mode) Title() string {
	if m == SignIn {
		return "Sign in"
	}
	return "Sign up"
}

// ModeFromSegments derives the mode from the last route segment.
func ModeFromSegments(segments []string) (Mode, error) {
	if len(segments) == 0 {
		return SignUp, ErrInvalidRoute
	}
	if segments[len(segments)-1] == LoginSegment {
		return SignIn, nil
	}
	return SignUp, nil
}
