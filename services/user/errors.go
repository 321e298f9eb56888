package user

import "errors"

var (
	// ErrPhoneTaken means a customer with that phone already exists.
	ErrPhoneTaken = errors.New("a user with this phone already exists")

	// ErrNotFound means no customer matches the phone.
	ErrNotFound = errors.New("user not found")

	// ErrInvalidCredentials covers bad phone/password pairs. Login never
	// reveals which half was wrong.
	ErrInvalidCredentials = errors.New("invalid phone or password")
)
