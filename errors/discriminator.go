package errors

import "fmt"

// UnknownDiscriminatorError is returned when a closed dispatcher is asked for
// a discriminator outside its bound set. It signals a programming or
// configuration defect and must not be retried or defaulted.
type UnknownDiscriminatorError struct {
	Dispatcher    string `json:"dispatcher"`
	Discriminator string `json:"discriminator"`
}

// UnknownDiscriminator creates an UnknownDiscriminatorError.
func UnknownDiscriminator(dispatcher string, discriminator any) *UnknownDiscriminatorError {
	return &UnknownDiscriminatorError{
		Dispatcher:    dispatcher,
		Discriminator: fmt.Sprint(discriminator),
	}
}

func (e *UnknownDiscriminatorError) Error() string {
	return fmt.Sprintf("[%s] %s: no strategy bound to %q", ErrCodeUnknownDiscriminator, e.Dispatcher, e.Discriminator)
}

// ErrorCode returns ErrCodeUnknownDiscriminator.
func (e *UnknownDiscriminatorError) ErrorCode() ErrorCode {
	return ErrCodeUnknownDiscriminator
}
