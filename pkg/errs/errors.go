package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusNotLoggedIn    = http.StatusUnauthorized
	ErrStatusUnauthorized   = http.StatusUnauthorized
	ErrStatusNotFound       = http.StatusNotFound
	ErrStatusConflict       = http.StatusConflict
	ErrStatusBadGateway     = http.StatusBadGateway
)

var (
	ErrInternalServer              = errors.New("Internal server error")
	ErrClient                      = errors.New("Bad request")
	ErrNotLoggedIn                 = errors.New("Please login to perform this action")
	ErrInvalidCredentials          = errors.New("Email or password is incorrect")
	ErrNotFound                    = errors.New("Resource not found")
	ErrInvalidPasswordConfirmation = errors.New("Incorrect password confirmation")
	ErrExpiredToken                = errors.New("Token has expired")
	ErrStoreUnavailable            = errors.New("Store data service is unavailable")
	ErrEmptyCart                   = errors.New("Cart is empty")
)

// ProviderError carries an identity provider failure whose message is
// shown to the user exactly as the provider produced it.
type ProviderError struct {
	Message string
}

func (e *ProviderError) Error() string {
	return e.Message
}

var errorMap = map[error]int{
	ErrInternalServer:              ErrStatusInternalServer,
	ErrClient:                      ErrStatusClient,
	ErrNotLoggedIn:                 ErrStatusNotLoggedIn,
	ErrInvalidCredentials:          ErrStatusUnauthorized,
	ErrNotFound:                    ErrStatusNotFound,
	ErrInvalidPasswordConfirmation: ErrStatusUnauthorized,
	ErrExpiredToken:                ErrStatusUnauthorized,
	ErrStoreUnavailable:            ErrStatusBadGateway,
	ErrEmptyCart:                   ErrStatusClient,
}

func GetErrorStatusCode(err error) int {
	var providerErr *ProviderError
	if errors.As(err, &providerErr) {
		return ErrStatusUnauthorized
	}

	errStatusCode, ok := errorMap[err]
	if !ok {
		errStatusCode = errorMap[ErrInternalServer]
	}
	return errStatusCode
}
