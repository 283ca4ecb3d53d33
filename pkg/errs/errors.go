package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusNotFound       = http.StatusNotFound
	ErrStatusConflict       = http.StatusConflict
	ErrStatusBadGateway     = http.StatusBadGateway
	ErrStatusUnavailable    = http.StatusServiceUnavailable
)

var (
	ErrInternalServer       = errors.New("Internal server error")
	ErrClient               = errors.New("Bad request")
	ErrNotFound             = errors.New("Resource not found")
	ErrProductNotFound      = errors.New("Product not found")
	ErrReviewNotFound       = errors.New("Review not found")
	ErrContactNotFound      = errors.New("Contact not found")
	ErrSubscriberNotFound   = errors.New("Email not found in newsletter")
	ErrConflict             = errors.New("Conflicting record found")
	ErrInvalidRating        = errors.New("Rating must be between 1 and 5")
	ErrInvalidContactStatus = errors.New("Contact status must be one of new, read, replied")
	ErrRecaptchaFailed      = errors.New("reCAPTCHA verification failed")
	ErrRecaptchaUnavailable = errors.New("reCAPTCHA verification is unavailable")
	ErrStoreUnavailable     = errors.New("Database is unavailable")
)

var errorMap = map[error]int{
	ErrInternalServer:       ErrStatusInternalServer,
	ErrClient:               ErrStatusClient,
	ErrNotFound:             ErrStatusNotFound,
	ErrProductNotFound:      ErrStatusNotFound,
	ErrReviewNotFound:       ErrStatusNotFound,
	ErrContactNotFound:      ErrStatusNotFound,
	ErrSubscriberNotFound:   ErrStatusNotFound,
	ErrConflict:             ErrStatusConflict,
	ErrInvalidRating:        ErrStatusClient,
	ErrInvalidContactStatus: ErrStatusClient,
	ErrRecaptchaFailed:      ErrStatusClient,
	ErrRecaptchaUnavailable: ErrStatusBadGateway,
	ErrStoreUnavailable:     ErrStatusUnavailable,
}

func lookup(err error) (error, int) {
	if errStatusCode, ok := errorMap[err]; ok {
		return err, errStatusCode
	}

	for sentinel, errStatusCode := range errorMap {
		if errors.Is(err, sentinel) {
			return sentinel, errStatusCode
		}
	}

	return ErrInternalServer, errorMap[ErrInternalServer]
}

// GetErrorStatusCode maps err, or the sentinel it wraps, to an HTTP status.
func GetErrorStatusCode(err error) int {
	_, errStatusCode := lookup(err)
	return errStatusCode
}

// GetErrorMessage returns the client-facing message for err. Wrapping context
// and unmapped driver errors never leak into responses.
func GetErrorMessage(err error) string {
	sentinel, _ := lookup(err)
	return sentinel.Error()
}
