package utils

import "github.com/gofiber/fiber/v2"

// ErrorKind categorizes failures so callers and tests can branch on the
// category instead of matching message text.
type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1 // bad or missing input, no retry
	KindProvider                        // identity/store operation failed, message surfaced
	KindNotFound                        // record does not exist
	KindIntegrity                       // data anomaly: logged, no detail to client
)

// AppError carries a kind plus the user-facing message.
type AppError struct {
	Kind    ErrorKind
	Message string
}

func (e *AppError) Error() string { return e.Message }

func ValidationError(msg string) *AppError {
	return &AppError{Kind: KindValidation, Message: msg}
}

func ProviderError(msg string) *AppError {
	return &AppError{Kind: KindProvider, Message: msg}
}

func NotFoundError(msg string) *AppError {
	return &AppError{Kind: KindNotFound, Message: msg}
}

func IntegrityError(msg string) *AppError {
	return &AppError{Kind: KindIntegrity, Message: msg}
}

// StatusFor maps an error kind to an HTTP status. Integrity anomalies hide
// behind a plain 404 — the detail stays in the server log.
func StatusFor(err error) int {
	if ae, ok := err.(*AppError); ok {
		switch ae.Kind {
		case KindValidation:
			return fiber.StatusUnprocessableEntity
		case KindNotFound, KindIntegrity:
			return fiber.StatusNotFound
		case KindProvider:
			return fiber.StatusBadGateway
		}
	}
	return fiber.StatusInternalServerError
}
