package models

// ErrorKind is the machine-readable failure classification carried on
// failure envelopes in addition to the legacy code/message pair.
type ErrorKind string

const (
	KindUnauthorized     ErrorKind = "UNAUTHORIZED"
	KindForbidden        ErrorKind = "FORBIDDEN"
	KindNotFound         ErrorKind = "NOT_FOUND"
	KindDuplicateDislike ErrorKind = "DUPLICATE_DISLIKE"
	KindValidation       ErrorKind = "VALIDATION_ERROR"
	KindInvalidToken     ErrorKind = "INVALID_TOKEN"
	KindPersistence      ErrorKind = "PERSISTENCE_ERROR"
)

// Code maps a failure kind to its envelope code. Unauthenticated requests get
// 403, matching the legacy resolvers.
func (k ErrorKind) Code() int {
	switch k {
	case KindUnauthorized, KindForbidden:
		return 403
	case KindNotFound:
		return 404
	case KindDuplicateDislike:
		return 409
	case KindInvalidToken:
		return 401
	default:
		return 400
	}
}

// DomainError is the tagged business-rule failure services return instead of
// letting storage errors or panics cross the handler boundary.
type DomainError struct {
	Kind    ErrorKind
	Message string
}

func (e *DomainError) Error() string { return e.Message }

func Unauthorized() *DomainError {
	return &DomainError{Kind: KindUnauthorized, Message: "Unauthorized"}
}

func Forbidden(message string) *DomainError {
	return &DomainError{Kind: KindForbidden, Message: message}
}

func NotFound(message string) *DomainError {
	return &DomainError{Kind: KindNotFound, Message: message}
}

func DuplicateDislike(message string) *DomainError {
	return &DomainError{Kind: KindDuplicateDislike, Message: message}
}

func Validation(message string) *DomainError {
	return &DomainError{Kind: KindValidation, Message: message}
}

func InvalidToken(message string) *DomainError {
	return &DomainError{Kind: KindInvalidToken, Message: message}
}

func Persistence(message string) *DomainError {
	return &DomainError{Kind: KindPersistence, Message: message}
}
