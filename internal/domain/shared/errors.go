package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Is matches domain errors by code so wrapped copies still compare equal
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	return ok && t.Code == e.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Engine errors
var (
	ErrUnknownSection  = NewDomainError("UNKNOWN_SECTION", "Section has no material extraction rule")
	ErrUnknownResetTag = NewDomainError("UNKNOWN_RESET_TAG", "Section tag does not support Mark N/A")
	ErrNoMaterials     = NewDomainError("NO_MATERIALS", "No material items to order")
)
