package services

import "errors"

// ValidationError carries the user-facing message for a rejected input.
// Handlers render it as a 422 with the message verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidation reports whether err is a validation failure
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Common service errors
var (
	ErrNotFound = errors.New("registro não encontrado")

	ErrClientFieldsRequired   = &ValidationError{Message: "Nome da Empresa, Contratante e E-mail são obrigatórios."}
	ErrContractNumberRequired = &ValidationError{Message: "O número do contrato é obrigatório."}
	ErrServiceTypeRequired    = &ValidationError{Message: "O tipo de serviço é obrigatório."}
)
