package custos

import "fmt"

type CustosError struct {
	Message string
}

func (errorValue CustosError) Error() string {
	return errorValue.Message
}

// ValidationError reports a caller-input fault detected before any network
// interaction. It is never retried.
type ValidationError struct {
	CustosError
	Field string
}

func NewValidationError(field string, format string, args ...any) error {
	return ValidationError{
		CustosError: CustosError{Message: fmt.Sprintf(format, args...)},
		Field:       field,
	}
}

// SubmissionError reports that the node rejected the signed transaction or
// that the transaction reverted on-chain. A retry must re-fetch the sequence
// number; the SDK never retries on the caller's behalf.
type SubmissionError struct {
	CustosError
	TransactionHash string
}

func NewSubmissionError(transactionHash string, format string, args ...any) error {
	return SubmissionError{
		CustosError:     CustosError{Message: fmt.Sprintf(format, args...)},
		TransactionHash: transactionHash,
	}
}

// ConfirmationTimeoutError reports that a broadcast transaction was not seen
// in a block within the confirmation bound. The outcome is unknown: the
// transaction may still be included later, so this is distinct from failure.
type ConfirmationTimeoutError struct {
	CustosError
	TransactionHash string
}

func NewConfirmationTimeoutError(transactionHash string, format string, args ...any) error {
	return ConfirmationTimeoutError{
		CustosError:     CustosError{Message: fmt.Sprintf(format, args...)},
		TransactionHash: transactionHash,
	}
}

// NetworkError reports a transport-level failure talking to the node.
type NetworkError struct {
	CustosError
	Endpoint  string
	Operation string
}

func NewNetworkError(endpoint string, operation string, cause error) error {
	return NetworkError{
		CustosError: CustosError{Message: fmt.Sprintf("%s against %s failed: %v", operation, endpoint, cause)},
		Endpoint:    endpoint,
		Operation:   operation,
	}
}
