// Package errors carries the console's error taxonomy across layers. An
// application method maps whatever went wrong onto a constant.ErrorType; the
// transport layer reads the message, code and HTTP status back off it.
package errors

import "github.com/shreyasbagave/warehouse/constant"

type CustomError struct {
	errType constant.ErrorType
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

// SetCustomError wraps an error type. CustomError is a comparable value, so
// two errors of the same type compare equal.
func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}
