package utils

// CustomError carries the HTTP status and the message shown to the client.
// Err is the cause and only goes to the logs.
type CustomError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
	Err        error  `json:"-"`
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError without a cause
func NewCustomError(statusCode int, message string) *CustomError {
	return &CustomError{StatusCode: statusCode, Message: message}
}

// WrapError keeps cause behind a client-safe message
func WrapError(statusCode int, message string, cause error) *CustomError {
	return &CustomError{StatusCode: statusCode, Message: message, Err: cause}
}
