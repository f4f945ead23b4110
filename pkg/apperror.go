package pkg

// AppError is the application-level error carried from the use cases up to
// the HTTP layer. Code is a stable machine-readable identifier, Message the
// human-readable text, and HTTPStatus the status the handler should answer
// with.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Err        error  `json:"-"`
	HTTPStatus int    `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewDomainError wraps an underlying error with a stable code and the HTTP
// status it maps to.
func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		Err:        err,
		HTTPStatus: httpStatus,
	}
}

// NewDomainErrorSimple builds an AppError with no wrapped cause.
func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return NewDomainError(code, message, nil, httpStatus)
}

// HTTPError is the JSON error body returned to clients. The wrapped cause is
// deliberately omitted so internal details never leak over the wire.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message}
}
