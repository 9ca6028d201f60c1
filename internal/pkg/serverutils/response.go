// FILE: internal/pkg/serverutils/response.go
package serverutils

import "ai-assistant-admin-be/internal/pkg/validation"

// BaseResponse is the envelope every endpoint returns.
type BaseResponse[T any] struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Data    T                 `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func SuccessResponse[T any](message string, data T) BaseResponse[T] {
	return BaseResponse[T]{
		Code:    200,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(code int, message string) BaseResponse[any] {
	return BaseResponse[any]{
		Code:    code,
		Message: message,
	}
}

// ValidationErrorResponse flattens a ValidationError into the envelope:
// per-field messages in Errors, the group message (if any) under the
// "responseLength" key so clients can render it next to the slider group.
func ValidationErrorResponse(ve *validation.ValidationError) BaseResponse[any] {
	errs := make(map[string]string, len(ve.Fields)+1)
	for k, v := range ve.Fields {
		errs[k] = v
	}
	if ve.Group != "" {
		errs["responseLength"] = ve.Group
	}
	return BaseResponse[any]{
		Code:    400,
		Message: "Validation failed",
		Errors:  errs,
	}
}
