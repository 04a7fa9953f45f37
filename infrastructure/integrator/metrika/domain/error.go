package metrikadomain

import "fmt"

// ErrorResponse é o corpo de erro da API da Metrika
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Errors  []struct {
		ErrorType string `json:"error_type"`
		Message   string `json:"message"`
	} `json:"errors"`
}

func (e *ErrorResponse) Error() string {
	if len(e.Errors) > 0 {
		return fmt.Sprintf("metrika: %d %s: %s", e.Code, e.Errors[0].ErrorType, e.Errors[0].Message)
	}
	return fmt.Sprintf("metrika: %d %s", e.Code, e.Message)
}

// IsUnauthorized indica token inválido ou expirado
func (e *ErrorResponse) IsUnauthorized() bool {
	return e.Code == 401 || e.Code == 403
}
