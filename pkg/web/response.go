// Package web defines common components for a web application.
package web

import (
	"errors"

	"github.com/go-petr/pet-transfer/internal/domain"
)

// Response holds the common response type for all APIs.
type Response struct {
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// Error wraps a given err into the common response.
func Error(err error) Response {
	return Response{Error: GetErrorMsg(err)}
}

// GetErrorMsg returns the message shown to the user for err. Errors carrying
// a user facing message are reduced to it.
func GetErrorMsg(err error) string {
	var me *domain.MessageError
	if errors.As(err, &me) {
		return me.Message
	}

	return err.Error()
}
