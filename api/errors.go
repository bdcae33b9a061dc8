package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"okinoko_treasury/contract"
)

// statusFor maps an org error to an HTTP status by class.
func statusFor(err error) int {
	if errors.Is(err, contract.ErrUnknownInstance) || errors.Is(err, contract.ErrProposalNotFound) {
		return http.StatusNotFound
	}
	switch contract.GetClass(err) {
	case contract.ClassAuthorization:
		return http.StatusForbidden
	case contract.ClassState, contract.ClassQuorum:
		return http.StatusConflict
	case contract.ClassValidation:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeError(c *gin.Context, err error) {
	body := gin.H{"error": err.Error()}
	if code := contract.GetCode(err); code != "" {
		body["code"] = string(code)
		body["class"] = string(contract.GetClass(err))
	}
	var e *contract.Error
	if errors.As(err, &e) && len(e.Details) > 0 {
		body["details"] = e.Details
	}
	c.JSON(statusFor(err), body)
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
