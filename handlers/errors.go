package handlers

import (
	"errors"
	"net/http"

	"arakucamp/services/booking"
	"arakucamp/utils"

	"github.com/gin-gonic/gin"
)

// writeServiceError maps service errors to HTTP responses. Step validation
// failures keep their user-facing title and message; a missing session sends
// the client back to the dates step.
func writeServiceError(c *gin.Context, err error) {
	var step *booking.StepError
	if errors.As(err, &step) {
		utils.JSONError(c, http.StatusBadRequest, step.Title, step.Message)
		return
	}
	if errors.Is(err, booking.ErrNoSession) {
		utils.JSONError(c, http.StatusNotFound, "No booking in progress", "Start a new booking by choosing your dates.")
		return
	}
	if errors.Is(err, booking.ErrAlreadyPolling) {
		utils.JSONError(c, http.StatusConflict, "Verification in progress", "A payment check for this order is already running.")
		return
	}
	utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", err.Error())
}
