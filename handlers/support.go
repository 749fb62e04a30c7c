package handlers

import (
	"net/http"

	"arakucamp/utils"

	"github.com/gin-gonic/gin"
)

// SubmitSupportRequest files a guest inquiry against an existing booking.
func SubmitSupportRequest(c *gin.Context) {
	var input struct {
		BookingID     string `json:"bookingId"`
		Subject       string `json:"subject"`
		Message       string `json:"message"`
		CustomerEmail string `json:"customerEmail"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	ticket, err := SupportService.SubmitTicket(input.BookingID, input.Subject, input.Message, input.CustomerEmail)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Could not submit request", err.Error())
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "submitted", "ticketId": ticket.ID})
}
