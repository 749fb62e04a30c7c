package handlers

import (
	"net/http"

	"arakucamp/models"

	"github.com/gin-gonic/gin"
)

// CheckAvailability serves the public tent map for a stay. checkOut defaults
// to the night after checkIn when omitted.
func CheckAvailability(c *gin.Context) {
	checkIn := c.Param("checkIn")
	checkOut := c.Query("checkOut")

	snapshot, err := WizardService.CheckAvailability(c.Request.Context(), checkIn, checkOut)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// StartBookingSession opens a wizard session for the requested stay.
func StartBookingSession(c *gin.Context) {
	var input struct {
		CheckIn  string `json:"checkIn"`
		CheckOut string `json:"checkOut"`
		Guests   int    `json:"guests"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	draft, err := WizardService.StartSession(c.Request.Context(), input.CheckIn, input.CheckOut, input.Guests)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// GetBookingSession returns the current draft for a session.
func GetBookingSession(c *gin.Context) {
	draft, err := WizardService.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// CancelBookingSession abandons the draft.
func CancelBookingSession(c *gin.Context) {
	if err := WizardService.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// SelectTents replaces the session's tent selection.
func SelectTents(c *gin.Context) {
	var input struct {
		Tents []string `json:"tents"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	draft, err := WizardService.SelectTents(c.Request.Context(), c.Param("sessionID"), input.Tents)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// ToggleTent flips one tent in or out of the selection.
func ToggleTent(c *gin.Context) {
	var input struct {
		TentNumber string `json:"tentNumber"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.TentNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tentNumber is required"})
		return
	}

	draft, err := WizardService.ToggleTent(c.Request.Context(), c.Param("sessionID"), input.TentNumber)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// SubmitDetails stores the guest's contact details on the draft.
func SubmitDetails(c *gin.Context) {
	var input models.CustomerDetails
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	draft, err := WizardService.SubmitDetails(c.Request.Context(), c.Param("sessionID"), input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// GetConfirmation returns the settled booking for a session, if any.
func GetConfirmation(c *gin.Context) {
	record, err := WizardService.Confirmation(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// ClearConfirmation wipes the session so the guest can book again.
func ClearConfirmation(c *gin.Context) {
	if err := WizardService.ClearConfirmation(c.Request.Context(), c.Param("sessionID")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}
