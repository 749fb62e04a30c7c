package handlers

import (
	"net/http"

	"arakucamp/models"

	"github.com/gin-gonic/gin"
)

// CreateBooking persists the draft as a PENDING booking and opens a checkout
// order for the advance. Requires a signed-in guest.
func CreateBooking(c *gin.Context) {
	var input struct {
		SessionID string `json:"sessionId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.SessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sessionId is required"})
		return
	}

	firebaseUID := c.GetString("firebaseUid")
	init, err := WizardService.InitiatePayment(c.Request.Context(), input.SessionID, firebaseUID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, init)
}

// VerifyPayment consumes the checkout widget's success callback.
func VerifyPayment(c *gin.Context) {
	var proof models.PaymentProof
	if err := c.ShouldBindJSON(&proof); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	state, err := WizardService.VerifyPayment(c.Request.Context(), proof)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// GetPaymentStatus reads the booking state for an order without waiting.
func GetPaymentStatus(c *gin.Context) {
	state, err := WizardService.PaymentState(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// PollPaymentStatus blocks until the order settles or the attempt budget runs
// out. Used when the checkout widget was dismissed before its callback fired.
func PollPaymentStatus(c *gin.Context) {
	var input struct {
		RazorpayOrderID string `json:"razorpayOrderId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.RazorpayOrderID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "razorpayOrderId is required"})
		return
	}

	state, err := WizardService.AwaitSettlement(c.Request.Context(), input.RazorpayOrderID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}
