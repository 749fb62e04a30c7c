package handlers

import (
	"net/http"

	"arakucamp/utils"

	"github.com/gin-gonic/gin"
)

// GetUserBookings lists the signed-in guest's bookings, optionally filtered
// by status. Guests can only read their own history.
func GetUserBookings(c *gin.Context) {
	userID := c.Param("userId")
	if userID != c.GetString("firebaseUid") {
		utils.JSONError(c, http.StatusForbidden, "Forbidden", "You can only view your own bookings.")
		return
	}

	bookings, err := HistoryService.ListUserBookings(userID, c.Query("status"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
