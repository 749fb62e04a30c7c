package handlers

import (
	"net/http"

	"arakucamp/utils"

	"github.com/gin-gonic/gin"
)

// GetGallery returns the marketing gallery, newest first.
func GetGallery(c *gin.Context) {
	images, err := ContentService.ListGallery()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"images": images})
}

// UploadGalleryImage accepts a multipart image upload from the staff
// dashboard and stores it in Cloudinary.
func UploadGalleryImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Could not read upload", err.Error())
		return
	}
	defer file.Close()

	image, err := ContentService.UploadGalleryImage(c.Request.Context(), file, c.PostForm("caption"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, image)
}

// GetTestimonials returns guest quotes for the landing page.
func GetTestimonials(c *gin.Context) {
	testimonials, err := ContentService.ListTestimonials()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"testimonials": testimonials})
}

// AddTestimonial records a new guest quote from the staff dashboard.
func AddTestimonial(c *gin.Context) {
	var input struct {
		Author   string `json:"author"`
		Location string `json:"location"`
		Quote    string `json:"quote"`
		Rating   int    `json:"rating"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	testimonial, err := ContentService.AddTestimonial(input.Author, input.Location, input.Quote, input.Rating)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Could not add testimonial", err.Error())
		return
	}
	c.JSON(http.StatusOK, testimonial)
}

// GetRateCard exposes the public pricing block.
func GetRateCard(c *gin.Context) {
	c.JSON(http.StatusOK, ContentService.RateCard())
}
