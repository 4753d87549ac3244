package handlers

import (
	"encoding/base64"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/doctors-portal-api/internal/models"
)

// CreateDoctor stores a doctor from a multipart form with name, email and an image file.
func (h *Handler) CreateDoctor(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read image"})
		return
	}
	defer file.Close()

	picData, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read image"})
		return
	}

	encoded := base64.StdEncoding.EncodeToString(picData)
	image, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode image"})
		return
	}

	doctor := models.Doctor{
		Name:  c.PostForm("name"),
		Email: c.PostForm("email"),
		Image: image,
	}

	result, err := h.Doctors.Create(c.Request.Context(), &doctor)
	if err != nil {
		h.storeError(c, err, "Failed to create doctor")
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetDoctors(c *gin.Context) {
	doctors, err := h.Doctors.List(c.Request.Context())
	if err != nil {
		h.storeError(c, err, "Failed to retrieve doctors")
		return
	}
	if doctors == nil {
		doctors = make([]models.Doctor, 0)
	}

	c.JSON(http.StatusOK, doctors)
}
