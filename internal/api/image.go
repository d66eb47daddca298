package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AddImage accepts a multipart upload in the "image" field and returns the
// stored file's public URL.
func (h *RecipeHandler) AddImage(c *gin.Context) {
	header, err := c.FormFile("image")
	if err != nil {
		badRequest(c, h.log, err, "Image file is required")
		return
	}

	file, err := header.Open()
	if err != nil {
		respondError(c, h.log, err, "")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(c, h.log, err, "")
		return
	}

	url, err := h.recipes.AddImage(c.Request.Context(), data, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		respondError(c, h.log, err, "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Success!", "url": url})
}
