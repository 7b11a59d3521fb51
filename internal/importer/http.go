package importer

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	pipeline *Pipeline
}

// Register mounts the import endpoint on the projects route group.
func Register(rg *gin.RouterGroup, pipeline *Pipeline) {
	h := &Handler{pipeline: pipeline}

	rg.POST("/import", h.importFile)
}

func (h *Handler) importFile(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if file.Size > MaxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file exceeds the 5MB limit"})
		return
	}

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxUploadSize+1))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	sum, err := h.pipeline.Run(c.Request.Context(), file.Filename, data)
	if err != nil {
		var parseErr *ParseError
		if errors.Is(err, ErrUnsupportedFormat) || errors.Is(err, ErrNoRecords) || errors.As(err, &parseErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    fmt.Sprintf("Import completed: %d successful, %d failed", sum.Successful, sum.Failed),
		"total":      sum.Total,
		"successful": sum.Successful,
		"failed":     sum.Failed,
		"details": gin.H{
			"successful": sum.Imported,
			"failed":     sum.Rejected,
		},
	})
}
