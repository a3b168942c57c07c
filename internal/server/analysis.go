package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dhrupad777/paperbrain/internal/invoice/domain"
)

func (s *Server) UploadFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		verr := &domain.ValidationErrors{}
		verr.Add("file", "required", "no file provided")
		AbortWithError(c, verr)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		AbortWithError(c, err)
		return
	}
	defer file.Close()

	result, err := s.analysisSvc.Upload(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		s.logger.Error("upload failed", zap.String("filename", fileHeader.Filename), zap.Error(err))
		AbortWithError(c, err)
		return
	}
	s.metrics.AnalyzerUploads.Inc()

	c.JSON(http.StatusOK, result)
}

type analyzeRequest struct {
	FileID string `json:"fileId" binding:"required"`
}

func (s *Server) AnalyzeFile(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		verr := &domain.ValidationErrors{}
		verr.Add("fileId", "required", "fileId is required")
		AbortWithError(c, verr)
		return
	}

	result, err := s.analysisSvc.Analyze(c.Request.Context(), req.FileID)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) UploadHistory(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	page, err := s.analysisSvc.History(c.Request.Context(), limit, offset)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}
