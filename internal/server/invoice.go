package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dhrupad777/paperbrain/internal/invoice/domain"
	"github.com/dhrupad777/paperbrain/internal/invoice/engine"
	"github.com/dhrupad777/paperbrain/internal/providers/pdf"
)

type documentResponse struct {
	Document     domain.InvoiceDocument `json:"document"`
	Capabilities capabilities           `json:"capabilities"`
}

type capabilities struct {
	CloudSave bool `json:"cloud_save"`
}

func (s *Server) GetInvoice(c *gin.Context) {
	c.JSON(http.StatusOK, documentResponse{
		Document:     s.session.Document(),
		Capabilities: capabilities{CloudSave: s.cfg.CloudSaveEnabled},
	})
}

type fieldChangeRequest struct {
	Path  string `json:"path" binding:"required"`
	Value any    `json:"value"`
}

func (s *Server) UpdateField(c *gin.Context) {
	var req fieldChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		verr := &domain.ValidationErrors{}
		verr.Add("path", "required", "field path is required")
		AbortWithError(c, verr)
		return
	}

	doc, err := s.session.OnFieldChange(c.Request.Context(), req.Path, req.Value)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if engine.ShouldRecalculate(req.Path) {
		s.metrics.Recalculations.Inc()
	}
	s.metrics.DraftSaves.Inc()

	c.JSON(http.StatusOK, gin.H{"document": doc})
}

func (s *Server) MintInvoiceNumber(c *gin.Context) {
	doc, err := s.session.MintInvoiceNumber(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"document": doc})
}

func (s *Server) ResetInvoice(c *gin.Context) {
	doc := s.session.Reset(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"document": doc})
}

func (s *Server) AddItem(c *gin.Context) {
	doc := s.session.AddItem(c.Request.Context())
	s.metrics.Recalculations.Inc()
	c.JSON(http.StatusOK, gin.H{"document": doc})
}

func (s *Server) RemoveItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		AbortWithError(c, domain.ErrIndexOutOfRange)
		return
	}
	doc, err := s.session.RemoveItem(c.Request.Context(), index)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	s.metrics.Recalculations.Inc()
	c.JSON(http.StatusOK, gin.H{"document": doc})
}

func (s *Server) AddTaxRow(c *gin.Context) {
	doc := s.session.AddTaxRow(c.Request.Context())
	s.metrics.Recalculations.Inc()
	c.JSON(http.StatusOK, gin.H{"document": doc})
}

func (s *Server) RemoveTaxRow(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		AbortWithError(c, domain.ErrIndexOutOfRange)
		return
	}
	doc, err := s.session.RemoveTaxRow(c.Request.Context(), index)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	s.metrics.Recalculations.Inc()
	c.JSON(http.StatusOK, gin.H{"document": doc})
}

func (s *Server) PreviewInvoice(c *gin.Context) {
	html, err := s.renderer.RenderHTML(s.session.Document())
	if err != nil {
		s.logger.Error("preview render failed", zap.Error(err))
		AbortWithError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// ExportInvoice snapshots the recalculated document into a PDF. A
// document that fails validation blocks the export with field errors.
func (s *Server) ExportInvoice(c *gin.Context) {
	s.session.WaitNarration()
	doc := s.session.Document()

	if err := doc.Validate(); err != nil {
		AbortWithError(c, err)
		return
	}

	reader, err := s.pdf.GenerateInvoice(c.Request.Context(), doc)
	if err != nil {
		s.logger.Error("pdf export failed", zap.Error(err))
		AbortWithError(c, err)
		return
	}
	s.metrics.Exports.Inc()

	c.Header("Content-Disposition", `attachment; filename="`+pdf.Filename(doc)+`"`)
	c.DataFromReader(http.StatusOK, -1, "application/pdf", reader, nil)
}
