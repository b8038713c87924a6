package web

import (
	_ "embed"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"moving-quote-agent/internal/application/port/input"
)

//go:embed static/index.html
var chatPageHTML []byte

type quoteRequest struct {
	Text string `json:"text" binding:"required"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) chatPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", chatPageHTML)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) requestQuotes(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "text is required"})
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "text is required"})
		return
	}

	result, err := s.quotes.RequestQuotes(c.Request.Context(), req.Text)
	if err != nil {
		s.logger.Error("Quote request failed", "error", err)
		c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// renderReport turns a previously returned quote result back into a PDF.
// The client posts the result it already holds so no server-side session
// state is needed.
func (s *Server) renderReport(c *gin.Context) {
	var result input.QuoteResult
	if err := c.ShouldBindJSON(&result); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid quote result payload"})
		return
	}

	pdf, err := s.renderer.Render(result.Profile, result.Comparison, result.Analysis)
	if err != nil {
		s.logger.Error("Report rendering failed", "error", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "report rendering failed"})
		return
	}

	filename := fmt.Sprintf("moving_quotes_%s.pdf", time.Now().Format("20060102"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
