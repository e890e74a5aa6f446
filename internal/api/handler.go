package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/alexanderramin/aiact/internal/domain"
	"github.com/alexanderramin/aiact/internal/report"
	"github.com/alexanderramin/aiact/internal/service"
	"github.com/gin-gonic/gin"
)

// ClassificationHandler serves the classify, download, questions and health endpoints.
type ClassificationHandler struct {
	classifier service.ClassificationService
	reports    service.ReportService
	validator  *requestValidator
	logger     *slog.Logger
	now        func() time.Time
}

// NewClassificationHandler creates a handler. minPurposeLen is the shortest
// accepted systemPurpose; zero means the default of 10.
func NewClassificationHandler(classifier service.ClassificationService, reports service.ReportService, logger *slog.Logger, minPurposeLen int) *ClassificationHandler {
	if minPurposeLen <= 0 {
		minPurposeLen = 10
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ClassificationHandler{
		classifier: classifier,
		reports:    reports,
		validator:  newRequestValidator(minPurposeLen),
		logger:     logger,
		now:        time.Now,
	}
}

// RegisterRoutes registers the API routes on r.
func (h *ClassificationHandler) RegisterRoutes(r gin.IRouter) {
	g := r.Group("/api")
	g.POST("/classify", h.HandleClassify)
	g.POST("/classify/download", h.HandleDownload)
	g.GET("/questions", h.HandleQuestions)
	g.GET("/health", h.HandleHealthCheck)
}

// HandleClassify classifies one AI system description.
func (h *ClassificationHandler) HandleClassify(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid JSON body: %v", err)})
		return
	}

	if err := h.validator.Check(req); err != nil {
		h.respondValidation(c, err)
		return
	}

	result := h.classifier.Classify(c.Request.Context(), req.Input())
	c.JSON(http.StatusOK, result)
}

// HandleDownload renders a previously produced result as a text report
// attachment.
func (h *ClassificationHandler) HandleDownload(c *gin.Context) {
	var result domain.ClassificationResult
	if err := c.ShouldBindJSON(&result); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid JSON body: %v", err)})
		return
	}
	if err := checkResult(&result); err != nil {
		h.respondValidation(c, err)
		return
	}

	data, err := h.reports.Render(c.Request.Context(), result)
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "report render failed",
			"request_id", RequestID(c), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render report"})
		return
	}

	fileName := report.SanitizeFilename(c.Query("fileName"), report.DefaultFilename)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, fileName))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", data)
}

// HandleQuestions lists the questionnaire in the order it is asked.
func (h *ClassificationHandler) HandleQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"questions": domain.AnswerSpecs})
}

// HandleHealthCheck provides a basic health check endpoint.
func (h *ClassificationHandler) HandleHealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": h.now().UTC().Format(time.RFC3339),
	})
}

func (h *ClassificationHandler) respondValidation(c *gin.Context, err error) {
	var fields FieldErrors
	if errors.As(err, &fields) {
		c.JSON(http.StatusBadRequest, fields)
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
