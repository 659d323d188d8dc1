// Package server exposes the extraction pipeline over HTTP: a drawing PDF
// goes in, a job id with counts and an xlsx download come out.
package server

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ventspec/internal"
	"ventspec/internal/config"
	"ventspec/internal/pipeline"
	"ventspec/internal/source"
	"ventspec/internal/storage"
)

type Server struct {
	cfg     config.Config
	db      *storage.DB
	reader  *source.Reader
	service *pipeline.Service
	log     *slog.Logger
	router  *gin.Engine
}

func New(cfg config.Config, db *storage.DB, reader *source.Reader, service *pipeline.Service, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := &Server{
		cfg:     cfg,
		db:      db,
		reader:  reader,
		service: service,
		log:     log,
		router:  gin.Default(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)
	s.router.POST("/extract", s.handleExtract)
	s.router.GET("/jobs", s.handleListJobs)
	s.router.GET("/jobs/:id", s.handleGetJob)
	s.router.Static("/results", s.cfg.ResultsDir)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type extractResponse struct {
	JobID     string          `json:"job_id"`
	ExcelPath string          `json:"excel_path"`
	Counts    internal.Counts `json:"counts"`
	Notes     []string        `json:"notes"`
}

func (s *Server) handleExtract(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file upload"})
		return
	}
	if !looksLikePDF(fileHeader.Filename, fileHeader.Header.Get("Content-Type")) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "expected a PDF file"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable upload"})
		return
	}
	defer file.Close()
	content, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable upload"})
		return
	}

	jobID := uuid.New().String()
	jobID = strings.ReplaceAll(jobID, "-", "")

	if err := s.saveUpload(jobID, content); err != nil {
		s.log.Error("save upload failed", "job", jobID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store upload"})
		return
	}
	if err := s.db.InsertJob(jobID, fileHeader.Filename); err != nil {
		s.log.Error("insert job failed", "job", jobID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record job"})
		return
	}

	extraction, err := s.reader.Read(content)
	if err != nil {
		_ = s.db.MarkJobFailed(jobID, err.Error())
		if errors.Is(err, source.ErrBadDocument) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or corrupt PDF"})
			return
		}
		s.log.Error("document read failed", "job", jobID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to extract text"})
		return
	}

	result := s.service.Process(extraction)

	resultPath := filepath.Join(s.cfg.ResultsDir, jobID, "spec.xlsx")
	if err := pipeline.ExportRowsToXLSX(result.Rows, resultPath); err != nil {
		_ = s.db.MarkJobFailed(jobID, err.Error())
		s.log.Error("xlsx export failed", "job", jobID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to write result"})
		return
	}

	if err := s.db.MarkJobProcessed(jobID, result.Summary.Counts, result.Summary.Notes, resultPath); err != nil {
		s.log.Error("job update failed", "job", jobID, "error", err)
	}

	c.JSON(http.StatusOK, extractResponse{
		JobID:     jobID,
		ExcelPath: "/results/" + jobID + "/spec.xlsx",
		Counts:    result.Summary.Counts,
		Notes:     result.Summary.Notes,
	})
}

func (s *Server) handleListJobs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	jobs, err := s.db.ListJobs(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list jobs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

func (s *Server) handleGetJob(c *gin.Context) {
	job, err := s.db.GetJob(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
		return
	}
	c.JSON(http.StatusOK, job)
}

func (s *Server) saveUpload(jobID string, content []byte) error {
	dir := filepath.Join(s.cfg.UploadsDir, jobID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "input.pdf"), content, 0o644)
}

func looksLikePDF(filename, contentType string) bool {
	if strings.HasSuffix(strings.ToLower(filename), ".pdf") {
		return true
	}
	// Multipart parts default to application/octet-stream, so the content
	// type alone only counts when it is explicitly a PDF type.
	return contentType == "application/pdf" || contentType == "application/x-pdf"
}
