// Package server exposes the grievance portal's REST API.
//
// The API is consumed by the web frontend and by officials' dashboards.
// All responses are JSON. Errors use the portal's error taxonomy: login
// failures return 401, missing complaints return 404 with a stable message,
// backend faults return 500.
package server

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"nivaran/internal/auth"
	"nivaran/internal/chat"
	"nivaran/internal/classify"
	"nivaran/internal/complaint"
	apperrors "nivaran/internal/errors"
	"nivaran/internal/health"
	"nivaran/internal/locale"
	"nivaran/internal/telegram"
	"nivaran/internal/view"
)

// Server wires the portal's services behind a gin router.
type Server struct {
	store     *complaint.Store
	auth      *auth.Service
	projector *view.Projector
	chat      *chat.Responder
	dict      *locale.Dictionary
	telegram  *telegram.Client
	monitor   *health.Monitor
	router    *gin.Engine
}

// New builds the server and registers all routes.
func New(store *complaint.Store, authSvc *auth.Service, projector *view.Projector, responder *chat.Responder, dict *locale.Dictionary, tg *telegram.Client, monitor *health.Monitor) *Server {
	s := &Server{
		store:     store,
		auth:      authSvc,
		projector: projector,
		chat:      responder,
		dict:      dict,
		telegram:  tg,
		monitor:   monitor,
		router:    gin.Default(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.GET("/health", s.handleHealth)

	api := s.router.Group("/api")
	api.POST("/login", s.handleLogin)
	api.POST("/complaint", s.handleSubmit)
	api.GET("/my-complaints/:user_id", s.handleMyComplaints)
	api.GET("/complaint/:id", s.handleComplaint)
	api.GET("/admin/stats", s.handleStats)
	api.POST("/translate", s.handleTranslate)
	api.POST("/chat", s.handleChat)
}

// Handler returns the HTTP handler for tests and custom servers.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the HTTP server on the given port.
func (s *Server) Run(port string) error {
	return s.router.Run(":" + port)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, s.monitor.GetStatus())
}

type loginRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.BindJSON(&req); err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	identity, created, err := s.auth.Login(req.Name, req.Email, req.Password)
	if err != nil {
		if apperrors.IsLoginFailed(err) {
			c.IndentedJSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		log.Printf("❌ Login failed for %s: %v", req.Email, err)
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": "login unavailable"})
		return
	}

	if created {
		log.Printf("✓ Registered new citizen account: %s", req.Email)
	}
	c.IndentedJSON(http.StatusOK, gin.H{
		"user_id": identity.UserID,
		"role":    identity.Role,
		"name":    identity.Name,
	})
}

type submitRequest struct {
	UserID      int64  `json:"user_id" binding:"required"`
	Description string `json:"description" binding:"required"`
	Pincode     string `json:"pincode"`
}

func (s *Server) handleSubmit(c *gin.Context) {
	var req submitRequest
	if err := c.BindJSON(&req); err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": "user_id and description are required"})
		return
	}

	sector := classify.DetectSector(req.Description)
	priority := classify.DetectPriority(req.Description, sector)

	rec := complaint.Record{
		UserID:      req.UserID,
		Description: req.Description,
		Sector:      sector,
		Priority:    priority,
		Status:      complaint.StatusSubmitted,
		Pincode:     req.Pincode,
		ClusterID:   classify.ClusterID(req.Pincode, sector),
		CreatedAt:   time.Now(),
	}

	id, err := s.store.Insert(rec)
	if err != nil {
		log.Printf("❌ Failed to store complaint: %v", err)
		s.monitor.RecordSubmit("error")
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": "could not save complaint"})
		return
	}
	rec.ID = id
	s.monitor.RecordSubmit("ok")
	log.Printf("📋 Complaint #%d filed: %s / %s", id, sector, priority)

	// High-priority complaints alert officials immediately. Delivery is
	// best-effort, a notification failure never fails the submission.
	if priority == complaint.PriorityHigh {
		go func(rec complaint.Record) {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := s.telegram.SendComplaintAlert(ctx, rec); err != nil {
				log.Printf("⚠️ Telegram alert for complaint #%d failed: %v", rec.ID, err)
			}
		}(rec)
	}

	c.IndentedJSON(http.StatusCreated, gin.H{
		"complaint_id": id,
		"sector":       sector,
		"priority":     priority,
	})
}

func (s *Server) handleMyComplaints(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	records, err := s.store.ByUser(userID)
	if err != nil {
		log.Printf("❌ Failed to list complaints for user %d: %v", userID, err)
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": "could not load complaints"})
		return
	}

	tag := localeTag(c)
	views := make([]view.View, 0, len(records))
	for _, rec := range records {
		views = append(views, s.projector.Project(rec, tag))
	}
	c.IndentedJSON(http.StatusOK, gin.H{"complaints": views})
}

func (s *Server) handleComplaint(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": "invalid complaint id"})
		return
	}

	rec, err := s.store.ByID(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.IndentedJSON(http.StatusNotFound, gin.H{"error": "Complaint not found"})
			return
		}
		log.Printf("❌ Failed to load complaint %d: %v", id, err)
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": "could not load complaint"})
		return
	}

	c.IndentedJSON(http.StatusOK, s.projector.Project(rec, localeTag(c)))
}

func (s *Server) handleStats(c *gin.Context) {
	stats, err := s.store.Stats()
	if err != nil {
		log.Printf("❌ Failed to compute stats: %v", err)
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": "could not compute stats"})
		return
	}
	c.IndentedJSON(http.StatusOK, stats)
}

type translateRequest struct {
	Text string `json:"text" binding:"required"`
	Lang string `json:"lang" binding:"required"`
}

func (s *Server) handleTranslate(c *gin.Context) {
	var req translateRequest
	if err := c.BindJSON(&req); err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": "text and lang are required"})
		return
	}

	translated := s.projector.TranslateDescription(c.Request.Context(), req.Text, req.Lang)
	c.IndentedJSON(http.StatusOK, gin.H{"translated": translated})
}

type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

func (s *Server) handleChat(c *gin.Context) {
	var req chatRequest
	if err := c.BindJSON(&req); err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"reply": s.chat.Respond(req.Message)})
}

// localeTag picks the UI locale for a request. Unknown tags fall back to
// the default locale inside the dictionary, so no validation happens here.
func localeTag(c *gin.Context) string {
	if tag := c.Query("lang"); tag != "" {
		return tag
	}
	return locale.DefaultTag
}
