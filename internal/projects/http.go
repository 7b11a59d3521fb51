package projects

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/buildtrack/construction-api/internal/profanity"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo   *Repo
	filter profanity.Filter
}

func Register(rg *gin.RouterGroup, repo *Repo, filter profanity.Filter) {
	h := &Handler{repo: repo, filter: filter}

	rg.POST("", h.create)
	rg.GET("", h.list)
	rg.GET("/stats", h.stats)
	rg.GET("/:id", h.get)
	rg.PUT("/:id", h.update)
	rg.DELETE("/:id", h.delete)
}

type projectReq struct {
	Name      string  `json:"name"`
	Budget    float64 `json:"budget"`
	Status    string  `json:"status"`
	Province  string  `json:"province"`
	City      string  `json:"city"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (req *projectReq) validate() []string {
	var errs []string
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, "name is required")
	}
	if req.Budget <= 0 {
		errs = append(errs, "budget must be greater than zero")
	}
	if !ValidStatus(req.Status) {
		errs = append(errs, "status must be one of: "+strings.Join(Statuses, ", "))
	}
	if !ValidProvince(req.Province) {
		errs = append(errs, "province must be a valid province")
	}
	if strings.TrimSpace(req.City) == "" {
		errs = append(errs, "city is required")
	}
	return errs
}

func (h *Handler) create(c *gin.Context) {
	var req projectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": strings.Join(errs, "; ")})
		return
	}

	p, err := h.repo.Create(c.Request.Context(), NewProject{
		Name:      h.filter.Clean(strings.TrimSpace(req.Name)),
		Budget:    req.Budget,
		Status:    req.Status,
		Province:  req.Province,
		City:      strings.TrimSpace(req.City),
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, p)
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	p, err := h.repo.Get(c.Request.Context(), id)
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

type updateReq struct {
	Name     string  `json:"name"`
	Budget   float64 `json:"budget"`
	Status   string  `json:"status"`
	Province string  `json:"province"`
}

func (h *Handler) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	var errs []string
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, "name is required")
	}
	if req.Budget <= 0 {
		errs = append(errs, "budget must be greater than zero")
	}
	if !ValidStatus(req.Status) {
		errs = append(errs, "status must be one of: "+strings.Join(Statuses, ", "))
	}
	if !ValidProvince(req.Province) {
		errs = append(errs, "province must be a valid province")
	}
	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": strings.Join(errs, "; ")})
		return
	}

	p, err := h.repo.Update(c.Request.Context(), id, UpdateProject{
		Name:     h.filter.Clean(strings.TrimSpace(req.Name)),
		Budget:   req.Budget,
		Status:   req.Status,
		Province: req.Province,
	})
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	deleted, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted"})
}

func (h *Handler) stats(c *gin.Context) {
	s, err := h.repo.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
