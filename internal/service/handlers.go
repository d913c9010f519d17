package service

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"circuit-planner/internal/engine"
	"circuit-planner/internal/extract"
	"circuit-planner/internal/model"
	"circuit-planner/internal/policy"
	"circuit-planner/pkg/geometry"
)

// computeRequest is the common request body: the raw shape list plus the
// external inputs the engine refuses to default silently (the scale) and
// the ones it will (policy, tables, route lengths).
type computeRequest struct {
	Shapes         []extract.Shape `json:"shapes"`
	PixelsPerMeter float64         `json:"pixels_per_meter"`
	Layers         []model.Layer   `json:"layers,omitempty"`
	RouteLengths   map[int]float64 `json:"route_lengths,omitempty"`
	Policy         *policy.Policy  `json:"policy,omitempty"`
	Tables         *policy.Tables  `json:"tables,omitempty"`
}

// run parses the request, executes the engine, and reports errors in the
// response; ok is false when a response has already been written.
func (s *Server) run(c *gin.Context) (engine.Result, bool) {
	var req computeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
		return engine.Result{}, false
	}

	scale, err := geometry.NewScale(req.PixelsPerMeter)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return engine.Result{}, false
	}

	result, err := engine.Compute(req.Shapes, engine.Options{
		Registry:     s.registry,
		Policy:       req.Policy,
		Tables:       req.Tables,
		Scale:        scale,
		Layers:       req.Layers,
		RouteLengths: req.RouteLengths,
	})
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return engine.Result{}, false
	}

	observeCompute(c.FullPath(), len(req.Shapes), len(result.Findings))
	s.log.Debug("computed",
		zap.String("request_id", c.GetString("request_id")),
		zap.Int("shapes", len(req.Shapes)),
		zap.Int("circuits", len(result.Circuits)),
		zap.Int("findings", len(result.Findings)),
	)
	return result, true
}

// compute returns the full engine result.
func (s *Server) compute(c *gin.Context) {
	result, ok := s.run(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, result)
}

// validate returns only the compliance findings.
func (s *Server) validate(c *gin.Context) {
	result, ok := s.run(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"findings": result.Findings,
		"errors":   model.CountBySeverity(result.Findings, model.SeverityError),
		"warnings": model.CountBySeverity(result.Findings, model.SeverityWarning),
	})
}

// schedules returns the panel and cable schedules.
func (s *Server) schedules(c *gin.Context) {
	result, ok := s.run(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"panel_schedule": result.Panel,
		"cable_schedule": result.Cable,
	})
}

// schematic returns the single-line scene graph.
func (s *Server) schematic(c *gin.Context) {
	result, ok := s.run(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, result.Schematic)
}
