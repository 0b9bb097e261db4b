// Package api serves puzzles over HTTP.
package api

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-ricrob/hyperrobot/internal/batch"
	"github.com/go-ricrob/hyperrobot/internal/config"
	"github.com/go-ricrob/hyperrobot/internal/notation"
	"github.com/go-ricrob/hyperrobot/internal/puzzle"
	"github.com/go-ricrob/hyperrobot/internal/solver"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const maxTries = 64

// Server holds the handler dependencies.
type Server struct {
	cfg  *config.Config
	log  *logrus.Logger
	opts solver.Options
	seed func() uint64
}

// NewServer returns a server using cfg for defaults.
func NewServer(cfg *config.Config, log *logrus.Logger) *Server {
	return &Server{cfg: cfg, log: log, seed: rand.Uint64}
}

// checkSize rejects boards above the configured cell limit.
func (s *Server) checkSize(p puzzle.Params) error {
	maxCells := s.cfg.MaxCells
	if maxCells <= 0 {
		maxCells = config.DefaultMaxCells
	}
	if p.Height*p.Width > maxCells {
		return fmt.Errorf("%w: size %dx%d exceeds %d cells", puzzle.ErrInvalidParams, p.Height, p.Width, maxCells)
	}
	return nil
}

// Router returns the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.logging())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/presets", s.presets)
	r.GET("/puzzles", s.newPuzzle)
	r.POST("/puzzles/verify", s.verify)
	return r
}

func (s *Server) logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()
		c.Header("X-Request-Id", requestID)

		c.Next()

		s.log.WithFields(logrus.Fields{
			"requestId":     requestID,
			"method":        c.Request.Method,
			"uri":           c.Request.URL.RequestURI(),
			"statusCode":    c.Writer.Status(),
			"remoteAddr":    c.ClientIP(),
			"duration (ms)": time.Since(start).Milliseconds(),
		}).Info("handled request")
	}
}

func (s *Server) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, puzzle.ErrInvalidParams),
		errors.Is(err, puzzle.ErrUnknownPreset),
		errors.Is(err, notation.ErrSyntax):
		status = http.StatusBadRequest
	case errors.Is(err, batch.ErrNoSeeds):
		status = http.StatusBadRequest
	default:
		s.log.WithError(err).Error("request failed")
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

func (s *Server) presets(c *gin.Context) {
	out := gin.H{}
	for _, name := range puzzle.PresetNames() {
		p, _ := puzzle.Preset(name)
		out[name] = p
	}
	c.JSON(http.StatusOK, out)
}

type puzzleQuery struct {
	Preset string  `form:"preset"`
	Height *int    `form:"h" binding:"omitempty,min=1,max=127"`
	Width  *int    `form:"w" binding:"omitempty,min=1,max=127"`
	Walls  *int    `form:"walls" binding:"omitempty,min=0"`
	Depth  *int    `form:"depth"`
	Seed   *uint64 `form:"seed"`
	Tries  int     `form:"tries" binding:"omitempty,min=1"`
}

// params resolves the preset and its overrides.
func (s *Server) params(q puzzleQuery) (puzzle.Params, error) {
	name := q.Preset
	if name == "" {
		name = s.cfg.Preset
	}
	p, err := puzzle.Preset(name)
	if err != nil {
		return p, err
	}
	p.Depth = s.cfg.Depth
	if q.Height != nil {
		p.Height = *q.Height
	}
	if q.Width != nil {
		p.Width = *q.Width
	}
	if q.Walls != nil {
		p.Walls = *q.Walls
	}
	if q.Depth != nil {
		p.Depth = *q.Depth
	}
	p.Depth = puzzle.ClampDepth(p.Depth)
	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, s.checkSize(p)
}

func (s *Server) newPuzzle(c *gin.Context) {
	var q puzzleQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := s.params(q)
	if err != nil {
		s.fail(c, err)
		return
	}

	seed := s.seed()
	if q.Seed != nil {
		seed = *q.Seed
	}
	tries := s.cfg.Tries
	if q.Tries > 0 {
		tries = q.Tries
	}
	tries = min(tries, maxTries)

	pz, err := batch.Deepest(c.Request.Context(), p, batch.Seeds(seed, tries), s.cfg.Workers, s.opts)
	if err != nil {
		s.fail(c, err)
		return
	}
	s.log.WithFields(logrus.Fields{
		"id":    pz.ID,
		"seed":  pz.Seed,
		"moves": len(pz.Result.Moves),
	}).Info("puzzle generated")
	c.JSON(http.StatusOK, pz.View())
}

type verifyRequest struct {
	Params  puzzle.Params `json:"params"`
	Seed    uint64        `json:"seed"`
	Command string        `json:"command" binding:"required"`
}

type verifyResponse struct {
	puzzle.Verdict
	Solution string `json:"solution,omitempty"` // the answer in command notation, once cleared
}

func (s *Server) verify(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cmd, err := notation.Parse(req.Command)
	if err != nil {
		s.fail(c, err)
		return
	}
	if req.Params.Depth > puzzle.MaxDepth {
		req.Params.Depth = puzzle.MaxDepth
	}
	if err := s.checkSize(req.Params); err != nil {
		s.fail(c, err)
		return
	}
	pz, err := puzzle.New(req.Params, req.Seed, s.opts)
	if err != nil {
		s.fail(c, err)
		return
	}

	resp := verifyResponse{Verdict: pz.Verify(cmd)}
	if resp.Cleared {
		resp.Solution = pz.Answer()
	}
	c.JSON(http.StatusOK, resp)
}
