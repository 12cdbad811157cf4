// Package server exposes the spelling pipeline over HTTP.
//
// The API serves ranked suggestions for single words, whole-text correction,
// and a mutable custom dictionary that extends the corpus vocabulary without
// retraining. Suggestion responses are cached in-process; any dictionary
// change flushes the cache so stale rankings never leak out.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/Kamal578/CSCI-6515-Project1/confusion"
	"github.com/Kamal578/CSCI-6515-Project1/internal/azcase"
	"github.com/Kamal578/CSCI-6515-Project1/spell"
	"github.com/Kamal578/CSCI-6515-Project1/typos"
	"github.com/Kamal578/CSCI-6515-Project1/vocab"
)

// Config tunes the HTTP layer. Zero fields select the defaults below.
type Config struct {
	TopK                 int           // default 5
	MaxVariantEdits      int           // default typos.DefaultMaxEdits
	MaxVariantCandidates int           // default typos.DefaultMaxCandidates
	CacheSize            int           // default 1024 suggestion entries
	Engine               spell.Options // passed through to the engine
	MaxCost              float64       // correction cost cap for text mode
	Logger               *slog.Logger
}

// Server wires the vocabulary, the confusion matrix, and the custom
// dictionary into HTTP handlers.
type Server struct {
	table   vocab.Table
	words   []string
	matrix  *confusion.Matrix
	checker *spell.Checker
	dict    Dictionary
	cache   *lru.Cache[string, []suggestion]
	cfg     Config
	log     *slog.Logger
}

type suggestion struct {
	Word  string  `json:"word"`
	Cost  float64 `json:"cost"`
	Edits int     `json:"variant_edits"`
}

// New builds a Server. dict may be nil, which disables the custom
// dictionary endpoints.
func New(table vocab.Table, m *confusion.Matrix, dict Dictionary, cfg Config) (*Server, error) {
	if cfg.TopK <= 0 {
		cfg.TopK = 5
	}
	if cfg.MaxVariantEdits <= 0 {
		cfg.MaxVariantEdits = typos.DefaultMaxEdits
	}
	if cfg.MaxVariantCandidates <= 0 {
		cfg.MaxVariantCandidates = typos.DefaultMaxCandidates
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = 1024
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	cache, err := lru.New[string, []suggestion](cfg.CacheSize)
	if err != nil {
		return nil, err
	}

	checker := spell.NewChecker(table, m, spell.CheckerOptions{
		Engine:  cfg.Engine,
		MaxCost: cfg.MaxCost,
	})

	return &Server{
		table:   table,
		words:   checker.Vocabulary(),
		matrix:  m,
		checker: checker,
		dict:    dict,
		cache:   cache,
		cfg:     cfg,
		log:     cfg.Logger,
	}, nil
}

// Router builds the gin engine with all routes attached.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", s.handleHealth)

	api := r.Group("/api/v1")
	api.POST("/suggest", s.handleSuggest)
	api.POST("/correct", s.handleCorrect)
	if s.dict != nil {
		api.GET("/dictionary", s.handleDictList)
		api.POST("/dictionary", s.handleDictAdd)
		api.DELETE("/dictionary/:word", s.handleDictRemove)
	}
	return r
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "vocab_size": len(s.words)})
}

type suggestRequest struct {
	Word string `json:"word" binding:"required"`
	K    int    `json:"k"`
}

type suggestResponse struct {
	Word        string       `json:"word"`
	Correct     bool         `json:"correct"`
	Suggestions []suggestion `json:"suggestions"`
	Cached      bool         `json:"cached"`
}

func (s *Server) handleSuggest(c *gin.Context) {
	var req suggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "word is required"})
		return
	}
	k := req.K
	if k <= 0 {
		k = s.cfg.TopK
	}

	lower := azcase.ToLower(req.Word)
	if s.isKnown(c.Request.Context(), lower) {
		c.JSON(http.StatusOK, suggestResponse{
			Word:        req.Word,
			Correct:     true,
			Suggestions: []suggestion{{Word: lower, Cost: 0}},
		})
		return
	}

	key := fmt.Sprintf("%s|%d", lower, k)
	if hit, ok := s.cache.Get(key); ok {
		c.JSON(http.StatusOK, suggestResponse{Word: req.Word, Suggestions: hit, Cached: true})
		return
	}

	out, err := s.suggest(c.Request.Context(), lower, k)
	if err != nil {
		s.log.Error("suggest failed", "word", lower, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "suggestion failed"})
		return
	}
	s.cache.Add(key, out)
	c.JSON(http.StatusOK, suggestResponse{Word: req.Word, Suggestions: out})
}

// suggest expands the query into its keyboard-variant readings, ranks each
// against the merged vocabulary, and keeps the cheapest entry per candidate.
// The final order is (cost, variant edits, word).
func (s *Server) suggest(ctx context.Context, lower string, k int) ([]suggestion, error) {
	words, err := s.candidateWords(ctx)
	if err != nil {
		return nil, err
	}

	variants := typos.Variants(lower, s.cfg.MaxVariantEdits, s.cfg.MaxVariantCandidates)
	ordered := make([]typos.Variant, 0, len(variants)+1)
	ordered = append(ordered, typos.Variant{Word: lower, Edits: 0})
	for _, v := range variants {
		if v.Word != lower {
			ordered = append(ordered, v)
		}
	}

	best := make(map[string]suggestion)
	for _, v := range ordered {
		ranked, err := spell.CorrectWith(v.Word, words, s.matrix, k, s.cfg.Engine)
		if err != nil {
			return nil, err
		}
		for _, cand := range ranked {
			cur, seen := best[cand.Word]
			if !seen || cand.Cost < cur.Cost || (cand.Cost == cur.Cost && v.Edits < cur.Edits) {
				best[cand.Word] = suggestion{Word: cand.Word, Cost: cand.Cost, Edits: v.Edits}
			}
		}
	}

	out := make([]suggestion, 0, len(best))
	for _, sg := range best {
		out = append(out, sg)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Cost != b.Cost {
			return a.Cost < b.Cost
		}
		if a.Edits != b.Edits {
			return a.Edits < b.Edits
		}
		return a.Word < b.Word
	})
	if len(out) > k {
		out = out[:k]
	}
	return out, nil
}

// candidateWords merges the corpus vocabulary with the custom dictionary.
func (s *Server) candidateWords(ctx context.Context) ([]string, error) {
	if s.dict == nil {
		return s.words, nil
	}
	custom, err := s.dict.All(ctx)
	if err != nil {
		return nil, err
	}
	if len(custom) == 0 {
		return s.words, nil
	}
	merged := make([]string, 0, len(s.words)+len(custom))
	merged = append(merged, s.words...)
	for _, w := range custom {
		lower := azcase.ToLower(w)
		if _, ok := s.table[lower]; !ok {
			merged = append(merged, lower)
		}
	}
	return merged, nil
}

func (s *Server) isKnown(ctx context.Context, lower string) bool {
	if _, ok := s.table[lower]; ok {
		return true
	}
	if s.dict == nil {
		return false
	}
	custom, err := s.dict.All(ctx)
	if err != nil {
		s.log.Warn("custom dictionary unavailable", "err", err)
		return false
	}
	for _, w := range custom {
		if azcase.ToLower(w) == lower {
			return true
		}
	}
	return false
}

type correctRequest struct {
	Text string `json:"text" binding:"required"`
}

func (s *Server) handleCorrect(c *gin.Context) {
	var req correctRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"text": s.checker.CorrectText(req.Text)})
}

type dictRequest struct {
	Word string `json:"word" binding:"required"`
}

func (s *Server) handleDictAdd(c *gin.Context) {
	var req dictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "word is required"})
		return
	}
	if err := s.dict.Add(c.Request.Context(), azcase.ToLower(req.Word)); err != nil {
		s.log.Error("dictionary add failed", "word", req.Word, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "dictionary unavailable"})
		return
	}
	s.cache.Purge()
	c.JSON(http.StatusCreated, gin.H{"status": "ok"})
}

func (s *Server) handleDictRemove(c *gin.Context) {
	word := c.Param("word")
	if word == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "word is required"})
		return
	}
	if err := s.dict.Remove(c.Request.Context(), azcase.ToLower(word)); err != nil {
		s.log.Error("dictionary remove failed", "word", word, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "dictionary unavailable"})
		return
	}
	s.cache.Purge()
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleDictList(c *gin.Context) {
	words, err := s.dict.All(c.Request.Context())
	if err != nil {
		s.log.Error("dictionary list failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "dictionary unavailable"})
		return
	}
	if words == nil {
		words = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"words": words})
}
