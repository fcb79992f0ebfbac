package server

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/bastiangx/dictserve/internal/logger"
	"github.com/bastiangx/dictserve/internal/utils"
	"github.com/bastiangx/dictserve/pkg/config"
	"github.com/bastiangx/dictserve/pkg/dictionary"
	"github.com/bastiangx/dictserve/pkg/translator"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles msgpack IPC for a translator
type Server struct {
	translator   translator.ITranslator
	config       *config.Config
	configPath   string
	decoder      *msgpack.Decoder
	encoder      *msgpack.Encoder
	logs         *log.Logger
	requestCount int
}

// NewServer creates a server on stdin/stdout
func NewServer(t translator.ITranslator, cfg *config.Config, configPath string) *Server {
	return NewServerWithIO(t, cfg, configPath, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server on any reader and writer
func NewServerWithIO(t translator.ITranslator, cfg *config.Config, configPath string, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Server{
		translator: t,
		config:     cfg,
		configPath: configPath,
		decoder:    msgpack.NewDecoder(r),
		encoder:    msgpack.NewEncoder(w),
		logs:       logger.New("server"),
	}
}

// Start sends the ready signal and serves requests until the input ends.
// A request that cannot be decoded is answered with a 400 and stops the loop,
// since the stream position is lost.
func (s *Server) Start() error {
	s.logs.Debug("Starting server")
	s.sendResponse(StatusResponse{Status: "ready"})

	for {
		var req Request
		if err := s.decoder.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				s.logs.Debug("Input closed, stopping server")
				return nil
			}
			s.sendError("", "Invalid msgpack request", 400)
			return fmt.Errorf("decode request: %w", err)
		}
		s.handleRequest(req)
	}
}

func (s *Server) handleRequest(req Request) {
	s.requestCount++
	if every := s.config.Server.ReloadEvery; every > 0 && s.requestCount%every == 0 {
		s.reloadConfig()
	}

	s.logs.Debug("Request", "id", req.ID, "op", req.Op)
	start := time.Now()

	switch req.Op {
	case OpAdd:
		s.handleAdd(req, start)
	case OpRemove:
		s.handleRemove(req, start)
	case OpContains:
		if !s.validWord(req, req.Word, true) {
			return
		}
		found := s.translator.Contains(req.Word)
		s.sendResponse(ContainsResponse{ID: req.ID, Found: found, TimeTaken: since(start)})
	case OpTranslate:
		if !s.validWord(req, req.Word, true) {
			return
		}
		s.sendList(req.ID, s.translator.Translations(req.Word), start)
	case OpSuggest:
		if !s.validWord(req, req.Word, true) {
			return
		}
		s.sendList(req.ID, s.translator.SuggestCorrections(req.Word), start)
	case OpSimilarity:
		if !s.validWord(req, req.A, false) || !s.validWord(req, req.B, false) {
			return
		}
		score := s.translator.Similarity(req.A, req.B)
		s.sendResponse(ScoreResponse{ID: req.ID, Score: score, TimeTaken: since(start)})
	case OpComplete:
		s.handleComplete(req, start)
	case OpPhrase:
		s.handlePhrase(req, start)
	case OpStats:
		s.sendResponse(StatsResponse{ID: req.ID, Stats: s.translator.Stats(), TimeTaken: since(start)})
	case OpHealth:
		s.sendResponse(StatusResponse{ID: req.ID, Status: "ok", TimeTaken: since(start)})
	default:
		s.sendError(req.ID, fmt.Sprintf("Unknown op: %q", req.Op), 400)
	}
}

func (s *Server) handleAdd(req Request, start time.Time) {
	if !s.validWord(req, req.Word, false) {
		return
	}
	if req.Translation == "" {
		s.sendError(req.ID, "Missing 't' parameter", 400)
		return
	}
	s.translator.AddWord(req.Word, req.Translation)
	s.sendResponse(StatusResponse{ID: req.ID, Status: "ok", TimeTaken: since(start)})
}

func (s *Server) handleRemove(req Request, start time.Time) {
	if !s.validWord(req, req.Word, false) {
		return
	}
	if err := s.translator.RemoveWord(req.Word); err != nil {
		s.sendError(req.ID, err.Error(), errorCode(err))
		return
	}
	s.sendResponse(StatusResponse{ID: req.ID, Status: "ok", TimeTaken: since(start)})
}

func (s *Server) handleComplete(req Request, start time.Time) {
	if !s.validWord(req, req.Text, true) {
		return
	}
	limit := req.Limit
	if maxResults := s.config.Server.MaxPrefixResults; limit < 1 || (maxResults > 0 && limit > maxResults) {
		limit = maxResults
	}
	s.sendList(req.ID, s.translator.Complete(req.Text, limit), start)
}

func (s *Server) handlePhrase(req Request, start time.Time) {
	if req.Text == "" {
		s.sendError(req.ID, "Missing 'p' parameter", 400)
		return
	}
	for _, word := range utils.SplitPhrase(req.Text, s.config.CLI.MaxPhraseWords) {
		if !s.validWord(req, word, false) {
			return
		}
	}
	tokens := s.translator.TranslatePhrase(req.Text, s.config.CLI.MaxPhraseWords)
	items := make([]PhraseItem, len(tokens))
	for i, tok := range tokens {
		items[i] = PhraseItem{
			Word:         tok.Word,
			Known:        tok.Known,
			Translations: tok.Translations,
			Corrections:  tok.Corrections,
		}
	}
	s.sendResponse(PhraseResponse{ID: req.ID, Words: items, Count: len(items), TimeTaken: since(start)})
}

// validWord checks presence and length, and content when filter is set and
// enabled in config. Failures are answered here.
func (s *Server) validWord(req Request, word string, filter bool) bool {
	if word == "" {
		s.sendError(req.ID, "Missing word parameter", 400)
		return false
	}
	if maxLen := s.config.Server.MaxWordLen; maxLen > 0 && len(word) > maxLen {
		s.sendError(req.ID, fmt.Sprintf("Word exceeds maximum length of %d characters", maxLen), 400)
		return false
	}
	if filter && s.config.Server.EnableFilter && !utils.IsValidInput(word) {
		s.sendError(req.ID, fmt.Sprintf("Invalid input: %q", word), 400)
		return false
	}
	return true
}

func (s *Server) sendList(id string, words []string, start time.Time) {
	if len(words) > math.MaxUint16 {
		words = words[:math.MaxUint16]
	}
	ranks := utils.CreateRankList(len(words))
	items := make([]ListItem, len(words))
	for i, w := range words {
		items[i] = ListItem{Word: w, Rank: ranks[i]}
	}
	s.sendResponse(ListResponse{ID: id, Items: items, Count: len(items), TimeTaken: since(start)})
}

func (s *Server) sendResponse(response any) {
	if err := s.encoder.Encode(response); err != nil {
		s.logs.Errorf("Encoding response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.logs.Debug("Request failed", "id", id, "code", code, "error", message)
	s.sendResponse(ErrorResponse{ID: id, Error: message, Code: code})
}

func (s *Server) reloadConfig() {
	if s.configPath == "" {
		return
	}
	cfg, err := config.LoadConfig(s.configPath)
	if err != nil {
		s.logs.Warnf("Config reload failed: %v", err)
		return
	}
	s.config = cfg
	s.logs.Debugf("Reloaded config from %s after %d requests", s.configPath, s.requestCount)
}

func errorCode(err error) int {
	switch {
	case errors.Is(err, dictionary.ErrNotFound):
		return 404
	case errors.Is(err, dictionary.ErrEmptyTree):
		return 409
	default:
		return 500
	}
}

func since(start time.Time) int64 {
	return time.Since(start).Microseconds()
}
