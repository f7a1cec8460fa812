package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/kotonoha-lab/talklog/internal/analysis"
	"github.com/kotonoha-lab/talklog/internal/conversation"
	"github.com/kotonoha-lab/talklog/internal/parse"
)

// ConversationSummary is the render-ready overview the display layer
// consumes after an upload.
type ConversationSummary struct {
	ID          string                  `json:"id"`
	Messages    int                     `json:"messages"`
	Senders     []string                `json:"senders"`
	First       *time.Time              `json:"first,omitempty"`
	Last        *time.Time              `json:"last,omitempty"`
	Format      string                  `json:"format"`
	Diagnostics parse.Diagnostics       `json:"diagnostics"`
	Daily       []conversation.DayCount `json:"daily,omitempty"`
}

func summarize(conv *conversation.Conversation, withDaily bool) ConversationSummary {
	summary := ConversationSummary{
		ID:          conv.ID.String(),
		Messages:    len(conv.Messages),
		Senders:     conv.Senders,
		Format:      conv.Diagnostics.Format.String(),
		Diagnostics: conv.Diagnostics,
	}
	if !conv.Empty() {
		summary.First = &conv.Messages[0].Time
		last := conv.Messages[len(conv.Messages)-1].Time
		summary.Last = &last
	}
	if withDaily {
		summary.Daily = conv.DailyCounts()
	}
	return summary
}

// upload handles POST /api/v1/conversations: a talk-log file as
// multipart "file" field or raw request body. The parsed conversation
// replaces the working set; an unrecognized format stores nothing.
func (s *Server) upload(w http.ResponseWriter, r *http.Request) {
	raw, err := readUpload(r, s.cfg.MaxUploadBytes)
	if err != nil {
		writeError(w, http.StatusBadRequest, "read upload: %v", err)
		return
	}

	text, err := parse.DecodeUpload(raw)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "%v", err)
		return
	}

	records, diags, err := parse.Parse(text)
	if err != nil {
		if errors.Is(err, parse.ErrUnrecognizedFormat) {
			writeError(w, http.StatusUnprocessableEntity, "%v", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "parse: %v", err)
		return
	}

	conv := conversation.Build(records, diags)
	s.store.Put(conv)
	slog.Info("conversation loaded",
		"id", conv.ID,
		"format", diags.Format.String(),
		"messages", len(conv.Messages),
		"malformed_lines", conv.Diagnostics.MalformedLines,
		"invalid_timestamps", conv.Diagnostics.InvalidTimestamps)

	writeJSON(w, http.StatusCreated, summarize(conv, false))
}

func readUpload(r *http.Request, maxBytes int64) ([]byte, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBytes)

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
		file, _, err := r.FormFile("file")
		if err != nil {
			return nil, err
		}
		defer file.Close()
		return io.ReadAll(file)
	}
	return io.ReadAll(r.Body)
}

func (s *Server) current(w http.ResponseWriter, r *http.Request) {
	conv := s.store.Current()
	if conv == nil {
		writeError(w, http.StatusNotFound, "no conversation loaded")
		return
	}
	writeJSON(w, http.StatusOK, summarize(conv, true))
}

// messages handles GET /current/messages with sender, q, from and to
// query filters. Dates are YYYY-MM-DD; "to" is inclusive.
func (s *Server) messages(w http.ResponseWriter, r *http.Request) {
	conv := s.store.Current()
	if conv == nil {
		writeError(w, http.StatusNotFound, "no conversation loaded")
		return
	}

	filter := conversation.Filter{
		Sender:  r.URL.Query().Get("sender"),
		Keyword: r.URL.Query().Get("q"),
	}
	if v := r.URL.Query().Get("from"); v != "" {
		day, err := time.Parse("2006-01-02", v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid from date: %v", err)
			return
		}
		filter.From = day
	}
	if v := r.URL.Query().Get("to"); v != "" {
		day, err := time.Parse("2006-01-02", v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid to date: %v", err)
			return
		}
		filter.To = day.Add(24*time.Hour - time.Nanosecond)
	}

	msgs := conv.Select(filter)
	writeJSON(w, http.StatusOK, map[string]any{
		"messages": msgs,
		"count":    len(msgs),
	})
}

// analyze handles GET /current/analysis: runs all analyzers
// concurrently over the current conversation snapshot.
func (s *Server) analyze(w http.ResponseWriter, r *http.Request) {
	conv := s.store.Current()
	if conv == nil {
		writeError(w, http.StatusNotFound, "no conversation loaded")
		return
	}

	freq := analysis.FrequencyOptions{
		MinTokenLength: s.cfg.MinTokenLength,
		Top:            s.cfg.TopWords,
		Sender:         r.URL.Query().Get("sender"),
	}
	if v := r.URL.Query().Get("min_len"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "invalid min_len: %q", v)
			return
		}
		freq.MinTokenLength = n
	}
	if v := r.URL.Query().Get("top"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "invalid top: %q", v)
			return
		}
		freq.Top = n
	}

	lat := analysis.LatencyOptions{
		SessionGap:  s.cfg.SessionGap,
		BurstWindow: s.cfg.BurstWindow,
	}

	report := analysis.Run(conv, s.classifier, freq, lat)
	writeJSON(w, http.StatusOK, report)
}
