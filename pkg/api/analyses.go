package api

import (
	"io"
	"net/http"

	"github.com/eladmint/whatsapp-analyzer/pkg/analyzer"
	"github.com/eladmint/whatsapp-analyzer/pkg/logger"
	"github.com/eladmint/whatsapp-analyzer/pkg/models"
	"github.com/eladmint/whatsapp-analyzer/pkg/parser"
	"github.com/eladmint/whatsapp-analyzer/pkg/telemetry"
	"github.com/eladmint/whatsapp-analyzer/pkg/utils"
)

// maxTranscriptBytes caps uploads; exports are line-oriented text, anything
// beyond this is almost certainly not a chat export.
const maxTranscriptBytes = 64 << 20

type analysisResponse struct {
	RunID        string           `json:"runId"`
	Participants []string         `json:"participants"`
	Stats        models.ChatStats `json:"stats"`
}

// handleAnalyze accepts a raw transcript body (the .txt export) and runs the
// parse-and-analyze pipeline.
func (d Deps) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxTranscriptBytes))
	if err != nil {
		utils.JSONError(w, http.StatusBadRequest, "failed to read request body")
		return
	}
	d.respondAnalysis(w, r, string(body))
}

// handleShare accepts the share-target form upload (file field "chat") and
// feeds it through the exact same pipeline as a direct upload.
func (d Deps) handleShare(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxTranscriptBytes); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	f, _, err := r.FormFile("chat")
	if err != nil {
		utils.JSONError(w, http.StatusBadRequest, `missing file field "chat"`)
		return
	}
	defer f.Close()
	body, err := io.ReadAll(io.LimitReader(f, maxTranscriptBytes))
	if err != nil {
		utils.JSONError(w, http.StatusBadRequest, "failed to read shared file")
		return
	}
	d.respondAnalysis(w, r, string(body))
}

// respondAnalysis is the single pipeline behind both entry points: parse the
// transcript, compute the stats snapshot, then attach the AI overlay. An AI
// failure degrades to a tagged marker on the snapshot; it never fails the
// request or discards the computed stats.
func (d Deps) respondAnalysis(w http.ResponseWriter, r *http.Request, text string) {
	runID := utils.GenRunID()
	msgs := parser.Parse(text)
	stats := analyzer.Analyze(msgs)

	telemetry.MessagesParsed.Add(float64(len(msgs)))
	telemetry.AnalysesTotal.Inc()
	logger.Info("analysis_completed", "run", runID, "messages", len(msgs),
		"participants", len(stats.MessagesPerPerson))

	if d.AI != nil && len(msgs) > 0 {
		result := d.AI.AnalyzeConversation(r.Context(), msgs)
		if !result.Success {
			telemetry.AIFailures.WithLabelValues(result.Error).Inc()
		}
		stats.AIAnalysis = &result
	}

	_ = utils.JSONWrite(w, http.StatusOK, analysisResponse{
		RunID:        runID,
		Participants: models.Participants(msgs),
		Stats:        stats,
	})
}
