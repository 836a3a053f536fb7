package v1

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kurochkinivan/video_sorter/internal/domain"
)

type Reconciler interface {
	Run(ctx context.Context, req domain.RunRequest) *domain.RunResult
}

type StatusReader interface {
	Snapshot() domain.JobStatus
	RunSnapshot(runID string) (domain.JobStatus, bool)
	Result(runID string) (*domain.RunResult, bool)
}

type ReportGenerator interface {
	GenerateReport(result *domain.RunResult) ([]byte, error)
}

type RunsHandler struct {
	log        *slog.Logger
	reconciler Reconciler
	statuses   StatusReader
	reports    ReportGenerator
}

func NewRunsHandler(log *slog.Logger, reconciler Reconciler, statuses StatusReader, reports ReportGenerator) *RunsHandler {
	return &RunsHandler{
		log:        log,
		reconciler: reconciler,
		statuses:   statuses,
		reports:    reports,
	}
}

type CurrentProcessResponse struct {
	StatusMessage string `json:"status_message"`
}

func (h *RunsHandler) Form(w http.ResponseWriter, r *http.Request) {
	h.render(w, "form.html", nil)
}

// Submit runs a reconciliation from the HTML form and renders its report.
func (h *RunsHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := h.reconciler.Run(r.Context(), domain.RunRequest{
		ManifestPath:    r.PostForm.Get("excel_url"),
		SourceFolder:    r.PostForm.Get("video_folder_url"),
		DestinationRoot: r.PostForm.Get("final_folder"),
	})

	h.render(w, "results.html", result)
}

func (h *RunsHandler) Progress(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.statuses.Snapshot())
}

func (h *RunsHandler) CurrentProcess(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, CurrentProcessResponse{
		StatusMessage: h.statuses.Snapshot().StatusMessage,
	})
}

func (h *RunsHandler) CreateRun(w http.ResponseWriter, r *http.Request) {
	var req domain.RunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validateRunRequest(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.writeJSON(w, http.StatusOK, h.reconciler.Run(r.Context(), req))
}

func (h *RunsHandler) RunStatus(w http.ResponseWriter, r *http.Request) {
	status, ok := h.statuses.RunSnapshot(chi.URLParam(r, "run_id"))
	if !ok {
		http.Error(w, "run not found", http.StatusNotFound)
		return
	}

	h.writeJSON(w, http.StatusOK, status)
}

func (h *RunsHandler) RunReport(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, "run_id")

	result, ok := h.statuses.Result(runID)
	if !ok {
		http.Error(w, "run not found or not finished", http.StatusNotFound)
		return
	}

	data, err := h.reports.GenerateReport(result)
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to generate report",
			slog.String("run_id", runID),
			slog.String("err", err.Error()),
		)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="report-`+runID+`.pdf"`)
	w.Write(data)
}

func (h *RunsHandler) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		h.log.Error("failed to render template", slog.String("template", name), slog.String("err", err.Error()))
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *RunsHandler) writeJSON(w http.ResponseWriter, code int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(data)
}

func validateRunRequest(req domain.RunRequest) error {
	switch {
	case req.ManifestPath == "":
		return errors.New("manifest_path is required")
	case req.SourceFolder == "":
		return errors.New("source_folder is required")
	case req.DestinationRoot == "":
		return errors.New("destination_root is required")
	}

	return nil
}
