package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"html/template"
	"io"
	"net/http"

	"go.uber.org/zap"

	"heartcheck/patient"
	"heartcheck/predict"
	"heartcheck/ui"
)

// App carries what the handlers need. Everything is built once at startup
// and shared read-only between requests.
type App struct {
	Adapter     *predict.Adapter
	Formatter   *predict.Formatter
	Renderer    *ui.Renderer
	Header      *ui.Image
	Title       string
	Description template.HTML
	Logger      *zap.Logger
}

func RegisterHandlers(mux *http.ServeMux, app *App) {
	mux.HandleFunc("GET /{$}", app.handleForm)
	mux.HandleFunc("POST /{$}", app.handleSubmit)
	mux.HandleFunc("GET "+ui.HeaderImagePath, app.handleHeaderImage)
	mux.HandleFunc("GET "+ui.StylesheetPath, handleStylesheet)
	mux.HandleFunc("GET /api/health", handleHealth)
	mux.HandleFunc("GET /api/schema", handleSchema)
	mux.HandleFunc("POST /api/predict", app.handlePredict)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func handleSchema(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"columns": patient.ColumnNames(),
		"fields":  patient.Fields(),
	})
}

func handleStylesheet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Write(ui.Stylesheet())
}

func (a *App) handleHeaderImage(w http.ResponseWriter, r *http.Request) {
	if a.Header == nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", a.Header.ContentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(a.Header.Data)
}

// handleForm shows the idle page with every widget at its default.
func (a *App) handleForm(w http.ResponseWriter, r *http.Request) {
	a.renderPage(w, r, http.StatusOK, ui.NewPage(a.Title, a.Description, nil, nil))
}

// handleSubmit is the "Predict Heart Disease" action.
func (a *App) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	rec, err := patient.FromForm(r.PostForm)
	if err != nil {
		var verr *patient.ValidationError
		if !errors.As(err, &verr) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		page := ui.NewPage(a.Title, a.Description, r.PostForm, verr.Fields)
		a.renderPage(w, r, http.StatusUnprocessableEntity, page)
		return
	}

	// Redisplay the parsed record so widgets show canonical option values.
	page := ui.NewPage(a.Title, a.Description, rec.Values(), nil)
	result, err := a.Adapter.Predict(r.Context(), rec)
	if err != nil {
		a.Logger.Error("prediction failed",
			zap.String("request_id", GetRequestID(r.Context())),
			zap.Error(err),
		)
		page.Failure = err.Error()
		a.renderPage(w, r, http.StatusInternalServerError, page)
		return
	}

	a.renderPage(w, r, http.StatusOK, page.WithResult(result, a.Formatter))
}

// PredictResponse is the JSON form of one prediction.
type PredictResponse struct {
	Label         int            `json:"label"`
	AtRisk        bool           `json:"at_risk"`
	Severity      string         `json:"severity"`
	Message       string         `json:"message"`
	Probabilities Probabilities  `json:"probabilities"`
	Display       []predict.Line `json:"display"`
}

type Probabilities struct {
	NoRisk float64 `json:"no_risk"`
	Risk   float64 `json:"risk"`
}

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func (a *App) handlePredict(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respondJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "request body too large"})
			return
		}
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "read request body"})
		return
	}

	rec, err := patient.FromJSON(body)
	if err != nil {
		var verr *patient.ValidationError
		if errors.As(err, &verr) {
			respondJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "invalid patient record", Fields: verr.Fields})
			return
		}
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	result, err := a.Adapter.Predict(r.Context(), rec)
	if err != nil {
		a.Logger.Error("prediction failed",
			zap.String("request_id", GetRequestID(r.Context())),
			zap.Error(err),
		)
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	outcome := result.Outcome()
	respondJSON(w, http.StatusOK, PredictResponse{
		Label:    result.Label,
		AtRisk:   result.AtRisk(),
		Severity: string(outcome.Severity),
		Message:  outcome.Message,
		Probabilities: Probabilities{
			NoRisk: result.ProbNoRisk,
			Risk:   result.ProbRisk,
		},
		Display: a.Formatter.Lines(result),
	})
}

func (a *App) renderPage(w http.ResponseWriter, r *http.Request, status int, page ui.Page) {
	var buf bytes.Buffer
	if err := a.Renderer.Render(&buf, page); err != nil {
		a.Logger.Error("render page",
			zap.String("request_id", GetRequestID(r.Context())),
			zap.Error(err),
		)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
