package admin

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/getmockd/faultinject/pkg/config"
	"github.com/getmockd/faultinject/pkg/faultinject"
	"github.com/google/uuid"
)

// ErrorResponse is the JSON body for error replies.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// HealthResponse is the JSON body for GET /health.
type HealthResponse struct {
	Status string `json:"status"`
	Uptime int    `json:"uptime"`
}

// FaultStatus is the JSON body describing the harness configuration and
// activity. RunID identifies the driver action that armed the current
// plan; it changes on every successful PUT /fault.
type FaultStatus struct {
	Plan    *config.Plan      `json:"plan"`
	Stats   faultinject.Stats `json:"stats"`
	RunID   string            `json:"runId,omitempty"`
	ArmedAt *time.Time        `json:"armedAt,omitempty"`
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, errCode, message string) {
	writeJSON(w, status, ErrorResponse{Error: errCode, Message: message})
}

// handleHealth handles GET /health.
func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Uptime: a.Uptime()})
}

// faultStatus assembles the current status under the arm bookkeeping lock.
func (a *API) faultStatus() FaultStatus {
	a.mu.Lock()
	defer a.mu.Unlock()

	status := FaultStatus{
		Plan:  config.PlanFrom(a.state),
		Stats: a.state.Snapshot(),
		RunID: a.runID,
	}
	if !a.armedAt.IsZero() {
		t := a.armedAt
		status.ArmedAt = &t
	}
	return status
}

// handleGetFault handles GET /fault.
func (a *API) handleGetFault(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.faultStatus())
}

// handleSetFault handles PUT /fault: it validates and applies a plan and
// mints a new run ID.
func (a *API) handleSetFault(w http.ResponseWriter, r *http.Request) {
	var plan config.Plan
	if err := json.NewDecoder(r.Body).Decode(&plan); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "Invalid JSON in request body")
		return
	}

	if err := plan.Apply(a.state); err != nil {
		a.log.Warn("rejected fault plan", "error", err)
		writeError(w, http.StatusBadRequest, "invalid_plan", err.Error())
		return
	}

	a.mu.Lock()
	a.runID = uuid.NewString()
	a.armedAt = time.Now()
	a.mu.Unlock()

	a.log.Info("fault plan applied",
		"enabled", plan.Enabled,
		"countdown", plan.Countdown,
		"delayIntensity", plan.DelayIntensity,
		"scope", plan.Scope)
	writeJSON(w, http.StatusOK, a.faultStatus())
}

// handleDisableFault handles POST /fault/disable: disarm and clear jitter
// and scope in one step.
func (a *API) handleDisableFault(w http.ResponseWriter, r *http.Request) {
	off := config.Plan{}
	if err := off.Apply(a.state); err != nil {
		writeError(w, http.StatusInternalServerError, "disable_failed", err.Error())
		return
	}

	a.mu.Lock()
	a.runID = ""
	a.armedAt = time.Time{}
	a.mu.Unlock()

	a.log.Info("fault injection disabled")
	writeJSON(w, http.StatusOK, a.faultStatus())
}

// handleResetStats handles POST /fault/reset-stats.
func (a *API) handleResetStats(w http.ResponseWriter, r *http.Request) {
	a.state.ResetStats()
	writeJSON(w, http.StatusOK, a.faultStatus())
}
