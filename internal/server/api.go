// Package server exposes the game session over HTTP.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"nomadsim/internal/session"
	"nomadsim/internal/sim"
)

// App holds what the handlers depend on.
type App struct {
	Session *session.Session
	Log     *logrus.Logger
	BootNow time.Time
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// actionResponse is the uniform reply to every game action: the fresh
// view, plus the popup notices of this transition. A rejected action
// still returns 200 with the reason; rejections are logged no-ops, not
// protocol failures.
type actionResponse struct {
	State    session.View `json:"state"`
	Notices  []sim.Notice `json:"notices,omitempty"`
	Rejected string       `json:"rejected,omitempty"`

	Outcome *sim.WorkOutcome `json:"outcome,omitempty"`
}

func (a *App) respondAction(w http.ResponseWriter, res sim.Result, err error, outcome *sim.WorkOutcome) {
	if err != nil {
		var rej sim.Rejection
		if sim.AsRejection(err, &rej) {
			writeJSON(w, http.StatusOK, actionResponse{
				State:    a.Session.View(),
				Rejected: rej.Reason,
			})
			return
		}
		a.Log.WithError(err).Error("action failed")
		writeErr(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, actionResponse{
		State:   a.Session.View(),
		Notices: res.Notices,
		Outcome: outcome,
	})
}

func (a *App) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"uptime_s": int(time.Since(a.BootNow).Seconds()),
	})
}

func (a *App) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.Session.View())
}

func (a *App) handleWork(w http.ResponseWriter, r *http.Request) {
	var body struct {
		JobID string `json:"job_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}
	outcome, res, err := a.Session.Work(r.Context(), body.JobID)
	if err != nil {
		a.respondAction(w, res, err, nil)
		return
	}
	a.respondAction(w, res, nil, &outcome)
}

func (a *App) handleRestHome(w http.ResponseWriter, r *http.Request) {
	res, err := a.Session.RestHome()
	a.respondAction(w, res, err, nil)
}

func (a *App) handleRestCafe(w http.ResponseWriter, r *http.Request) {
	res, err := a.Session.RestCafe()
	a.respondAction(w, res, err, nil)
}

func (a *App) handleStudy(w http.ResponseWriter, r *http.Request) {
	res, err := a.Session.Study()
	a.respondAction(w, res, err, nil)
}

func (a *App) handlePin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		JobID string `json:"job_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}
	err := a.Session.TogglePin(body.JobID)
	a.respondAction(w, sim.Result{}, err, nil)
}

func (a *App) handleUpgrade(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UpgradeID string `json:"upgrade_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}
	res, err := a.Session.BuyUpgrade(body.UpgradeID)
	a.respondAction(w, res, err, nil)
}

func (a *App) handleReset(w http.ResponseWriter, r *http.Request) {
	a.Session.Reset()
	writeJSON(w, http.StatusOK, actionResponse{State: a.Session.View()})
}

func (a *App) handleHoroscope(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"horoscope": a.Session.Horoscope(r.Context()),
	})
}

func (a *App) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	top, err := a.Session.TopScores(r.Context())
	if err != nil {
		a.Log.WithError(err).Error("leaderboard read failed")
		writeErr(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, top)
}

func (a *App) handleSaveScore(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := a.Session.SaveScore(r.Context(), body.Name); err != nil {
		var rej sim.Rejection
		if sim.AsRejection(err, &rej) {
			writeErr(w, http.StatusConflict, rej.Reason)
			return
		}
		a.Log.WithError(err).Error("leaderboard write failed")
		writeErr(w, http.StatusInternalServerError, "internal error")
		return
	}
	top, err := a.Session.TopScores(r.Context())
	if err != nil {
		a.Log.WithError(err).Error("leaderboard read failed")
		writeErr(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, top)
}
