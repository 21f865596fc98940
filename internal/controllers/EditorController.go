package controllers

import (
	"net/http"
	"streamsched/internal/editor"
	"streamsched/internal/models"
	"streamsched/internal/providers"
	"streamsched/internal/services"
)

// EditorController drives the single operator editor session. A commit goes
// through the schedule service so it is serialized with direct mutations.
type EditorController struct {
	logger  providers.Logger
	service services.ScheduleServiceInterface
	session *editor.Session
}

func NewEditorController(logger providers.Logger, service services.ScheduleServiceInterface, session *editor.Session) *EditorController {
	return &EditorController{
		logger:  logger,
		service: service,
		session: session,
	}
}

type beginAddRequest struct {
	Weekday any `json:"weekday"`
}

type beginEditRequest struct {
	Weekday any `json:"weekday"`
	Index   any `json:"index"`
}

type commitResponse struct {
	Changed  bool            `json:"changed"`
	Schedule models.Schedule `json:"schedule"`
	Editor   editor.State    `json:"editor"`
	State    services.State  `json:"state"`
}

func (ec *EditorController) State(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ec.session.State())
}

func (ec *EditorController) BeginAdd(w http.ResponseWriter, r *http.Request) {
	var req beginAddRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, ec.logger, r, err)
		return
	}
	day, err := parseWeekday(req.Weekday, "weekday")
	if err == nil {
		err = ec.session.BeginAdd(day)
	}
	if err != nil {
		writeError(w, ec.logger, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ec.session.State())
}

func (ec *EditorController) BeginEdit(w http.ResponseWriter, r *http.Request) {
	var req beginEditRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, ec.logger, r, err)
		return
	}
	day, err := parseWeekday(req.Weekday, "weekday")
	if err != nil {
		writeError(w, ec.logger, r, err)
		return
	}
	index, err := parseIndex(req.Index)
	if err != nil {
		writeError(w, ec.logger, r, err)
		return
	}
	if err := ec.session.BeginEdit(ec.service.Schedule(), day, index); err != nil {
		writeError(w, ec.logger, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ec.session.State())
}

// Draft overlays the request body on the current draft, so a client may send
// only the fields it changed.
func (ec *EditorController) Draft(w http.ResponseWriter, r *http.Request) {
	st := ec.session.State()
	if st.Draft == nil {
		writeError(w, ec.logger, r, editor.ErrNoSession)
		return
	}
	draft := *st.Draft
	if err := decodeBody(w, r, &draft); err != nil {
		writeError(w, ec.logger, r, err)
		return
	}
	if err := ec.session.Update(draft); err != nil {
		writeError(w, ec.logger, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ec.session.State())
}

func (ec *EditorController) Commit(w http.ResponseWriter, r *http.Request) {
	mutator := ec.service.Mutator()
	sched, changed, err := ec.service.Apply(func(cur models.Schedule) (models.Schedule, bool, error) {
		return ec.session.Commit(mutator, cur)
	})
	if err != nil {
		writeError(w, ec.logger, r, err)
		return
	}
	writeJSON(w, http.StatusOK, commitResponse{
		Changed:  changed,
		Schedule: sched,
		Editor:   ec.session.State(),
		State:    ec.service.State(),
	})
}

func (ec *EditorController) Cancel(w http.ResponseWriter, r *http.Request) {
	ec.session.Cancel()
	writeJSON(w, http.StatusOK, ec.session.State())
}
