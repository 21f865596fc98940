package controllers

import (
	"net/http"
	"streamsched/internal/models"
	"streamsched/internal/providers"
	"streamsched/internal/services"
)

type ScheduleController struct {
	logger  providers.Logger
	service services.ScheduleServiceInterface
	cache   providers.CacheProviderInterface
}

func NewScheduleController(logger providers.Logger, service services.ScheduleServiceInterface, cache providers.CacheProviderInterface) *ScheduleController {
	return &ScheduleController{
		logger:  logger,
		service: service,
		cache:   cache,
	}
}

type workingResponse struct {
	Schedule models.Schedule `json:"schedule"`
	State    services.State  `json:"state"`
}

type mutationResponse struct {
	Changed  bool            `json:"changed"`
	Schedule models.Schedule `json:"schedule"`
	State    services.State  `json:"state"`
}

type syncResponse struct {
	Result services.SyncResult `json:"result"`
	State  services.State      `json:"state"`
}

type addRequest struct {
	Weekday any                `json:"weekday"`
	Entry   models.StreamEntry `json:"entry"`
}

type editRequest struct {
	Weekday    any                `json:"weekday"`
	Index      any                `json:"index"`
	NewWeekday any                `json:"newWeekday"`
	Entry      models.StreamEntry `json:"entry"`
}

type deleteRequest struct {
	Weekday any  `json:"weekday"`
	Index   any  `json:"index"`
	Confirm bool `json:"confirm"`
}

type resetRequest struct {
	Confirm bool `json:"confirm"`
}

// PublicSchedule serves the last synchronized schedule. The encoded body is
// cached per published version.
func (sc *ScheduleController) PublicSchedule(w http.ResponseWriter, r *http.Request) {
	sched, version := sc.service.Published()
	cacheKey := sc.service.PublicCacheKey(version)
	if data, ok := sc.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}
	gson, err := sched.MarshalJSON()
	if err != nil {
		writeError(w, sc.logger, r, err)
		return
	}
	sc.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func (sc *ScheduleController) Working(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, workingResponse{
		Schedule: sc.service.Schedule(),
		State:    sc.service.State(),
	})
}

func (sc *ScheduleController) Day(w http.ResponseWriter, r *http.Request) {
	day, err := models.ParseWeekday(r.URL.Query().Get("d"))
	if err != nil {
		writeError(w, sc.logger, r, err)
		return
	}
	entry, ok := sc.service.Schedule().DayEntry(day)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "no entries for " + day.String()})
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (sc *ScheduleController) respondMutation(w http.ResponseWriter, r *http.Request, sched models.Schedule, changed bool, err error) {
	if err != nil {
		writeError(w, sc.logger, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mutationResponse{
		Changed:  changed,
		Schedule: sched,
		State:    sc.service.State(),
	})
}

func (sc *ScheduleController) Add(w http.ResponseWriter, r *http.Request) {
	var req addRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, sc.logger, r, err)
		return
	}
	day, err := parseWeekday(req.Weekday, "weekday")
	if err != nil {
		writeError(w, sc.logger, r, err)
		return
	}
	sched, changed, err := sc.service.AddStream(day, req.Entry)
	sc.respondMutation(w, r, sched, changed, err)
}

func (sc *ScheduleController) Edit(w http.ResponseWriter, r *http.Request) {
	var req editRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, sc.logger, r, err)
		return
	}
	day, err := parseWeekday(req.Weekday, "weekday")
	if err != nil {
		writeError(w, sc.logger, r, err)
		return
	}
	index, err := parseIndex(req.Index)
	if err != nil {
		writeError(w, sc.logger, r, err)
		return
	}
	target := day
	if req.NewWeekday != nil {
		if target, err = parseWeekday(req.NewWeekday, "newWeekday"); err != nil {
			writeError(w, sc.logger, r, err)
			return
		}
	}
	sched, changed, err := sc.service.EditStream(day, index, req.Entry, target)
	sc.respondMutation(w, r, sched, changed, err)
}

func (sc *ScheduleController) Delete(w http.ResponseWriter, r *http.Request) {
	var req deleteRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, sc.logger, r, err)
		return
	}
	day, err := parseWeekday(req.Weekday, "weekday")
	if err != nil {
		writeError(w, sc.logger, r, err)
		return
	}
	index, err := parseIndex(req.Index)
	if err != nil {
		writeError(w, sc.logger, r, err)
		return
	}
	sched, changed, err := sc.service.DeleteStream(day, index, req.Confirm)
	sc.respondMutation(w, r, sched, changed, err)
}

func (sc *ScheduleController) Reset(w http.ResponseWriter, r *http.Request) {
	var req resetRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, sc.logger, r, err)
		return
	}
	sched, err := sc.service.Reset(req.Confirm)
	sc.respondMutation(w, r, sched, err == nil, err)
}

// Save answers 503 with the result when the store rejected the write.
func (sc *ScheduleController) Save(w http.ResponseWriter, r *http.Request) {
	res := sc.service.Save(r.Context())
	status := http.StatusOK
	if !res.OK {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, syncResponse{Result: res, State: sc.service.State()})
}

// Load always answers 200: a failed load is reported in the result.
func (sc *ScheduleController) Load(w http.ResponseWriter, r *http.Request) {
	res := sc.service.Load(r.Context())
	writeJSON(w, http.StatusOK, syncResponse{Result: res, State: sc.service.State()})
}
