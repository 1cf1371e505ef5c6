package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	h "campustimetable/internal/delivery/http/helpers"
	"campustimetable/internal/delivery/http/middleware"
	"campustimetable/internal/domain"
)

// ClassRequest is the request body for adding or editing a class. Times are "HH:MM".
// Day is required when adding; when editing it defaults to the day in the path.
type ClassRequest struct {
	Subject   string            `json:"subject" validate:"required,max=120"`
	Type      string            `json:"type" validate:"omitempty,oneof=Lecture Lab Tutorial Workshop Seminar"`
	StartTime *domain.TimeOfDay `json:"start_time" validate:"required"`
	EndTime   *domain.TimeOfDay `json:"end_time" validate:"required"`
	Location  string            `json:"location" validate:"max=120"`
	Teacher   string            `json:"teacher" validate:"max=120"`
	Day       string            `json:"day"`
}

// Validate implements Validator. Struct tags cover presence; this covers ordering and the day name.
func (c ClassRequest) Validate() []string {
	var errs []string
	if c.StartTime != nil && c.EndTime != nil && *c.EndTime <= *c.StartTime {
		errs = append(errs, "end_time must be after start_time")
	}
	if c.Day != "" {
		if _, err := domain.ParseWeekday(c.Day); err != nil {
			errs = append(errs, "day must be one of Monday..Saturday")
		}
	}
	return errs
}

func (c ClassRequest) toEntry() domain.ClassEntry {
	var day domain.Weekday
	if c.Day != "" {
		day, _ = domain.ParseWeekday(c.Day)
	}
	return domain.ClassEntry{
		Subject:   c.Subject,
		Type:      domain.ClassType(c.Type),
		StartTime: c.StartTime,
		EndTime:   c.EndTime,
		Location:  c.Location,
		Teacher:   c.Teacher,
		Day:       day,
	}
}

// SlotRequest addresses an entry by day and index.
type SlotRequest struct {
	Day   string `json:"day" validate:"required"`
	Index *int   `json:"index" validate:"required,min=0"`
}

func (s SlotRequest) toRef() (domain.SlotRef, error) {
	day, err := domain.ParseWeekday(s.Day)
	if err != nil {
		return domain.SlotRef{}, err
	}
	return domain.SlotRef{Day: day, Index: *s.Index}, nil
}

// MoveRequest is the request body for POST /timetable/moves, the release of a drag gesture.
// A null destination means the entry was dropped outside any day column.
type MoveRequest struct {
	Source      SlotRequest  `json:"source" validate:"required"`
	Destination *SlotRequest `json:"destination"`
}

// MoveResponse is the data payload for POST /timetable/moves.
type MoveResponse struct {
	Applied   bool             `json:"applied"`
	Timetable domain.Timetable `json:"timetable"`
}

// StatusResponse is a data payload carrying a short status message.
type StatusResponse struct {
	Status string `json:"status"`
}

// TimetableSuccessResponse is the success response envelope for endpoints returning the whole timetable.
type TimetableSuccessResponse struct {
	Data  domain.Timetable `json:"data"`
	Error *h.APIError      `json:"error"`
}

// DaySuccessResponse is the success response envelope for GET /timetable/{day}.
type DaySuccessResponse struct {
	Data  []domain.ClassEntry `json:"data"`
	Error *h.APIError         `json:"error"`
}

// MoveSuccessResponse is the success response envelope for POST /timetable/moves.
type MoveSuccessResponse struct {
	Data  MoveResponse `json:"data"`
	Error *h.APIError  `json:"error"`
}

type TimetableController struct {
	Logger  *slog.Logger
	Service domain.TimetableService
}

func NewTimetableController(logger *slog.Logger, svc domain.TimetableService) *TimetableController {
	return &TimetableController{
		Logger:  logger,
		Service: svc,
	}
}

// GetTimetable godoc
// @Summary Get my timetable
// @Description Returns every day Monday..Saturday with its classes in display order.
// @Tags timetable
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.TimetableSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /timetable [get]
func (c *TimetableController) GetTimetable(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := c.owner(w, r)
	if !ok {
		return
	}
	t, err := c.Service.Get(r.Context(), ownerID)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, t)
}

// GetDay godoc
// @Summary Get one day of my timetable
// @Tags timetable
// @Produce json
// @Security BearerAuth
// @Param day path string true "Day name (Monday..Saturday)"
// @Success 200 {object} controllers.DaySuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /timetable/{day} [get]
func (c *TimetableController) GetDay(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := c.owner(w, r)
	if !ok {
		return
	}
	day, ok := pathDay(w, r)
	if !ok {
		return
	}
	entries, err := c.Service.GetDay(r.Context(), ownerID, day)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, entries)
}

// AddClass godoc
// @Summary Add a class
// @Description Appends the class to the end of its day.
// @Tags timetable
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param class body ClassRequest true "Class data"
// @Success 201 {object} controllers.TimetableSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /timetable/classes [post]
func (c *TimetableController) AddClass(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := c.owner(w, r)
	if !ok {
		return
	}
	var req ClassRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	t, err := c.Service.AddClass(r.Context(), ownerID, req.toEntry())
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, t)
}

// EditClass godoc
// @Summary Replace a class
// @Description Replaces the class at the given position. A different day in the body moves the class to the end of that day.
// @Tags timetable
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param day path string true "Day name"
// @Param index path int true "Position within the day (0-based)"
// @Param class body ClassRequest true "Class data"
// @Success 200 {object} controllers.TimetableSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /timetable/{day}/{index} [put]
func (c *TimetableController) EditClass(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := c.owner(w, r)
	if !ok {
		return
	}
	day, index, ok := pathSlot(w, r)
	if !ok {
		return
	}
	var req ClassRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	t, err := c.Service.EditClass(r.Context(), ownerID, day, index, req.toEntry())
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, t)
}

// DeleteClass godoc
// @Summary Delete a class
// @Description Removes the class at the given position; later classes of that day shift down.
// @Tags timetable
// @Produce json
// @Security BearerAuth
// @Param day path string true "Day name"
// @Param index path int true "Position within the day (0-based)"
// @Success 200 {object} controllers.TimetableSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /timetable/{day}/{index} [delete]
func (c *TimetableController) DeleteClass(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := c.owner(w, r)
	if !ok {
		return
	}
	day, index, ok := pathSlot(w, r)
	if !ok {
		return
	}
	t, err := c.Service.DeleteClass(r.Context(), ownerID, day, index)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, t)
}

// MoveClass godoc
// @Summary Apply a drag-and-drop move
// @Description Moves a class to a new day and position. The destination index counts positions after the class has been taken out. A null destination or a drop on the same slot changes nothing (applied=false).
// @Tags timetable
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param gesture body MoveRequest true "Drag gesture"
// @Success 200 {object} controllers.MoveSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /timetable/moves [post]
func (c *TimetableController) MoveClass(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := c.owner(w, r)
	if !ok {
		return
	}
	var req MoveRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	var gesture domain.DragGesture
	var err error
	if gesture.Source, err = req.Source.toRef(); err != nil {
		c.writeError(w, r, err)
		return
	}
	if req.Destination != nil {
		dst, err := req.Destination.toRef()
		if err != nil {
			c.writeError(w, r, err)
			return
		}
		gesture.Destination = &dst
	}
	t, applied, err := c.Service.MoveClass(r.Context(), ownerID, gesture)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, MoveResponse{Applied: applied, Timetable: t})
}

// EmailTimetable godoc
// @Summary Email my timetable
// @Description Sends the week's timetable to the account's email address.
// @Tags timetable
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data.status: sent"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (timetable is empty)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /timetable/email [post]
func (c *TimetableController) EmailTimetable(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := c.owner(w, r)
	if !ok {
		return
	}
	if err := c.Service.EmailTimetable(r.Context(), ownerID); err != nil {
		c.writeError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, StatusResponse{Status: "sent"})
}

func (c *TimetableController) owner(w http.ResponseWriter, r *http.Request) (string, bool) {
	ownerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
	}
	return ownerID, ok
}

func (c *TimetableController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidEntry), errors.Is(err, domain.ErrInvalidDay):
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrIndexOutOfRange):
		h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, err.Error())
	case errors.Is(err, domain.ErrUserNotFound):
		h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "user not found")
	case errors.Is(err, domain.ErrEmptyTimetable):
		h.WriteJSONError(w, http.StatusConflict, h.ErrCodeConflict, err.Error())
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
	}
}

func pathDay(w http.ResponseWriter, r *http.Request) (domain.Weekday, bool) {
	day, err := domain.ParseWeekday(r.PathValue("day"))
	if err != nil {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
		return "", false
	}
	return day, true
}

func pathSlot(w http.ResponseWriter, r *http.Request) (domain.Weekday, int, bool) {
	day, ok := pathDay(w, r)
	if !ok {
		return "", 0, false
	}
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil || index < 0 {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "index must be a non-negative integer")
		return "", 0, false
	}
	return day, index, true
}
