package service

import (
	"errors"
	"fmt"
	"time"

	"frontdesk/cmd/internal/domain/entity"
	"frontdesk/cmd/internal/schedule"
	"frontdesk/cmd/internal/utils"
	"frontdesk/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Save(appt *entity.Appointment) error
	HasConflict(date, clock string) (bool, error)
	FindByName(name string) ([]*entity.Appointment, error)
	DeleteByMatch(name, date, clock string) (bool, error)
	DeleteAllByName(name string) (int64, error)
}

// searchWindowDays bounds the forward scan for a free slot.
const searchWindowDays = 30

type AppointmentRequest struct {
	Name string `json:"name" validate:"required,max=128"`
	Date string `json:"date" validate:"required,max=128"`
	Time string `json:"time" validate:"required,clocktime"`
}

type LookupRequest struct {
	Name string `json:"name" validate:"required,max=128"`
}

type AppointmentResponse struct {
	Name     string `json:"name"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Timezone string `json:"timezone"`
}

type CreateResponse struct {
	Status      string               `json:"status"`
	Message     string               `json:"message"`
	ToolCallID  string               `json:"toolCallId,omitempty"`
	Appointment *AppointmentResponse `json:"appointment"`
}

type LookupResponse struct {
	Status       string                 `json:"status"`
	ToolCallID   string                 `json:"toolCallId,omitempty"`
	Appointments []*AppointmentResponse `json:"appointments"`
}

type CancelResponse struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	ToolCallID string `json:"toolCallId,omitempty"`
}

type RescheduleResponse struct {
	Status     string               `json:"status"`
	Message    string               `json:"message"`
	ToolCallID string               `json:"toolCallId,omitempty"`
	Old        *AppointmentResponse `json:"old_appointment"`
	New        *AppointmentResponse `json:"new_appointment"`
}

type SlotsResponse struct {
	Status         string   `json:"status"`
	ToolCallID     string   `json:"toolCallId,omitempty"`
	Date           string   `json:"date"`
	AvailableSlots []string `json:"available_slots"`
}

type DefaultAppointmentService struct {
	Repo       AppointmentRepository
	Normalizer *schedule.Normalizer
	Calendar   *schedule.Calendar
	Validate   *validator.Validate
	TZLabel    string

	// Now is the clock used to resolve relative dates and to anchor the
	// slot search. Overridable in tests.
	Now func() time.Time
}

func NewAppointmentService(repo AppointmentRepository, normalizer *schedule.Normalizer, calendar *schedule.Calendar, validate *validator.Validate, tzLabel string) *DefaultAppointmentService {
	return &DefaultAppointmentService{
		Repo:       repo,
		Normalizer: normalizer,
		Calendar:   calendar,
		Validate:   validate,
		TZLabel:    tzLabel,
		Now:        time.Now,
	}
}

func (s *DefaultAppointmentService) Create(req *AppointmentRequest) (*CreateResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}
	return s.create(req.Name, req.Date, req.Time)
}

// create runs the booking workflow on an already-validated request. The
// date may still be free-form; the clock time is used verbatim and is not
// required to sit on the business-hours grid.
func (s *DefaultAppointmentService) create(name, dateText, clock string) (*CreateResponse, apierror.ErrorResponse) {
	date, err := s.Normalizer.Normalize(dateText, s.Now())
	if err != nil {
		return nil, apierror.InvalidDateError
	}
	return s.book(name, date, clock)
}

// book runs the business-day, conflict and insert steps on a date that is
// already in canonical form.
func (s *DefaultAppointmentService) book(name, date, clock string) (*CreateResponse, apierror.ErrorResponse) {
	reason, closed, err := s.Calendar.NonBusinessReason(date)
	if err != nil {
		log.Errorf("failed to evaluate business day %s: %v", date, err)
		return nil, apierror.InternalServerError
	}
	if closed {
		return nil, apierror.NewNonBusinessDayError(date, reason)
	}

	taken, err := s.Repo.HasConflict(date, clock)
	if err != nil {
		log.Errorf("failed to check conflicts for %s %s: %v", date, clock, err)
		return nil, apierror.InternalServerError
	}
	if taken {
		return nil, apierror.SlotConflictError
	}

	appt := &entity.Appointment{
		Name:      name,
		Date:      date,
		Time:      clock,
		Timezone:  s.TZLabel,
		CreatedAt: utils.NowUTC(),
	}
	err = s.Repo.Save(appt)
	if err != nil {
		// The unique slot index turns a lost check-then-insert race into a
		// duplicate key instead of a double booking.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.SlotConflictError
		}
		log.Errorf("failed to save appointment for %s: %v", name, err)
		return nil, apierror.InternalServerError
	}

	return &CreateResponse{
		Status:      "success",
		Message:     "Appointment created successfully",
		Appointment: toAppointmentResponse(appt),
	}, nil
}

func (s *DefaultAppointmentService) Get(req *LookupRequest) (*LookupResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	appts, err := s.Repo.FindByName(req.Name)
	if err != nil {
		log.Errorf("failed to find appointments for %s: %v", req.Name, err)
		return nil, apierror.InternalServerError
	}
	if len(appts) == 0 {
		return nil, apierror.NotFoundError
	}

	response := make([]*AppointmentResponse, len(appts))
	for i, appt := range appts {
		response[i] = toAppointmentResponse(appt)
	}
	return &LookupResponse{Status: "success", Appointments: response}, nil
}

func (s *DefaultAppointmentService) Cancel(req *AppointmentRequest) (*CancelResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	date, err := s.Normalizer.Normalize(req.Date, s.Now())
	if err != nil {
		return nil, apierror.InvalidDateError
	}

	removed, err := s.Repo.DeleteByMatch(req.Name, date, req.Time)
	if err != nil {
		log.Errorf("failed to delete appointment for %s on %s %s: %v", req.Name, date, req.Time, err)
		return nil, apierror.InternalServerError
	}
	if !removed {
		return nil, apierror.NotFoundError
	}

	msg := fmt.Sprintf("Cancelled %s's appointment on %s at %s", req.Name, date, req.Time)
	return &CancelResponse{Status: "success", Message: msg}, nil
}

// Reschedule moves a name's booking: every appointment held under the name
// is removed, then the create workflow runs with the new slot. The earliest
// existing booking is the one reported back as "old". If the recreation is
// rejected the prior rows are already gone and the caller has to rebook.
func (s *DefaultAppointmentService) Reschedule(req *AppointmentRequest) (*RescheduleResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	existing, err := s.Repo.FindByName(req.Name)
	if err != nil {
		log.Errorf("failed to find appointments for %s: %v", req.Name, err)
		return nil, apierror.InternalServerError
	}
	if len(existing) == 0 {
		return nil, apierror.NotFoundError
	}
	prior := existing[0]

	// Resolve the new date before deleting anything so an unparseable date
	// cannot wipe out the current booking.
	newDate, err := s.Normalizer.Normalize(req.Date, s.Now())
	if err != nil {
		return nil, apierror.InvalidDateError
	}

	if _, err := s.Repo.DeleteAllByName(req.Name); err != nil {
		log.Errorf("failed to remove appointments for %s: %v", req.Name, err)
		return nil, apierror.InternalServerError
	}

	created, apierr := s.book(req.Name, newDate, req.Time)
	if apierr != nil {
		return nil, apierr
	}

	return &RescheduleResponse{
		Status:  "success",
		Message: "Appointment rescheduled successfully",
		Old:     toAppointmentResponse(prior),
		New:     created.Appointment,
	}, nil
}

// NextAvailableSlots scans forward from tomorrow, bounded to
// searchWindowDays, and returns the first business day that still has at
// least one free hour together with all of its free hours. A business day
// that is fully booked does not stop the scan.
func (s *DefaultAppointmentService) NextAvailableSlots() (*SlotsResponse, apierror.ErrorResponse) {
	day := s.Now().In(s.Calendar.Location())
	for i := 0; i < searchWindowDays; i++ {
		day = day.AddDate(0, 0, 1)
		date := day.Format(schedule.DateLayout)

		business, err := s.Calendar.IsBusinessDay(date)
		if err != nil {
			log.Errorf("failed to evaluate business day %s: %v", date, err)
			return nil, apierror.InternalServerError
		}
		if !business {
			continue
		}

		var free []string
		for _, hour := range schedule.BusinessHours() {
			taken, err := s.Repo.HasConflict(date, hour)
			if err != nil {
				log.Errorf("failed to check conflicts for %s %s: %v", date, hour, err)
				return nil, apierror.InternalServerError
			}
			if !taken {
				free = append(free, hour)
			}
		}
		if len(free) > 0 {
			return &SlotsResponse{Status: "success", Date: date, AvailableSlots: free}, nil
		}
	}
	return nil, apierror.NoSlotsFoundError
}

func toAppointmentResponse(appt *entity.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		Name:     appt.Name,
		Date:     appt.Date,
		Time:     appt.Time,
		Timezone: appt.Timezone,
	}
}
