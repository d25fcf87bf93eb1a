package routes

import (
	"net/http"

	"frontdesk/cmd/internal/service"
	"frontdesk/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type AppointmentService interface {
	Create(req *service.AppointmentRequest) (*service.CreateResponse, apierror.ErrorResponse)
	Get(req *service.LookupRequest) (*service.LookupResponse, apierror.ErrorResponse)
	Cancel(req *service.AppointmentRequest) (*service.CancelResponse, apierror.ErrorResponse)
	Reschedule(req *service.AppointmentRequest) (*service.RescheduleResponse, apierror.ErrorResponse)
	NextAvailableSlots() (*service.SlotsResponse, apierror.ErrorResponse)
}

type DefaultAppointmentRoute struct {
	AppointmentService AppointmentService
}

func NewAppointmentDefault(apptService AppointmentService) *DefaultAppointmentRoute {
	return &DefaultAppointmentRoute{AppointmentService: apptService}
}

func (a *DefaultAppointmentRoute) NewAppointment(c echo.Context) error {
	var req service.AppointmentRequest
	callID, err := unwrap(c, &req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError.WithToolCall(callID))
	}

	resp, apierr := a.AppointmentService.Create(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr.WithToolCall(callID))
	}
	resp.ToolCallID = callID
	return c.JSON(http.StatusOK, resp)
}

func (a *DefaultAppointmentRoute) GetAppointment(c echo.Context) error {
	var req service.LookupRequest
	callID, err := unwrap(c, &req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError.WithToolCall(callID))
	}

	resp, apierr := a.AppointmentService.Get(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr.WithToolCall(callID))
	}
	resp.ToolCallID = callID
	return c.JSON(http.StatusOK, resp)
}

func (a *DefaultAppointmentRoute) CancelAppointment(c echo.Context) error {
	var req service.AppointmentRequest
	callID, err := unwrap(c, &req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError.WithToolCall(callID))
	}

	resp, apierr := a.AppointmentService.Cancel(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr.WithToolCall(callID))
	}
	resp.ToolCallID = callID
	return c.JSON(http.StatusOK, resp)
}

func (a *DefaultAppointmentRoute) RescheduleAppointment(c echo.Context) error {
	var req service.AppointmentRequest
	callID, err := unwrap(c, &req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError.WithToolCall(callID))
	}

	resp, apierr := a.AppointmentService.Reschedule(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr.WithToolCall(callID))
	}
	resp.ToolCallID = callID
	return c.JSON(http.StatusOK, resp)
}

func (a *DefaultAppointmentRoute) NextAvailableSlots(c echo.Context) error {
	// No arguments beyond the envelope itself.
	callID, err := unwrap(c, nil)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError.WithToolCall(callID))
	}

	resp, apierr := a.AppointmentService.NextAvailableSlots()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr.WithToolCall(callID))
	}
	resp.ToolCallID = callID
	return c.JSON(http.StatusOK, resp)
}
