package handler

import (
	"errors"
	"net/http"

	"github.com/airlinehq/reservation-service/internal/dto"
	"github.com/airlinehq/reservation-service/internal/models"
	"github.com/airlinehq/reservation-service/internal/repository"
	"github.com/airlinehq/reservation-service/internal/service"
	"github.com/labstack/echo/v4"
)

type ReservationHandler struct {
	svc service.ReservationService
}

func NewReservationHandler(svc service.ReservationService) *ReservationHandler {
	return &ReservationHandler{svc: svc}
}

func (h *ReservationHandler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.GET("/flights", h.SearchFlights)
	api.GET("/reservations", h.ListReservations)
	api.POST("/reservations", h.CreateReservation)
	api.DELETE("/reservations/:id", h.CancelReservation)
	api.POST("/reservations/:id/check-in", h.CheckIn)
	api.POST("/reservations/:id/confirm-payment", h.ConfirmCashPayment)
}

func (h *ReservationHandler) CreateReservation(c echo.Context) error {
	var req dto.CreateReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	actor, err := parseActor(req.ActorParams)
	if err != nil {
		return err
	}
	if req.FlightNumber == "" || req.SeatNumber == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "flight_number and seat_number are required")
	}

	payment := service.PaymentInput{
		Method:       service.PaymentMethod(req.PaymentMethod),
		SavedCardCVV: req.SavedCardCVV,
	}
	if req.Card != nil {
		payment.Card = &service.CardDetails{
			CardNumber: req.Card.CardNumber,
			ExpDate:    req.Card.ExpDate,
			CardHolder: req.Card.CardHolder,
			CVV:        req.Card.CVV,
		}
	}

	res, err := h.svc.Book(c.Request().Context(), actor, req.FlightNumber, req.SeatNumber, payment)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, dto.ToReservationResponse(res))
}

func (h *ReservationHandler) CancelReservation(c echo.Context) error {
	actor, err := bindActor(c)
	if err != nil {
		return err
	}
	if err := h.svc.Cancel(c.Request().Context(), actor, c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ReservationHandler) CheckIn(c echo.Context) error {
	actor, err := bindActor(c)
	if err != nil {
		return err
	}
	pass, err := h.svc.CheckIn(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBoardingPassResponse(pass))
}

func (h *ReservationHandler) ConfirmCashPayment(c echo.Context) error {
	actor, err := bindActor(c)
	if err != nil {
		return err
	}
	res, err := h.svc.ConfirmCashPayment(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.ToReservationResponse(res))
}

func (h *ReservationHandler) ListReservations(c echo.Context) error {
	actor, err := bindActor(c)
	if err != nil {
		return err
	}
	reservations, err := h.svc.ListByPassenger(c.Request().Context(), actor)
	if err != nil {
		return httpError(err)
	}
	resp := make([]dto.ReservationResponse, len(reservations))
	for i := range reservations {
		resp[i] = dto.ToReservationResponse(&reservations[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *ReservationHandler) SearchFlights(c echo.Context) error {
	flights, err := h.svc.SearchFlights(c.Request().Context(), c.QueryParam("origin"), c.QueryParam("destination"))
	if err != nil {
		return httpError(err)
	}
	resp := make([]dto.FlightResponse, len(flights))
	for i, fl := range flights {
		resp[i] = dto.ToFlightResponse(fl)
	}
	return c.JSON(http.StatusOK, resp)
}

// bindActor reads the caller's identity from the query string on GET and
// DELETE requests and from the JSON body on POST.
func bindActor(c echo.Context) (models.Actor, error) {
	var params dto.ActorParams
	if err := c.Bind(&params); err != nil {
		return models.Actor{}, echo.NewHTTPError(http.StatusBadRequest, "invalid request")
	}
	return parseActor(params)
}

func parseActor(params dto.ActorParams) (models.Actor, error) {
	if params.Username == "" {
		return models.Actor{}, echo.NewHTTPError(http.StatusBadRequest, "username is required")
	}
	switch params.Role {
	case "", string(models.RolePassenger):
		return models.Actor{Role: models.RolePassenger, Username: params.Username}, nil
	case string(models.RoleBookingAgent), "agent":
		return models.Actor{Role: models.RoleBookingAgent, Username: params.Username}, nil
	default:
		return models.Actor{}, echo.NewHTTPError(http.StatusBadRequest, "unknown role")
	}
}

func httpError(err error) error {
	switch {
	case errors.Is(err, service.ErrFlightNotFound),
		errors.Is(err, service.ErrReservationNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidSeat):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrSeatTaken),
		errors.Is(err, service.ErrPaymentPending):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidPayment):
		return echo.NewHTTPError(http.StatusPaymentRequired, err.Error())
	case errors.Is(err, repository.ErrStoreUnavailable):
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
