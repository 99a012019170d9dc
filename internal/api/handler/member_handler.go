package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sahayog/membership-system/internal/api/metrics"
	"github.com/sahayog/membership-system/internal/core/domain"
	"github.com/sahayog/membership-system/internal/core/ports"
)

// MemberHandler handles HTTP requests for member registration, search, and
// partial updates.
type MemberHandler struct {
	service ports.MemberService
}

func NewMemberHandler(service ports.MemberService) *MemberHandler {
	return &MemberHandler{service: service}
}

// Register handles POST /api/register.
//
// @Summary      Register a new member
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string                 false  "Idempotency key to prevent duplicate submissions"
// @Param        body             body      registerMemberRequest  true   "Registration details"
// @Success      201              {object}  registerMemberResponse
// @Failure      400              {object}  errorResponse
// @Failure      500              {object}  errorResponse
// @Router       /api/register [post]
func (h *MemberHandler) Register(c echo.Context) error {
	var req registerMemberRequest
	if err := c.Bind(&req); err != nil {
		metrics.RegistrationErrorsTotal.WithLabelValues("validation").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.RegistrationErrorsTotal.WithLabelValues("validation").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input, err := toRegisterInput(req, c.Request().Header.Get("Idempotency-Key"))
	if err != nil {
		metrics.RegistrationErrorsTotal.WithLabelValues("validation").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, "dob must match format 2006-01-02")
	}

	result, err := h.service.Register(c.Request().Context(), input)
	if err != nil {
		metrics.RegistrationErrorsTotal.WithLabelValues("internal").Inc()
		return err
	}

	if result.AlreadyExisted {
		metrics.RegistrationsTotal.WithLabelValues("replayed").Inc()
	} else {
		metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	}

	return c.JSON(http.StatusCreated, registerMemberResponse{
		Message: "Registration successful!",
		ID:      result.ID,
	})
}

// Search handles GET /api/members.
//
// @Summary      Search members
// @Tags         members
// @Produce      json
// @Param        searchFName  query     string  false  "First-name fragment (case-insensitive substring)"
// @Param        searchLName  query     string  false  "Last-name fragment (case-insensitive substring)"
// @Param        searchEmail  query     string  false  "Email (exact, case-insensitive)"
// @Param        searchPhone  query     string  false  "Phone (exact)"
// @Success      200          {array}   memberResponse
// @Failure      500          {object}  errorResponse
// @Router       /api/members [get]
func (h *MemberHandler) Search(c echo.Context) error {
	members, err := h.service.Search(c.Request().Context(), ports.SearchMembersInput{
		FirstName: c.QueryParam("searchFName"),
		LastName:  c.QueryParam("searchLName"),
		Email:     c.QueryParam("searchEmail"),
		Phone:     c.QueryParam("searchPhone"),
	})
	if err != nil {
		return err
	}

	metrics.SearchesTotal.Inc()
	return c.JSON(http.StatusOK, toMemberListResponse(members))
}

// Update handles PUT /api/members/:id.
//
// @Summary      Partially update a member
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Member id"
// @Param        body  body      updateMemberRequest  true  "Fields to update"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/members/{id} [put]
func (h *MemberHandler) Update(c echo.Context) error {
	var req updateMemberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	err := h.service.Update(c.Request().Context(), c.Param("id"), toUpdateInput(req))
	if err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			metrics.UpdatesTotal.WithLabelValues("not_found").Inc()
		}
		return err
	}

	metrics.UpdatesTotal.WithLabelValues("updated").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Member updated successfully"})
}
