package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Zackrieg/PruebaImagineApps/internal/entity"
	"github.com/Zackrieg/PruebaImagineApps/internal/service"
)

type SubjectHandler struct {
	subjectService *service.SubjectService
}

// NewSubjectHandler creates a new instance of SubjectHandler.
func NewSubjectHandler(subjectService *service.SubjectService) *SubjectHandler {
	return &SubjectHandler{subjectService: subjectService}
}

type createSubjectRequest struct {
	Name string `json:"name" validate:"required"`
}

// CreateSubject creates a new subject --> POST /subject/
func (h *SubjectHandler) CreateSubject(c echo.Context) error {
	var req createSubjectRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload(c, "invalid request payload")
	}
	if err := validate.Struct(&req); err != nil {
		return invalidPayload(c, validationMessage(err))
	}

	subject, err := h.subjectService.CreateSubject(c.Request().Context(), &entity.Subject{Name: req.Name})
	if err != nil {
		return errorJSON(c, "Subject", err)
	}

	return c.JSON(http.StatusOK, subject)
}

// GetSubject retrieves a subject by ID --> GET /subject/:id
func (h *SubjectHandler) GetSubject(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return invalidPayload(c, "invalid ID")
	}

	subject, err := h.subjectService.GetSubjectByID(c.Request().Context(), id)
	if err != nil {
		return errorJSON(c, "Subject", err)
	}

	return c.JSON(http.StatusOK, subject)
}

// UpdateSubject partially updates a subject --> PUT /subject/:id
func (h *SubjectHandler) UpdateSubject(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return invalidPayload(c, "invalid ID")
	}

	var patch entity.SubjectPatch
	if err := c.Bind(&patch); err != nil {
		return invalidPayload(c, "invalid request payload")
	}

	subject, err := h.subjectService.UpdateSubject(c.Request().Context(), id, patch)
	if err != nil {
		return errorJSON(c, "Subject", err)
	}

	return c.JSON(http.StatusOK, subject)
}

// DeleteSubject deletes a subject --> DELETE /subject/:id
func (h *SubjectHandler) DeleteSubject(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return invalidPayload(c, "invalid ID")
	}

	if err := h.subjectService.DeleteSubject(c.Request().Context(), id); err != nil {
		return errorJSON(c, "Subject", err)
	}

	return c.JSON(http.StatusOK, map[string]string{"detail": "Subject deleted successfully"})
}
