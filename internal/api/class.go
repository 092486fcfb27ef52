package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Zackrieg/PruebaImagineApps/internal/entity"
	"github.com/Zackrieg/PruebaImagineApps/internal/service"
)

type ClassHandler struct {
	classService *service.ClassService
}

// NewClassHandler creates a new instance of ClassHandler.
func NewClassHandler(classService *service.ClassService) *ClassHandler {
	return &ClassHandler{classService: classService}
}

type createClassRequest struct {
	Name      string `json:"name" validate:"required"`
	SubjectID int    `json:"subject_id" validate:"required"`
}

// CreateClass creates a new class --> POST /class/
func (h *ClassHandler) CreateClass(c echo.Context) error {
	var req createClassRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload(c, "invalid request payload")
	}
	if err := validate.Struct(&req); err != nil {
		return invalidPayload(c, validationMessage(err))
	}

	class, err := h.classService.CreateClass(c.Request().Context(), &entity.Class{
		Name:      req.Name,
		SubjectID: req.SubjectID,
	})
	if err != nil {
		return errorJSON(c, "Class", err)
	}

	return c.JSON(http.StatusOK, class)
}

// GetClass retrieves a class by ID --> GET /class/:id
func (h *ClassHandler) GetClass(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return invalidPayload(c, "invalid ID")
	}

	class, err := h.classService.GetClassByID(c.Request().Context(), id)
	if err != nil {
		return errorJSON(c, "Class", err)
	}

	return c.JSON(http.StatusOK, class)
}

// UpdateClass partially updates a class --> PUT /class/:id
func (h *ClassHandler) UpdateClass(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return invalidPayload(c, "invalid ID")
	}

	var patch entity.ClassPatch
	if err := c.Bind(&patch); err != nil {
		return invalidPayload(c, "invalid request payload")
	}

	class, err := h.classService.UpdateClass(c.Request().Context(), id, patch)
	if err != nil {
		return errorJSON(c, "Class", err)
	}

	return c.JSON(http.StatusOK, class)
}

// DeleteClass deletes a class --> DELETE /class/:id
func (h *ClassHandler) DeleteClass(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return invalidPayload(c, "invalid ID")
	}

	if err := h.classService.DeleteClass(c.Request().Context(), id); err != nil {
		return errorJSON(c, "Class", err)
	}

	return c.JSON(http.StatusOK, map[string]string{"detail": "Class deleted successfully"})
}
