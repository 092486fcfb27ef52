package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Zackrieg/PruebaImagineApps/internal/entity"
	"github.com/Zackrieg/PruebaImagineApps/internal/service"
)

type StudentClassHandler struct {
	studentClassService *service.StudentClassService
}

// NewStudentClassHandler creates a new instance of StudentClassHandler.
func NewStudentClassHandler(studentClassService *service.StudentClassService) *StudentClassHandler {
	return &StudentClassHandler{studentClassService: studentClassService}
}

type createStudentClassRequest struct {
	StudentID int `json:"student_id" validate:"required"`
	ClassID   int `json:"class_id" validate:"required"`
}

// CreateStudentClass enrolls a student in a class --> POST /studentclass/
func (h *StudentClassHandler) CreateStudentClass(c echo.Context) error {
	var req createStudentClassRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload(c, "invalid request payload")
	}
	if err := validate.Struct(&req); err != nil {
		return invalidPayload(c, validationMessage(err))
	}

	sc, err := h.studentClassService.CreateStudentClass(c.Request().Context(), &entity.StudentClass{
		StudentID: req.StudentID,
		ClassID:   req.ClassID,
	})
	if err != nil {
		return errorJSON(c, "StudentClass", err)
	}

	return c.JSON(http.StatusOK, sc)
}

// GetStudentClass retrieves an enrollment by ID --> GET /studentclass/:id
func (h *StudentClassHandler) GetStudentClass(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return invalidPayload(c, "invalid ID")
	}

	sc, err := h.studentClassService.GetStudentClassByID(c.Request().Context(), id)
	if err != nil {
		return errorJSON(c, "StudentClass", err)
	}

	return c.JSON(http.StatusOK, sc)
}

// UpdateStudentClass partially updates an enrollment --> PUT /studentclass/:id
func (h *StudentClassHandler) UpdateStudentClass(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return invalidPayload(c, "invalid ID")
	}

	var patch entity.StudentClassPatch
	if err := c.Bind(&patch); err != nil {
		return invalidPayload(c, "invalid request payload")
	}

	sc, err := h.studentClassService.UpdateStudentClass(c.Request().Context(), id, patch)
	if err != nil {
		return errorJSON(c, "StudentClass", err)
	}

	return c.JSON(http.StatusOK, sc)
}

// DeleteStudentClass removes an enrollment --> DELETE /studentclass/:id
func (h *StudentClassHandler) DeleteStudentClass(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return invalidPayload(c, "invalid ID")
	}

	if err := h.studentClassService.DeleteStudentClass(c.Request().Context(), id); err != nil {
		return errorJSON(c, "StudentClass", err)
	}

	return c.JSON(http.StatusOK, map[string]string{"detail": "StudentClass deleted successfully"})
}
