package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Zackrieg/PruebaImagineApps/internal/entity"
	"github.com/Zackrieg/PruebaImagineApps/internal/service"
)

type StudentHandler struct {
	studentService *service.StudentService
}

// NewStudentHandler creates a new instance of StudentHandler.
func NewStudentHandler(studentService *service.StudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

type createStudentRequest struct {
	Name string `json:"name" validate:"required"`
}

// CreateStudent creates a new student --> POST /student/
func (h *StudentHandler) CreateStudent(c echo.Context) error {
	var req createStudentRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload(c, "invalid request payload")
	}
	if err := validate.Struct(&req); err != nil {
		return invalidPayload(c, validationMessage(err))
	}

	student, err := h.studentService.CreateStudent(c.Request().Context(), &entity.Student{Name: req.Name})
	if err != nil {
		return errorJSON(c, "Student", err)
	}

	return c.JSON(http.StatusOK, student)
}

// GetStudent retrieves a student by ID --> GET /student/:id
func (h *StudentHandler) GetStudent(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return invalidPayload(c, "invalid ID")
	}

	student, err := h.studentService.GetStudentByID(c.Request().Context(), id)
	if err != nil {
		return errorJSON(c, "Student", err)
	}

	return c.JSON(http.StatusOK, student)
}

// UpdateStudent partially updates a student --> PUT /student/:id
func (h *StudentHandler) UpdateStudent(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return invalidPayload(c, "invalid ID")
	}

	var patch entity.StudentPatch
	if err := c.Bind(&patch); err != nil {
		return invalidPayload(c, "invalid request payload")
	}

	student, err := h.studentService.UpdateStudent(c.Request().Context(), id, patch)
	if err != nil {
		return errorJSON(c, "Student", err)
	}

	return c.JSON(http.StatusOK, student)
}

// DeleteStudent deletes a student --> DELETE /student/:id
func (h *StudentHandler) DeleteStudent(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return invalidPayload(c, "invalid ID")
	}

	if err := h.studentService.DeleteStudent(c.Request().Context(), id); err != nil {
		return errorJSON(c, "Student", err)
	}

	return c.JSON(http.StatusOK, map[string]string{"detail": "Student deleted successfully"})
}
