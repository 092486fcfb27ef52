package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Register wires the public token route, the health check, and the
// gated entity CRUD routes onto the echo instance.
func Register(e *echo.Echo, gate echo.MiddlewareFunc, authH *AuthHandler, subjectH *SubjectHandler, classH *ClassHandler, studentH *StudentHandler, studentClassH *StudentClassHandler) {
	e.POST("/token/", authH.IssueToken)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":  "ok",
			"service": "school-api",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	g := e.Group("", gate)

	g.POST("/subject/", subjectH.CreateSubject)
	g.GET("/subject/:id", subjectH.GetSubject)
	g.PUT("/subject/:id", subjectH.UpdateSubject)
	g.DELETE("/subject/:id", subjectH.DeleteSubject)

	g.POST("/class/", classH.CreateClass)
	g.GET("/class/:id", classH.GetClass)
	g.PUT("/class/:id", classH.UpdateClass)
	g.DELETE("/class/:id", classH.DeleteClass)

	g.POST("/student/", studentH.CreateStudent)
	g.GET("/student/:id", studentH.GetStudent)
	g.PUT("/student/:id", studentH.UpdateStudent)
	g.DELETE("/student/:id", studentH.DeleteStudent)

	g.POST("/studentclass/", studentClassH.CreateStudentClass)
	g.GET("/studentclass/:id", studentClassH.GetStudentClass)
	g.PUT("/studentclass/:id", studentClassH.UpdateStudentClass)
	g.DELETE("/studentclass/:id", studentClassH.DeleteStudentClass)
}
