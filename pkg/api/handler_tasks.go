package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/agentkube/investigator/ent/task"
	"github.com/agentkube/investigator/pkg/models"
)

// maxListLimit caps page size for task listings.
const maxListLimit = 100

// listTasksHandler handles GET /api/v1/tasks.
func (s *Server) listTasksHandler(c *echo.Context) error {
	filters := models.TaskFilters{
		Limit: 25,
	}

	if v := c.QueryParam("status"); v != "" {
		if err := task.StatusValidator(task.Status(v)); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid status: "+v)
		}
		filters.Status = v
	}
	if v := c.QueryParam("severity"); v != "" {
		if err := task.SeverityValidator(task.Severity(v)); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid severity: "+v)
		}
		filters.Severity = v
	}
	if v := c.QueryParam("resolved"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "resolved must be true or false")
		}
		filters.Resolved = &b
	}
	if v := c.QueryParam("search"); v != "" {
		if len(v) < 3 {
			return echo.NewHTTPError(http.StatusBadRequest, "search query must be at least 3 characters")
		}
		filters.Search = v
	}
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= maxListLimit {
			filters.Limit = n
		}
	}
	if v := c.QueryParam("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			filters.Offset = n
		}
	}

	result, err := s.tasks.ListTasks(c.Request().Context(), filters)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// resolveTaskHandler handles POST /api/v1/tasks/:id/resolve. The body is
// optional; absence means resolved=true.
func (s *Server) resolveTaskHandler(c *echo.Context) error {
	taskID := c.Param("id")
	if taskID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task id is required")
	}

	req := struct {
		Resolved *bool `json:"resolved"`
	}{}
	if c.Request().ContentLength > 0 {
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
		}
	}
	resolved := true
	if req.Resolved != nil {
		resolved = *req.Resolved
	}

	row, err := s.tasks.SetResolved(c.Request().Context(), taskID, resolved)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &ResolveResponse{
		TaskID:   row.ID,
		Resolved: row.Resolved,
	})
}
