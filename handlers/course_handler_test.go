package handlers_test

import (
	"net/http"
	"testing"

	"github.com/kwameasante/study_planner/handlers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCourses(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/v1/courses", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var courses []handlers.Course
	decodeBody(t, resp, &courses)
	require.Len(t, courses, 4)

	ids := make([]string, len(courses))
	for i, course := range courses {
		ids[i] = course.ID
	}
	assert.Equal(t, []string{"general-science", "general-arts", "business", "home-economics"}, ids)
}

func TestGetCourseSubjects(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/v1/courses/business/subjects", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		CourseID string             `json:"course_id"`
		Subjects []handlers.Subject `json:"subjects"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "business", body.CourseID)
	assert.NotEmpty(t, body.Subjects)

	names := make(map[string]bool)
	for _, s := range body.Subjects {
		names[s.Name] = true
	}
	assert.True(t, names["Accounting"])
	assert.True(t, names["Economics"])
}

func TestGetCourseSubjectsUnknownCourse(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/v1/courses/visual-arts/subjects", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
