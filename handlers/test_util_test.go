package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kwameasante/study_planner/database"
	"github.com/kwameasante/study_planner/models"
	"github.com/kwameasante/study_planner/routes"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

// setupApp points the global DB at a fresh in-memory database and wires the
// real routes, JWT middleware included.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("JWT_SECRET", testSecret)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.QuizQuestion{}, &models.QuizAttempt{}))
	database.DB = db

	app := fiber.New()
	routes.PublicRoutes(app)
	routes.AuthRoutes(app)
	routes.ProfileRoutes(app)
	routes.QuizRoutes(app)
	return app
}

func createTestUser(t *testing.T) models.User {
	t.Helper()
	user := models.User{
		ID:       uuid.New(),
		FullName: "Ama Mensah",
		Email:    fmt.Sprintf("%s@example.com", uuid.NewString()[:8]),
		Password: "not-a-real-hash",
	}
	require.NoError(t, database.DB.Create(&user).Error)
	return user
}

func mintToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func seedQuestion(t *testing.T, subject, correct string) models.QuizQuestion {
	t.Helper()
	question := models.QuizQuestion{
		ID:            uuid.New(),
		Subject:       subject,
		Question:      fmt.Sprintf("%s question", subject),
		OptionA:       "Option A",
		OptionB:       "Option B",
		OptionC:       "Option C",
		OptionD:       "Option D",
		CorrectAnswer: correct,
	}
	require.NoError(t, database.DB.Create(&question).Error)
	return question
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
