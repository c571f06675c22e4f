package model

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"appboard_backend/internals/constants"
)

func strptr(s string) *string { return &s }

func dateptr(s string) *datatypes.Date {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	d := datatypes.Date(t)
	return &d
}

func validLiveApp() *AppModel {
	return &AppModel{
		Name:           "MyApp Pro",
		SubmissionType: constants.SubmissionLive,
		Platform:       strptr(constants.PlatformAndroid),
		PlayURL:        strptr("https://play.google.com/store/apps/details?id=com.example"),
		Description:    strptr("Contoh app live"),
		IconURL:        strptr("https://cdn.example.com/icon.png"),
	}
}

func validTestApp() *AppModel {
	return &AppModel{
		Name:           "MyApp Beta",
		SubmissionType: constants.SubmissionTest,
		TestURL:        strptr("https://test.example.com/join"),
		IconURL:        strptr("data:image/png;base64,iVBORw0KGgo="),
		StartDate:      dateptr("2024-03-01"),
		EndDate:        dateptr("2024-03-15"),
	}
}

func TestValidateLiveApp(t *testing.T) {
	app := validLiveApp()
	require.NoError(t, app.Validate())
	assert.Equal(t, constants.StatusPending, app.Status) // default pending

	// live tidak bawa tanggal
	app = validLiveApp()
	app.StartDate = dateptr("2024-03-01")
	app.EndDate = dateptr("2024-03-15")
	require.NoError(t, app.Validate())
	assert.Nil(t, app.StartDate)
	assert.Nil(t, app.EndDate)
}

func TestValidateLiveAppMissingPlatform(t *testing.T) {
	app := validLiveApp()
	app.Platform = nil

	err := app.Validate()
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	assert.Contains(t, fe.Message, "platform")
}

func TestValidateLiveAppMissingFields(t *testing.T) {
	for name, mutate := range map[string]func(*AppModel){
		"play_url":    func(a *AppModel) { a.PlayURL = nil },
		"description": func(a *AppModel) { a.Description = strptr("  ") },
		"icon_url":    func(a *AppModel) { a.IconURL = nil },
		"name":        func(a *AppModel) { a.Name = "   " },
	} {
		app := validLiveApp()
		mutate(app)
		assert.Error(t, app.Validate(), "field %s", name)
	}
}

func TestValidateTestApp(t *testing.T) {
	app := validTestApp()
	require.NoError(t, app.Validate())

	// platform/play_url dipaksa null untuk test
	app = validTestApp()
	app.Platform = strptr(constants.PlatformIOS)
	app.PlayURL = strptr("https://play.google.com/x")
	require.NoError(t, app.Validate())
	assert.Nil(t, app.Platform)
	assert.Nil(t, app.PlayURL)
}

func TestValidateTestAppEndBeforeStart(t *testing.T) {
	app := validTestApp()
	app.StartDate = dateptr("2024-03-10")
	app.EndDate = dateptr("2024-03-05")

	err := app.Validate()
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	assert.Contains(t, fe.Message, "end_date")
}

func TestValidateTestAppMissingDates(t *testing.T) {
	app := validTestApp()
	app.EndDate = nil
	assert.Error(t, app.Validate())

	app = validTestApp()
	app.StartDate = nil
	assert.Error(t, app.Validate())

	app = validTestApp()
	app.TestURL = nil
	assert.Error(t, app.Validate())
}

func TestValidateInvalidSubmissionType(t *testing.T) {
	app := validLiveApp()
	app.SubmissionType = "beta"
	assert.Error(t, app.Validate())
}
