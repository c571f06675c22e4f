package service

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"appboard_backend/internals/constants"
	appModel "appboard_backend/internals/features/apps/model"
)

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(constants.StatusPending, constants.StatusApproved))
	assert.True(t, CanTransition(constants.StatusPending, constants.StatusRejected))
	assert.True(t, CanTransition(constants.StatusApproved, constants.StatusRejected)) // revoke
	assert.True(t, CanTransition(constants.StatusRejected, constants.StatusApproved)) // reinstate

	assert.False(t, CanTransition(constants.StatusApproved, constants.StatusPending))
	assert.False(t, CanTransition(constants.StatusRejected, constants.StatusPending))
	assert.False(t, CanTransition(constants.StatusPending, constants.StatusPending))
}

func TestTransitionChain(t *testing.T) {
	m := &appModel.AppModel{Status: constants.StatusPending}

	require.NoError(t, Transition(m, constants.StatusApproved))
	assert.Equal(t, constants.StatusApproved, m.Status)

	require.NoError(t, Transition(m, constants.StatusRejected))
	assert.Equal(t, constants.StatusRejected, m.Status)

	require.NoError(t, Transition(m, constants.StatusApproved))
	assert.Equal(t, constants.StatusApproved, m.Status)
}

func TestTransitionRejected(t *testing.T) {
	m := &appModel.AppModel{Status: constants.StatusApproved}

	err := Transition(m, constants.StatusPending)
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	// status tidak berubah saat transisi ditolak
	assert.Equal(t, constants.StatusApproved, m.Status)

	err = Transition(m, "archived")
	require.Error(t, err)
}

func TestIsPubliclyVisible(t *testing.T) {
	// live hanya tampil setelah approved
	live := &appModel.AppModel{SubmissionType: constants.SubmissionLive, Status: constants.StatusPending}
	assert.False(t, IsPubliclyVisible(live))
	live.Status = constants.StatusApproved
	assert.True(t, IsPubliclyVisible(live))
	live.Status = constants.StatusRejected
	assert.False(t, IsPubliclyVisible(live))

	// listing test tampil apapun statusnya
	test := &appModel.AppModel{SubmissionType: constants.SubmissionTest, Status: constants.StatusPending}
	assert.True(t, IsPubliclyVisible(test))
	test.Status = constants.StatusRejected
	assert.True(t, IsPubliclyVisible(test))
}
