package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erickazee/jobtrack/internal/apperrors"
	"github.com/erickazee/jobtrack/internal/models"
)

func TestLog_SwallowsWriteFailure(t *testing.T) {
	// No migrated schema, so every insert fails. Log must not surface that.
	svc := NewEventService(newEmptyTestDB(t))

	require.NotPanics(t, func() {
		svc.Log(context.Background(), "job-1", testUser, EventTailored, map[string]any{"label": "x"})
	})
}

func TestRecord_PropagatesWriteFailure(t *testing.T) {
	svc := NewEventService(newEmptyTestDB(t))

	_, err := svc.Record(context.Background(), "job-1", testUser, EventTailored, nil)

	var dataErr *apperrors.DataAccessError
	require.ErrorAs(t, err, &dataErr)
}

func TestRecord_StoresPayload(t *testing.T) {
	svc := NewEventService(newTestDB(t))

	event, err := svc.Record(context.Background(), "job-1", testUser, EventPrepared,
		map[string]any{"subject": "Application: Acme – Engineer (Eric Kazee)"})
	require.NoError(t, err)
	require.NotEmpty(t, event.ID)

	var stored models.ApplicationEvent
	require.NoError(t, svc.DB.First(&stored, "id = ?", event.ID).Error)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(stored.Payload, &payload))
	assert.Equal(t, "Application: Acme – Engineer (Eric Kazee)", payload["subject"])
}

func TestRecord_NilPayload(t *testing.T) {
	svc := NewEventService(newTestDB(t))

	event, err := svc.Record(context.Background(), "job-1", testUser, EventTailored, nil)
	require.NoError(t, err)
	assert.Empty(t, event.Payload)
}

func TestEvents_NewestFirstScopedToJobAndUser(t *testing.T) {
	svc := NewEventService(newTestDB(t))
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	rows := []*models.ApplicationEvent{
		{JobID: "job-1", UserID: testUser, Type: EventTailored, CreatedAt: base},
		{JobID: "job-1", UserID: testUser, Type: EventPrepared, CreatedAt: base.Add(time.Hour)},
		{JobID: "job-2", UserID: testUser, Type: EventTailored, CreatedAt: base},
		{JobID: "job-1", UserID: "someone-else", Type: EventTailored, CreatedAt: base},
	}
	for _, row := range rows {
		require.NoError(t, svc.DB.Create(row).Error)
	}

	events, err := svc.Events(ctx, testUser, "job-1")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, EventPrepared, events[0].Type)
	assert.Equal(t, EventTailored, events[1].Type)
}
