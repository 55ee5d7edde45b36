package service

import (
	"context"
	"testing"

	"agrismart/internal/config"
	"agrismart/internal/models"
	"agrismart/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type serviceFixture struct {
	svc      *Service
	timers   *fakeTimers
	events   *fakeEventRepo
	readings *fakeReadingRepo
}

func newServiceFixture(t *testing.T) serviceFixture {
	t.Helper()
	f := serviceFixture{timers: &fakeTimers{}, events: &fakeEventRepo{}, readings: &fakeReadingRepo{}}
	svc, err := NewService(
		&repository.Repository{EventRepo: f.events, ReadingRepo: f.readings},
		config.Default(),
		Deps{Rand: constRand(0.5), AfterFunc: f.timers.AfterFunc, Now: fixedClock},
	)
	require.NoError(t, err)
	f.svc = svc
	return f
}

func TestService_InitialSnapshot(t *testing.T) {
	f := newServiceFixture(t)

	snap := f.svc.Snapshot()

	assert.Equal(t, SeedSensor, snap.Sensor)
	assert.Equal(t, SeedWeather, snap.Weather)
	assert.Equal(t, "infection", snap.Chart.Key)
	assert.Empty(t, snap.Notifications)
	assert.Equal(t, 0, snap.Unread)
	assert.Equal(t, models.SprayIdle, snap.Spray)
	assert.False(t, snap.AutoMode)
	assert.Equal(t, fixedNow, snap.UpdatedAt)
}

func TestService_SprayFlow(t *testing.T) {
	f := newServiceFixture(t)

	assert.Equal(t, models.SprayActive, f.svc.ToggleSpray())
	assert.True(t, f.svc.StopSpray())
	f.timers.Fire(0)

	assert.Equal(t, models.SprayIdle, f.svc.SprayState())
	notes := f.svc.Notifications()
	require.Len(t, notes, 2)
	assert.Equal(t, msgSprayCompleted, notes[0].Message)
	assert.Equal(t, 2, f.svc.Unread())

	f.svc.MarkNotificationsRead()
	assert.Equal(t, 0, f.svc.Unread())
}

func TestService_AutoMode(t *testing.T) {
	f := newServiceFixture(t)

	f.svc.SetAutoMode(true)
	f.svc.SetAutoMode(true)
	assert.True(t, f.svc.AutoMode())

	f.svc.SetAutoMode(false)
	assert.False(t, f.svc.AutoMode())

	notes := f.svc.Notifications()
	require.Len(t, notes, 2, "repeat of the same value is silent")
	assert.Equal(t, msgAutoModeOff, notes[0].Message)
	assert.Equal(t, msgAutoModeOn, notes[1].Message)
	assert.Equal(t, models.SeverityInfo, notes[0].Severity)
	assert.Equal(t, models.SprayIdle, f.svc.SprayState(), "auto mode does not drive the sprayer")
}

func TestService_RefreshCamera(t *testing.T) {
	f := newServiceFixture(t)

	f.svc.RefreshCamera()

	notes := f.svc.Notifications()
	require.Len(t, notes, 1)
	assert.Equal(t, msgCameraRefresh, notes[0].Message)
	assert.Equal(t, "now", notes[0].TimestampLabel)
}

func TestService_SelectChart(t *testing.T) {
	f := newServiceFixture(t)

	s, ok := f.svc.SelectChart("usage")
	require.True(t, ok)
	assert.Equal(t, "usage", s.Key)
	assert.Equal(t, "usage", f.svc.ActiveChart().Key)

	_, ok = f.svc.SelectChart("bogus")
	assert.False(t, ok)
	assert.Equal(t, "usage", f.svc.ActiveChart().Key)
	assert.Len(t, f.svc.Charts(), 2)
}

func TestService_RunRecordsAuditTrail(t *testing.T) {
	f := newServiceFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		f.svc.Run(ctx)
		close(done)
	}()

	f.svc.SelectChart("usage")
	f.svc.Store.Mutate()
	cancel()
	<-done

	types := map[string]bool{}
	for _, e := range f.events.Appended() {
		types[e.Type] = true
	}
	assert.True(t, types[models.EventChartSelect])
	assert.Len(t, f.readings.Appended(), 1)
}

func TestService_History(t *testing.T) {
	f := newServiceFixture(t)
	f.readings.samples = []models.ReadingSample{{ID: 2}, {ID: 1}}

	got, err := f.svc.Readings(context.Background(), 10)

	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, 10, f.readings.gotLimit)
}
