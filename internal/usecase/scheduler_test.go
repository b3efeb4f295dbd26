package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FeedHarvester/internal/domain"
)

type syncDriver struct {
	ticks   int
	stopped bool
}

func (d *syncDriver) Start(_ context.Context, job func(time.Time)) error {
	for n := 0; n < d.ticks; n++ {
		job(fixedNow())
	}
	return nil
}

func (d *syncDriver) Stop(context.Context) error {
	d.stopped = true
	return nil
}

func TestSchedulerRunsPipelineOnEveryTick(t *testing.T) {
	t.Parallel()

	h := newHarness()
	h.feeds.items["feed"] = []domain.FeedItem{{Title: "a", Description: "agritech"}}
	driver := &syncDriver{ticks: 2}

	s := NewScheduler(driver, h.pipeline(defaultPipelineConfig("feed")), nil)
	require.NoError(t, s.Start(context.Background()))
	require.NoError(t, s.Stop(context.Background()))

	assert.Equal(t, 2, h.records.calls)
	assert.True(t, driver.stopped)
}

func TestSchedulerWithoutDriver(t *testing.T) {
	t.Parallel()

	s := NewScheduler(nil, nil, nil)
	assert.NoError(t, s.Start(context.Background()))
	assert.NoError(t, s.Stop(context.Background()))
}
