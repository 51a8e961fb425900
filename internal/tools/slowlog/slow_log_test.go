package slowlog

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSlowLog(t *testing.T) {
	t.Run("should measure breakpoints", func(t *testing.T) {
		out := &bytes.Buffer{}
		log := zerolog.New(out)

		tests := []struct {
			name          string
			logic         func(slowLog Logger) []time.Duration
			expectedTimes []time.Duration
		}{
			{
				name: "single slowlog",
				logic: func(slowLog Logger) []time.Duration {
					slowLog.Start("pair")
					time.Sleep(1 * time.Millisecond)
					return []time.Duration{slowLog.Stop("pair")}
				},
				expectedTimes: []time.Duration{time.Millisecond},
			},
			{
				name: "nested slowlogs",
				logic: func(slowLog Logger) []time.Duration {
					slowLog.Start("search")
					time.Sleep(1 * time.Millisecond)

					slowLog.Start("pair")
					time.Sleep(1 * time.Millisecond)
					inner := slowLog.Stop("pair")

					time.Sleep(1 * time.Millisecond)
					outer := slowLog.Stop("search")

					return []time.Duration{inner, outer}
				},
				expectedTimes: []time.Duration{time.Millisecond, 3 * time.Millisecond},
			},
			{
				name: "restarted breakpoint",
				logic: func(slowLog Logger) []time.Duration {
					slowLog.Start("same")
					time.Sleep(3 * time.Millisecond)
					slowLog.Start("same")
					time.Sleep(1 * time.Millisecond)

					return []time.Duration{slowLog.Stop("same")}
				},
				expectedTimes: []time.Duration{1 * time.Millisecond},
			},
			{
				name: "stop without start",
				logic: func(slowLog Logger) []time.Duration {
					return []time.Duration{slowLog.Stop("never-started")}
				},
				expectedTimes: []time.Duration{0},
			},
		}

		slowLog := CreateLogger(&log, 0)

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				times := test.logic(slowLog)
				assert.Equal(t, 0, len(slowLog.ongoingTimers))
				for i, expectedTime := range test.expectedTimes {
					assert.True(t, times[i] >= expectedTime)
				}
			})
		}
	})

	t.Run("should escalate breakpoints over the threshold", func(t *testing.T) {
		out := &bytes.Buffer{}
		log := zerolog.New(out)

		slowLog := CreateLogger(&log, time.Millisecond)
		slowLog.Start("slow")
		time.Sleep(2 * time.Millisecond)
		slowLog.Stop("slow")

		assert.Contains(t, out.String(), `"level":"warn"`)
		assert.Contains(t, out.String(), `"label":"slowlog"`)
		assert.Contains(t, out.String(), `"breakpoint_name":"slow"`)
	})
}
