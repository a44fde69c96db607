package markup

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStats_Counters(t *testing.T) {
	s := NewStats()
	s.IncrCounter(KeyFormatCalls, 1)
	s.IncrCounter(KeyFormatCallsFor.For("bold"), 2)

	assert.Equal(t, int64(1), s.GetCounter(KeyFormatCalls))
	assert.Equal(t, int64(2), s.GetCounter("markup:format_calls:bold"))
	assert.Equal(t, int64(0), s.GetCounter(KeyMathCalls))
	assert.Equal(t, []StatKey{KeyFormatCalls, "markup:format_calls:bold"}, s.Keys())

	snapshot := s.Counters()
	snapshot[KeyFormatCalls] = 100
	assert.Equal(t, int64(1), s.GetCounter(KeyFormatCalls))

	s.Reset()
	assert.Empty(t, s.Keys())
}

func TestStats_NegativeDeltaPanics(t *testing.T) {
	s := NewStats()
	assert.Panics(t, func() { s.IncrCounter(KeyMathCalls, -1) })
}

func TestStats_Concurrent(t *testing.T) {
	s := NewStats()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.IncrCounter(KeyFormatCalls, 1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(5000), s.GetCounter(KeyFormatCalls))
}
