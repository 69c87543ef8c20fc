package service

import (
	"sync/atomic"
	"time"
)

// Metrics is the process-wide request counter set shared by the chat service
// and the status endpoint. All counters are lock-free and safe for concurrent
// use.
type Metrics struct {
	start time.Time

	requests       atomic.Int64
	successes      atomic.Int64
	failures       atomic.Int64
	assistantCalls atomic.Int64
	searches       atomic.Int64
}

// NewMetrics constructs a Metrics set with the uptime clock started now.
func NewMetrics() *Metrics {
	return &Metrics{start: time.Now()}
}

// CountRequest records one handled API request.
func (m *Metrics) CountRequest() { m.requests.Add(1) }

// CountSuccess records one chat exchange answered without error.
func (m *Metrics) CountSuccess() { m.successes.Add(1) }

// CountFailure records one chat exchange that ended in an error.
func (m *Metrics) CountFailure() { m.failures.Add(1) }

// CountAssistantCall records one outbound generative API call.
func (m *Metrics) CountAssistantCall() { m.assistantCalls.Add(1) }

// CountSearch records one catalog search triggered by a chat message.
func (m *Metrics) CountSearch() { m.searches.Add(1) }

// Uptime returns how long the process has been serving.
func (m *Metrics) Uptime() time.Duration { return time.Since(m.start) }

// Requests returns the total handled request count.
func (m *Metrics) Requests() int64 { return m.requests.Load() }

// Successes returns the count of chat exchanges answered without error.
func (m *Metrics) Successes() int64 { return m.successes.Load() }

// Failures returns the count of chat exchanges that ended in an error.
func (m *Metrics) Failures() int64 { return m.failures.Load() }

// AssistantCalls returns the total generative API call count.
func (m *Metrics) AssistantCalls() int64 { return m.assistantCalls.Load() }

// Searches returns the total chat-triggered catalog search count.
func (m *Metrics) Searches() int64 { return m.searches.Load() }
