package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu               sync.Mutex
	fightsResolved   int
	fightDurations   []float64
	storageErrors    int
	slackNotifSent   int
	slackNotifFailed int
	startupTime      float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		fightDurations: make([]float64, 0),
	}
}

func (m *Mock) IncFightsResolved() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fightsResolved++
}

func (m *Mock) ObserveFightDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fightDurations = append(m.fightDurations, duration)
}

func (m *Mock) IncStorageErrors() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.storageErrors++
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// FightsResolved returns the number of times IncFightsResolved was called.
func (m *Mock) FightsResolved() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fightsResolved
}

// StorageErrors returns the number of times IncStorageErrors was called.
func (m *Mock) StorageErrors() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.storageErrors
}

// SlackNotifSent returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}
