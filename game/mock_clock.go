package game

// MockClock is a manually driven Clock for tests. Delay advances time instead
// of sleeping.
type MockClock struct {
	now    uint64
	delays []uint64
}

func NewMockClock(start uint64) *MockClock {
	return &MockClock{now: start}
}

func (m *MockClock) Ticks() uint64 {
	return m.now
}

func (m *MockClock) Delay(ms uint64) {
	m.delays = append(m.delays, ms)
	m.now += ms
}

// Advance moves time forward without recording a delay.
func (m *MockClock) Advance(ms uint64) {
	m.now += ms
}

// Delays returns every delay requested so far.
func (m *MockClock) Delays() []uint64 {
	return m.delays
}
