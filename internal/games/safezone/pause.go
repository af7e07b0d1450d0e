package safezone

import "time"

// Pause freezes the session at now. Pausing twice keeps the first pause time.
func (m *Machine) Pause(now time.Duration) {
	if m.st.Paused {
		return
	}
	m.st.Paused = true
	m.st.PauseStart = now
}

// Resume ends a pause. Every timestamp anchor moves forward by the paused
// duration in one step, so elapsed time measured against the timer, phase and
// spawn anchors is the same as when the pause began.
func (m *Machine) Resume(now time.Duration) {
	if !m.st.Paused {
		return
	}
	d := now - m.st.PauseStart

	m.st.TimerStart += d
	m.st.PhaseStart += d
	m.st.LastSpawn += d
	if m.st.Player != nil {
		m.st.Player.shiftAnimation(d)
	}

	m.st.Paused = false
	m.st.PauseStart = 0

	m.logger.Debug("resumed", "paused_for", d)
}

// Paused reports whether the session is paused.
func (m *Machine) Paused() bool {
	return m.st.Paused
}
