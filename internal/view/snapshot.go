package view

import (
	"time"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	backendSessionName = "backend-session"

	keyConnected = "connected"
	keyStatus    = "status"
	keyCheckedAt = "checked_at"
	keyLatencyMs = "latency_ms"
)

// BackendSnapshot is the outcome of the last health probe made for this
// browser. Fragment requests read it to decide whether the scrape form is
// enabled without probing the backend again.
type BackendSnapshot struct {
	Connected bool      `json:"connected"`
	Status    string    `json:"status"`
	CheckedAt time.Time `json:"checked_at"`
	LatencyMs int64     `json:"latency_ms"`
}

// SaveSnapshot stores the snapshot in the session cookie.
func SaveSnapshot(c echo.Context, snap BackendSnapshot) error {
	sess, err := session.Get(backendSessionName, c)
	if err != nil {
		return err
	}
	sess.Values[keyConnected] = snap.Connected
	sess.Values[keyStatus] = snap.Status
	sess.Values[keyCheckedAt] = snap.CheckedAt.Unix()
	sess.Values[keyLatencyMs] = snap.LatencyMs
	return sess.Save(c.Request(), c.Response())
}

// LoadSnapshot returns the stored snapshot; ok is false when this browser has
// not been probed yet.
func LoadSnapshot(c echo.Context) (snap BackendSnapshot, ok bool) {
	sess, err := session.Get(backendSessionName, c)
	if err != nil {
		return BackendSnapshot{}, false
	}

	connected, ok := sess.Values[keyConnected].(bool)
	if !ok {
		return BackendSnapshot{}, false
	}
	snap.Connected = connected
	snap.Status, _ = sess.Values[keyStatus].(string)
	if unix, ok := sess.Values[keyCheckedAt].(int64); ok {
		snap.CheckedAt = time.Unix(unix, 0)
	}
	snap.LatencyMs, _ = sess.Values[keyLatencyMs].(int64)
	return snap, true
}
