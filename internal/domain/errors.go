package domain

import "errors"

// Sentinel errors for the dashboard. These provide consistent, checkable
// errors for the failures a user can trigger from the page.
var (
	ErrEmptyTargetURL      = errors.New("please enter a URL to scrape")
	ErrBackendDisconnected = errors.New("backend is disconnected")
)
