package service

import "time"

// SetNow pins the clock used for image names and returns a restore func.
func SetNow(f func() time.Time) func() {
	prev := now
	now = f
	return func() { now = prev }
}
