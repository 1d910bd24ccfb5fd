package models

import "time"

// PublishState derives both publish fields from the desired intent. It is
// the only place the published flag and timestamp are produced, so the two
// can never disagree: publishing stamps now, unpublishing clears the stamp.
func PublishState(published bool, now time.Time) (bool, *time.Time) {
	if !published {
		return false, nil
	}
	at := now.UTC()
	return true, &at
}
