package models

import "time"

type TimeModel struct {
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// Touch stamps both timestamps on insert and only UpdatedAt afterwards.
func (t *TimeModel) Touch(now time.Time) {
	now = now.UTC()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now
}
