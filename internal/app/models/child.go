package models

import "time"

type Child struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	ParentID    string    `json:"parent_id" bson:"parent_id"`
	Name        string    `json:"name" bson:"name"`
	DateOfBirth time.Time `json:"date_of_birth" bson:"date_of_birth"`
	Sex         string    `json:"sex" bson:"sex"`
	Height      float64   `json:"height" bson:"height"`
	Weight      float64   `json:"weight" bson:"weight"`
	TimeModel   `bson:",inline"`
}
