package models

type Notification struct {
	ID            string `json:"id" bson:"_id,omitempty"`
	AppointmentID string `json:"appointment_id" bson:"appointment_id"`
	ParentID      string `json:"parent_id" bson:"parent_id"`
	DoctorID      string `json:"doctor_id" bson:"doctor_id"`
	ChildID       string `json:"child_id" bson:"child_id"`
	To            string `json:"to" bson:"to"`
	Event         string `json:"event" bson:"event"`
	Action        string `json:"action" bson:"action"`
	Title         string `json:"title" bson:"title"`
	Read          bool   `json:"read" bson:"read"`
	TimeModel     `bson:",inline"`
}
