package schemas

import (
	"time"
)

// StageChange records one drag-and-drop move of a contact between columns.
type StageChange struct {
	ID        string    `json:"id" bson:"_id"`
	ContactID string    `json:"contact_id" bson:"contact_id"`
	From      Stage     `json:"from" bson:"from"`
	To        Stage     `json:"to" bson:"to"`
	ChangedBy string    `json:"changed_by,omitempty" bson:"changed_by,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

const (
	STAGE_CHANGE_FIELD_ID         = "id"
	STAGE_CHANGE_FIELD_CONTACT_ID = "contact_id"
	STAGE_CHANGE_FIELD_CREATED_AT = "created_at"
)
