package model

import "time"

// PresentationSlot ist eine Eintragung für einen Präsentationstermin.
type PresentationSlot struct {
	UUIDBase
	PresenterName    string    `gorm:"size:255;not null" json:"presenterName"`
	Topic            string    `gorm:"size:255;not null" json:"topic"`
	PresentationDate time.Time `gorm:"index;not null" json:"presentationDate"`
	GroupMembers     *string   `gorm:"type:text" json:"groupMembers,omitempty"`
	// CreatorID 0, wenn der Slot ohne Anmeldung eingetragen wurde
	CreatorID uint `gorm:"index" json:"creatorId"`
}

func (PresentationSlot) TableName() string {
	return "presentation_slots"
}
