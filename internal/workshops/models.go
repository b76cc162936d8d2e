package workshops

import (
	"time"

	"github.com/codebar/admin/internal/storage"
)

type workshopModel struct {
	storage.BaseEntity

	Subject     string     `json:"subject"     gorm:"uniqueIndex;size:100;not null"`
	Date        *time.Time `json:"date"`
	Instructors string     `json:"instructors" gorm:"type:text"`
	Students    string     `json:"students"    gorm:"type:text"`
	Description *string    `json:"description" gorm:"size:255"`
}

func newWorkshopModel(draft WorkshopDraft) *workshopModel {
	return &workshopModel{
		BaseEntity:  storage.BaseEntity{},
		Subject:     draft.Subject,
		Date:        draft.Date,
		Instructors: storage.EncodeList(draft.Instructors),
		Students:    storage.EncodeList(draft.Students),
		Description: draft.Description,
	}
}

func (workshopModel) TableName() string {
	return collection.Name
}

// UniqueKey implements storage.Entity.
func (m *workshopModel) UniqueKey() string {
	return m.Subject
}

func (m *workshopModel) toDomain() *Workshop {
	return &Workshop{
		WorkshopDraft: WorkshopDraft{
			Subject:     m.Subject,
			Date:        m.Date,
			Instructors: storage.DecodeList(m.Instructors),
			Students:    storage.DecodeList(m.Students),
			Description: m.Description,
		},
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (m *workshopModel) apply(update WorkshopUpdate) {
	if update.Subject != nil {
		m.Subject = *update.Subject
	}
	if update.Date != nil {
		m.Date = update.Date
	}
	if update.Instructors != nil {
		m.Instructors = storage.EncodeList(*update.Instructors)
	}
	if update.Students != nil {
		m.Students = storage.EncodeList(*update.Students)
	}
	if update.Description != nil {
		m.Description = update.Description
	}
}
