package students

import (
	"github.com/codebar/admin/internal/storage"
)

// studentModel keeps reasons as a JSON array string.
type studentModel struct {
	storage.BaseEntity

	Name    string  `json:"name"    gorm:"uniqueIndex;size:100;not null"`
	Reasons string  `json:"reasons" gorm:"type:text"`
	Picture *string `json:"picture" gorm:"size:255"`
}

func newStudentModel(draft StudentDraft) *studentModel {
	return &studentModel{
		BaseEntity: storage.BaseEntity{},
		Name:       draft.Name,
		Reasons:    storage.EncodeList(draft.Reasons),
		Picture:    draft.Picture,
	}
}

func (studentModel) TableName() string {
	return collection.Name
}

// UniqueKey implements storage.Entity.
func (m *studentModel) UniqueKey() string {
	return m.Name
}

func (m *studentModel) toDomain() *Student {
	return &Student{
		StudentDraft: StudentDraft{
			Name:    m.Name,
			Reasons: storage.DecodeList(m.Reasons),
			Picture: m.Picture,
		},
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// apply overwrites only the supplied columns, so a stored list the update does
// not mention keeps its raw value.
func (m *studentModel) apply(update StudentUpdate) {
	if update.Name != nil {
		m.Name = *update.Name
	}
	if update.Reasons != nil {
		m.Reasons = storage.EncodeList(*update.Reasons)
	}
	if update.Picture != nil {
		m.Picture = update.Picture
	}
}
