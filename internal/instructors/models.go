package instructors

import (
	"github.com/codebar/admin/internal/storage"
)

type instructorModel struct {
	storage.BaseEntity

	Name   string  `json:"name"   gorm:"uniqueIndex;size:100;not null"`
	Skills string  `json:"skills" gorm:"type:text"`
	Bio    *string `json:"bio"    gorm:"size:255"`
}

func newInstructorModel(draft InstructorDraft) *instructorModel {
	return &instructorModel{
		BaseEntity: storage.BaseEntity{},
		Name:       draft.Name,
		Skills:     storage.EncodeList(draft.Skills),
		Bio:        draft.Bio,
	}
}

func (instructorModel) TableName() string {
	return collection.Name
}

// UniqueKey implements storage.Entity.
func (m *instructorModel) UniqueKey() string {
	return m.Name
}

func (m *instructorModel) toDomain() *Instructor {
	return &Instructor{
		InstructorDraft: InstructorDraft{
			Name:   m.Name,
			Skills: storage.DecodeList(m.Skills),
			Bio:    m.Bio,
		},
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (m *instructorModel) apply(update InstructorUpdate) {
	if update.Name != nil {
		m.Name = *update.Name
	}
	if update.Skills != nil {
		m.Skills = storage.EncodeList(*update.Skills)
	}
	if update.Bio != nil {
		m.Bio = update.Bio
	}
}
