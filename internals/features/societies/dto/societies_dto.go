package dto

import (
	"unipresence_backend/internals/constants"
	"unipresence_backend/internals/features/societies/model"

	"github.com/google/uuid"
)

type SocietyResponse struct {
	SocietyID         uuid.UUID `json:"society_id"`
	SocietyName       string    `json:"society_name"`
	SocietyInstagram  string    `json:"society_instagram"`
	SocietyDesc       string    `json:"society_description"`
	SocietyUniversity string    `json:"society_university"`
	SocietyImageURL   string    `json:"society_image_url"`
	SocietyBioURL     string    `json:"society_bio_url"`
}

// 🔄 model → response; every nullable column lands on "" and the missing
// university join lands on the sentinel.
func ToSocietyResponse(m *model.SocietyModel) *SocietyResponse {
	universityName := constants.DefaultSocietyUniversity
	if m.University != nil {
		universityName = m.University.UniversityName
	}
	return &SocietyResponse{
		SocietyID:         m.SocietyID,
		SocietyName:       m.SocietyName,
		SocietyInstagram:  m.SocietyInstagramHandle,
		SocietyDesc:       deref(m.SocietyDescription),
		SocietyUniversity: universityName,
		SocietyImageURL:   deref(m.SocietyImageURL),
		SocietyBioURL:     deref(m.SocietyBioURL),
	}
}

func ToSocietyResponseList(models []model.SocietyModel) []SocietyResponse {
	result := make([]SocietyResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToSocietyResponse(&models[i]))
	}
	return result
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
