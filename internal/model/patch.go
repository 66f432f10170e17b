// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "encoding/json"

// Field represents an optional patch field. It distinguishes three states:
// absent (leave the column untouched), explicit null (clear a nullable
// column), and present (set the column to Value).
type Field[T any] struct {
	Value T
	Set   bool // field was present in the input
	Null  bool // field was present and explicitly null
}

// UnmarshalJSON implements json.Unmarshaler. A field that is decoded at all
// is marked Set; a JSON null additionally marks it Null.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if string(data) == "null" {
		f.Null = true
		return nil
	}
	return json.Unmarshal(data, &f.Value)
}

// Ptr returns a pointer to the value, or nil when the field is null.
// Only meaningful when Set is true.
func (f Field[T]) Ptr() *T {
	if f.Null {
		return nil
	}
	v := f.Value
	return &v
}

// AboutPatch is a partial update for an about section.
type AboutPatch struct {
	Title         Field[string] `json:"title"`
	TitleFr       Field[string] `json:"title_fr"`
	Description   Field[string] `json:"description"`
	DescriptionFr Field[string] `json:"description_fr"`
	ImageURL      Field[string] `json:"image_url"`
	DisplayOrder  Field[int64]  `json:"display_order"`
}

// TeamPatch is a partial update for a team member.
type TeamPatch struct {
	Name         Field[string] `json:"name"`
	Title        Field[string] `json:"title"`
	TitleFr      Field[string] `json:"title_fr"`
	Bio          Field[string] `json:"bio"`
	BioFr        Field[string] `json:"bio_fr"`
	Email        Field[string] `json:"email"`
	ImageURL     Field[string] `json:"image_url"`
	DisplayOrder Field[int64]  `json:"display_order"`
}

// ProjectPatch is a partial update for a project.
type ProjectPatch struct {
	Title         Field[string] `json:"title"`
	TitleFr       Field[string] `json:"title_fr"`
	Description   Field[string] `json:"description"`
	DescriptionFr Field[string] `json:"description_fr"`
	TypeID        Field[int64]  `json:"type_id"`
	Status        Field[string] `json:"status"`
	GitURL        Field[string] `json:"git_url"`
	DemoURL       Field[string] `json:"demo_url"`
	ImageURL      Field[string] `json:"image_url"`
	DisplayOrder  Field[int64]  `json:"display_order"`
}

// UserPatch is a partial update for a user.
type UserPatch struct {
	FirstName Field[string] `json:"first_name"`
	LastName  Field[string] `json:"last_name"`
	Email     Field[string] `json:"email"`
	IsAdmin   Field[bool]   `json:"is_admin"`
	Password  Field[string] `json:"password"`
}
