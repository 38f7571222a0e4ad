// Package responses holds the JSON shapes returned by the API.
package responses

import (
	"eduak/models"
	"time"
)

type ProfileResponse struct {
	Bio    string                 `json:"bio"`
	Avatar string                 `json:"avatar"`
	Links  map[string]interface{} `json:"links"`
}

type UserResponse struct {
	ID         uint             `json:"id"`
	Name       string           `json:"name"`
	Email      string           `json:"email"`
	Phone      string           `json:"phone"`
	Role       models.Role      `json:"role"`
	IsActive   bool             `json:"is_active"`
	DateJoined time.Time        `json:"date_joined"`
	Profile    *ProfileResponse `json:"profile,omitempty"`
}

func User(u *models.User) UserResponse {
	out := UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Phone:      u.Phone,
		Role:       u.Role,
		IsActive:   u.IsActive,
		DateJoined: u.CreatedAt,
	}
	if u.Profile != nil {
		links := map[string]interface{}(u.Profile.Links)
		if links == nil {
			links = map[string]interface{}{}
		}
		out.Profile = &ProfileResponse{Bio: u.Profile.Bio, Avatar: u.Profile.Avatar, Links: links}
	}
	return out
}

type OwnerResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type SubjectRef struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

type SubjectResponse struct {
	SubjectRef
	TotalCourses int64 `json:"total_courses"`
}

func Subject(s *models.Subject, totalCourses int64) SubjectResponse {
	return SubjectResponse{
		SubjectRef:   SubjectRef{ID: s.ID, Title: s.Title, Slug: s.Slug},
		TotalCourses: totalCourses,
	}
}

type ModuleResponse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

func Module(m *models.Module) ModuleResponse {
	return ModuleResponse{ID: m.ID, Title: m.Title, Description: m.Description, Order: m.Order}
}

func Modules(ms []models.Module) []ModuleResponse {
	out := make([]ModuleResponse, 0, len(ms))
	for i := range ms {
		out = append(out, Module(&ms[i]))
	}
	return out
}

type CourseResponse struct {
	ID            uint             `json:"id"`
	Title         string           `json:"title"`
	Overview      string           `json:"overview"`
	Subject       SubjectRef       `json:"subject"`
	Owner         OwnerResponse    `json:"owner"`
	Created       time.Time        `json:"created"`
	Updated       time.Time        `json:"updated"`
	TotalStudents int64            `json:"total_students"`
	TotalModules  int64            `json:"total_modules"`
	Modules       []ModuleResponse `json:"modules,omitempty"`
}

// Course expects Owner and Subject to be preloaded. Modules are included
// only when they were loaded.
func Course(c *models.Course, totalStudents, totalModules int64) CourseResponse {
	out := CourseResponse{
		ID:            c.ID,
		Title:         c.Title,
		Overview:      c.Overview,
		Subject:       SubjectRef{ID: c.Subject.ID, Title: c.Subject.Title, Slug: c.Subject.Slug},
		Owner:         OwnerResponse{ID: c.Owner.ID, Name: c.Owner.Name, Email: c.Owner.Email},
		Created:       c.CreatedAt,
		Updated:       c.UpdatedAt,
		TotalStudents: totalStudents,
		TotalModules:  totalModules,
	}
	if c.Modules != nil {
		out.Modules = Modules(c.Modules)
	}
	return out
}
