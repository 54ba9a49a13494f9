package dto

import (
	"errors"
	"math"

	"edu-client/modules/catalog/internal/model"
)

type CourseResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

func NewCourseResponse(course model.Course) *CourseResponse {
	return &CourseResponse{
		ID:          course.ID,
		Title:       course.Title,
		Description: course.Description,
		Price:       course.Price,
	}
}

func NewCourseListResponse(courses []model.Course) []*CourseResponse {
	resp := make([]*CourseResponse, 0, len(courses))
	for _, c := range courses {
		resp = append(resp, NewCourseResponse(c))
	}
	return resp
}

type CreateCourseRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
}

func (r *CreateCourseRequest) Validate() error {
	if len(r.Title) == 0 {
		return errors.New("title is required")
	}
	if r.Price == nil {
		return errors.New("price is required")
	}
	if math.IsNaN(*r.Price) || math.IsInf(*r.Price, 0) || *r.Price < 0 {
		return errors.New("price must be a non-negative number")
	}
	return nil
}

func (r *CreateCourseRequest) ToDraft() model.CourseDraft {
	return model.CourseDraft{
		Title:       r.Title,
		Description: r.Description,
		Price:       *r.Price,
	}
}
