package gateway

import (
	"context"
	"encoding/json"

	"edu-client/modules/catalog/internal/model"
	"edu-client/util/errs"
	"edu-client/util/httpclient"
)

type CatalogGateway interface {
	ListCourses(ctx context.Context) ([]model.Course, error)
	CreateCourse(ctx context.Context, credential string, draft model.CourseDraft) (*model.Course, error)
}

type catalogGateway struct {
	api *httpclient.Client
}

func NewCatalogGateway(api *httpclient.Client) CatalogGateway {
	return &catalogGateway{api: api}
}

// courseRecord คือ payload คอร์สตาม contract ของ course service
// id ฝั่งปลายทางเป็นตัวเลข แต่ฝั่งเราถือเป็น opaque string
type courseRecord struct {
	ID          json.Number `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Price       float64     `json:"price"`
}

func (r courseRecord) toModel() model.Course {
	return model.Course{
		ID:          r.ID.String(),
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
	}
}

func (g *catalogGateway) ListCourses(ctx context.Context) ([]model.Course, error) {
	var records []courseRecord
	if err := g.api.Get(ctx, "/api/courses", &records); err != nil {
		return nil, errs.HandleRemoteError(err)
	}

	courses := make([]model.Course, 0, len(records))
	for _, r := range records {
		courses = append(courses, r.toModel())
	}
	return courses, nil
}

func (g *catalogGateway) CreateCourse(ctx context.Context, credential string, draft model.CourseDraft) (*model.Course, error) {
	body := map[string]any{
		"title":       draft.Title,
		"description": draft.Description,
		"price":       draft.Price,
	}

	var record courseRecord
	if err := g.api.Post(ctx, "/api/courses", body, &record, httpclient.WithBearer(credential)); err != nil {
		return nil, errs.HandleRemoteError(err)
	}

	course := record.toModel()
	return &course, nil
}
