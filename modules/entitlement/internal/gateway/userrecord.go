package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"edu-client/util/errs"
	"edu-client/util/httpclient"
)

// UserRecord คือสภาพล่าสุดของผู้ใช้ตามที่ ledger ฝั่ง server บอกมา
type UserRecord struct {
	Balance   float64
	CourseIDs []string
}

type UserRecordGateway interface {
	Me(ctx context.Context, credential, email string) (*UserRecord, error)
}

type userRecordGateway struct {
	api *httpclient.Client
}

func NewUserRecordGateway(api *httpclient.Client) UserRecordGateway {
	return &userRecordGateway{api: api}
}

func (g *userRecordGateway) Me(ctx context.Context, credential, email string) (*UserRecord, error) {
	var resp struct {
		Balance float64 `json:"balance"`
		Courses []struct {
			// ฝั่ง server ใช้ id เป็นตัวเลข ฝั่งนี้มองเป็น opaque string
			ID json.Number `json:"id"`
		} `json:"courses"`
	}

	path := fmt.Sprintf("/api/users/me?email=%s", url.QueryEscape(email))
	if err := g.api.Get(ctx, path, &resp, httpclient.WithBearer(credential)); err != nil {
		return nil, errs.HandleRemoteError(err)
	}

	record := &UserRecord{
		Balance:   resp.Balance,
		CourseIDs: make([]string, 0, len(resp.Courses)),
	}
	for _, course := range resp.Courses {
		record.CourseIDs = append(record.CourseIDs, course.ID.String())
	}
	return record, nil
}
