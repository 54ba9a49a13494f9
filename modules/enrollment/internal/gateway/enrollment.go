package gateway

import (
	"context"
	"fmt"
	"net/url"

	"edu-client/util/errs"
	"edu-client/util/httpclient"
)

// EnrollmentGateway คุยกับ enrollment endpoint ของ course service
// server เป็นคนเดียวที่ตัด/คืนยอดเงินพร้อมบันทึก enrollment แบบ atomic
// ฝั่งนี้แค่สะท้อนผลลัพธ์ที่ server ยืนยันกลับมา
type EnrollmentGateway interface {
	Enroll(ctx context.Context, credential, courseID, email string) (float64, error)
	Cancel(ctx context.Context, credential, courseID, email string) (float64, error)
}

type enrollmentGateway struct {
	api *httpclient.Client
}

func NewEnrollmentGateway(api *httpclient.Client) EnrollmentGateway {
	return &enrollmentGateway{api: api}
}

func (g *enrollmentGateway) Enroll(ctx context.Context, credential, courseID, email string) (float64, error) {
	return g.post(ctx, credential, courseID, email, "enroll")
}

func (g *enrollmentGateway) Cancel(ctx context.Context, credential, courseID, email string) (float64, error) {
	return g.post(ctx, credential, courseID, email, "cancel")
}

func (g *enrollmentGateway) post(ctx context.Context, credential, courseID, email, action string) (float64, error) {
	var resp struct {
		Balance float64 `json:"balance"`
	}

	path := fmt.Sprintf("/api/courses/%s/%s?email=%s", url.PathEscape(courseID), action, url.QueryEscape(email))
	if err := g.api.Post(ctx, path, nil, &resp, httpclient.WithBearer(credential)); err != nil {
		// ข้อความ business error ของ server (เช่น ยอดเงินไม่พอ) ต้องส่งต่อแบบ verbatim
		return 0, errs.HandleRemoteError(err)
	}
	return resp.Balance, nil
}
