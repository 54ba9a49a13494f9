package gateway

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"edu-client/util/errs"
	"edu-client/util/httpclient"
)

type BalanceGateway interface {
	TopUp(ctx context.Context, credential, email string, amount float64) (float64, error)
}

type balanceGateway struct {
	api *httpclient.Client
}

func NewBalanceGateway(api *httpclient.Client) BalanceGateway {
	return &balanceGateway{api: api}
}

func (g *balanceGateway) TopUp(ctx context.Context, credential, email string, amount float64) (float64, error) {
	var resp struct {
		Balance float64 `json:"balance"`
	}

	path := fmt.Sprintf("/api/users/topup?email=%s&amount=%s",
		url.QueryEscape(email),
		strconv.FormatFloat(amount, 'f', -1, 64),
	)
	if err := g.api.Post(ctx, path, nil, &resp, httpclient.WithBearer(credential)); err != nil {
		return 0, errs.HandleRemoteError(err)
	}
	return resp.Balance, nil
}
