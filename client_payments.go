package clubadmin

import (
	"context"
	"net/url"
	"strconv"
)

// PaymentsClient manages quota payments under /payments.
type PaymentsClient struct {
	gw *Client
}

// PaymentFilter narrows List. Zero fields are omitted from the query.
type PaymentFilter struct {
	PlayerID string
	Month    int
	Year     int
}

func (f PaymentFilter) query() string {
	values := url.Values{}
	if f.PlayerID != "" {
		values.Set("playerId", f.PlayerID)
	}
	if f.Month != 0 {
		values.Set("month", strconv.Itoa(f.Month))
	}
	if f.Year != 0 {
		values.Set("year", strconv.Itoa(f.Year))
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}

// PaymentRequest is the create/update payload. PaymentMethod is one of
// [PaymentMethodCash] or [PaymentMethodBank].
type PaymentRequest struct {
	PlayerID      string  `json:"playerId"`
	Month         int     `json:"month"`
	Year          int     `json:"year"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
	CategoryID    string  `json:"categoryId"`
}

func (pc *PaymentsClient) List(ctx context.Context, filter PaymentFilter) ([]Payment, error) {
	var out []Payment
	if err := pc.gw.Get(ctx, "/payments"+filter.query(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (pc *PaymentsClient) Get(ctx context.Context, id string) (*Payment, error) {
	var out Payment
	if err := pc.gw.Get(ctx, "/payments/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ByPlayer lists every payment recorded for one player.
func (pc *PaymentsClient) ByPlayer(ctx context.Context, playerID string) ([]Payment, error) {
	return pc.List(ctx, PaymentFilter{PlayerID: playerID})
}

func (pc *PaymentsClient) Create(ctx context.Context, req PaymentRequest) (*Payment, error) {
	var out Payment
	if err := pc.gw.Post(ctx, "/payments", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (pc *PaymentsClient) Update(ctx context.Context, id string, req PaymentRequest) (*Payment, error) {
	var out Payment
	if err := pc.gw.Put(ctx, "/payments/"+id, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (pc *PaymentsClient) Delete(ctx context.Context, id string) error {
	return pc.gw.Delete(ctx, "/payments/"+id, nil)
}
