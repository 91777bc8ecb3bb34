package clubadmin

import "context"

// CategoriesClient manages playing categories under /categories.
type CategoriesClient struct {
	gw *Client
}

// CategoryRequest is the create/update payload. Quota is the monthly fee.
type CategoryRequest struct {
	Name   string  `json:"name"`
	Gender string  `json:"gender"`
	Quota  float64 `json:"cuota"`
}

func (cc *CategoriesClient) List(ctx context.Context) ([]Category, error) {
	var out []Category
	if err := cc.gw.Get(ctx, "/categories", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (cc *CategoriesClient) Get(ctx context.Context, id string) (*Category, error) {
	var out Category
	if err := cc.gw.Get(ctx, "/categories/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (cc *CategoriesClient) Create(ctx context.Context, req CategoryRequest) (*Category, error) {
	var out Category
	if err := cc.gw.Post(ctx, "/categories", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (cc *CategoriesClient) Update(ctx context.Context, id string, req CategoryRequest) (*Category, error) {
	var out Category
	if err := cc.gw.Put(ctx, "/categories/"+id, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (cc *CategoriesClient) Delete(ctx context.Context, id string) error {
	return cc.gw.Delete(ctx, "/categories/"+id, nil)
}
