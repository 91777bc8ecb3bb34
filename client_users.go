package clubadmin

import "context"

// UsersClient manages back-office accounts under /users.
type UsersClient struct {
	gw *Client
}

// CreateAccountRequest is the account creation payload. Role takes the
// values the API understands; see [ParseRole] for the accepted set.
type CreateAccountRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       string `json:"role"`
	CategoryID string `json:"categoryId,omitempty"`
}

// UpdateAccountRequest is the partial-update payload. Nil fields are left
// untouched by the API.
type UpdateAccountRequest struct {
	Name       *string `json:"name,omitempty"`
	Email      *string `json:"email,omitempty"`
	Password   *string `json:"password,omitempty"`
	Role       *string `json:"role,omitempty"`
	CategoryID *string `json:"categoryId,omitempty"`
}

func (u *UsersClient) List(ctx context.Context) ([]Account, error) {
	var out []Account
	if err := u.gw.Get(ctx, "/users", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (u *UsersClient) Get(ctx context.Context, id string) (*Account, error) {
	var out Account
	if err := u.gw.Get(ctx, "/users/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (u *UsersClient) Create(ctx context.Context, req CreateAccountRequest) (*Account, error) {
	var out Account
	if err := u.gw.Post(ctx, "/users", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (u *UsersClient) Update(ctx context.Context, id string, req UpdateAccountRequest) (*Account, error) {
	var out Account
	if err := u.gw.Put(ctx, "/users/"+id, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (u *UsersClient) Delete(ctx context.Context, id string) error {
	return u.gw.Delete(ctx, "/users/"+id, nil)
}

// UpdateRole changes only the account's role.
func (u *UsersClient) UpdateRole(ctx context.Context, id, role string) (*Account, error) {
	var out Account
	body := struct {
		Role string `json:"role"`
	}{Role: role}
	if err := u.gw.Put(ctx, "/users/"+id+"/role", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
