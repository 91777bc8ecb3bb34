package clubadmin

import "context"

// ConfigurationClient manages the single club configuration document under
// /configuration.
type ConfigurationClient struct {
	gw *Client
}

// ConfigurationUpdate is the partial-update payload. Nil sections are left
// untouched.
type ConfigurationUpdate struct {
	FamilyDiscounts *FamilyDiscountsConfig `json:"familyDiscounts,omitempty"`
	System          *SystemConfig          `json:"system,omitempty"`
	Notifications   *NotificationsConfig   `json:"notifications,omitempty"`
}

func (cf *ConfigurationClient) Get(ctx context.Context) (*Configuration, error) {
	var out Configuration
	if err := cf.gw.Get(ctx, "/configuration", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (cf *ConfigurationClient) Update(ctx context.Context, req ConfigurationUpdate) (*Configuration, error) {
	var out Configuration
	if err := cf.gw.Put(ctx, "/configuration", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Reset restores the server defaults for the whole document.
func (cf *ConfigurationClient) Reset(ctx context.Context) (*Configuration, error) {
	var out Configuration
	if err := cf.gw.Post(ctx, "/configuration/reset", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
