package clubadmin

import "context"

// FamiliesClient manages family discount groups under /families.
type FamiliesClient struct {
	gw *Client
}

// FamilyRequest is the create/update payload. Members lists player IDs
// besides the primary player.
type FamilyRequest struct {
	Name            string             `json:"name"`
	PrimaryPlayerID string             `json:"primaryPlayerId"`
	Members         []string           `json:"members,omitempty"`
	ContactInfo     *FamilyContactInfo `json:"contactInfo,omitempty"`
	FamilyDiscount  *float64           `json:"familyDiscount,omitempty"`
	Notes           string             `json:"notes,omitempty"`
}

func (fc *FamiliesClient) List(ctx context.Context) ([]Family, error) {
	var out []Family
	if err := fc.gw.Get(ctx, "/families", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (fc *FamiliesClient) Get(ctx context.Context, id string) (*Family, error) {
	var out Family
	if err := fc.gw.Get(ctx, "/families/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (fc *FamiliesClient) Create(ctx context.Context, req FamilyRequest) (*Family, error) {
	var out Family
	if err := fc.gw.Post(ctx, "/families", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (fc *FamiliesClient) Update(ctx context.Context, id string, req FamilyRequest) (*Family, error) {
	var out Family
	if err := fc.gw.Put(ctx, "/families/"+id, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (fc *FamiliesClient) Delete(ctx context.Context, id string) error {
	return fc.gw.Delete(ctx, "/families/"+id, nil)
}

// AddMember attaches a player to the family group.
func (fc *FamiliesClient) AddMember(ctx context.Context, familyID, playerID string) (*Family, error) {
	body := struct {
		PlayerID string `json:"playerId"`
	}{PlayerID: playerID}

	var out Family
	if err := fc.gw.Post(ctx, "/families/"+familyID+"/members", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RemoveMember detaches a player from the family group.
func (fc *FamiliesClient) RemoveMember(ctx context.Context, familyID, playerID string) (*Family, error) {
	var out Family
	if err := fc.gw.Delete(ctx, "/families/"+familyID+"/members/"+playerID, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
