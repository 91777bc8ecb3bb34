package clubadmin

import (
	"context"
	"net/url"
)

// PlayersClient manages the player roster under /players.
type PlayersClient struct {
	gw *Client
}

// PlayerFilter narrows List. Zero fields are omitted from the query.
type PlayerFilter struct {
	Email      string
	CategoryID string
	Name       string
}

func (f PlayerFilter) query() string {
	values := url.Values{}
	if f.Email != "" {
		values.Set("email", f.Email)
	}
	if f.CategoryID != "" {
		values.Set("categoryId", f.CategoryID)
	}
	if f.Name != "" {
		values.Set("name", f.Name)
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}

// PlayerRequest is the create/update payload.
type PlayerRequest struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	BirthDate  string `json:"birthDate"`
	Phone      string `json:"phone,omitempty"`
	CategoryID string `json:"categoryId"`
}

// BulkPlayer is one row of a bulk upload.
type BulkPlayer struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	BirthDate  string `json:"birthDate"`
	Phone      string `json:"phone,omitempty"`
	CategoryID string `json:"categoryId"`
}

// BulkResult reports a bulk upload: how many rows were created and the
// per-row errors for the rest.
type BulkResult struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Created int      `json:"created"`
	Errors  []string `json:"errors"`
}

func (p *PlayersClient) List(ctx context.Context, filter PlayerFilter) ([]Player, error) {
	var out []Player
	if err := p.gw.Get(ctx, "/players"+filter.query(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *PlayersClient) Get(ctx context.Context, id string) (*Player, error) {
	var out Player
	if err := p.gw.Get(ctx, "/players/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ByCategory lists the players registered in one category.
func (p *PlayersClient) ByCategory(ctx context.Context, categoryID string) ([]Player, error) {
	return p.List(ctx, PlayerFilter{CategoryID: categoryID})
}

func (p *PlayersClient) Create(ctx context.Context, req PlayerRequest) (*Player, error) {
	var out Player
	if err := p.gw.Post(ctx, "/players", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *PlayersClient) Update(ctx context.Context, id string, req PlayerRequest) (*Player, error) {
	var out Player
	if err := p.gw.Put(ctx, "/players/"+id, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *PlayersClient) Delete(ctx context.Context, id string) error {
	return p.gw.Delete(ctx, "/players/"+id, nil)
}

// BulkCreate uploads players in one request. The API creates what it can
// and reports the rows it rejected, so a partially failed upload still
// returns a nil error with Created < len(players).
func (p *PlayersClient) BulkCreate(ctx context.Context, players []BulkPlayer) (*BulkResult, error) {
	body := struct {
		Players []BulkPlayer `json:"players"`
	}{Players: players}

	var out BulkResult
	if err := p.gw.Post(ctx, "/players/bulk", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
