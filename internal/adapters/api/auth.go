package api

import (
	"context"

	"github.com/mvetrov/assetmart-cli/internal/domain"
	"github.com/mvetrov/assetmart-cli/internal/ports"
)

var _ ports.AuthAPI = (*Client)(nil)

type loginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type tokenSchema struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

type roleSchema struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type profileSchema struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Country   string `json:"country"`
	AvatarURL string `json:"avatar_url"`
}

type userSchema struct {
	ID       int64          `json:"id"`
	Email    string         `json:"email"`
	Username string         `json:"username"`
	Roles    []roleSchema   `json:"roles"`
	Profile  *profileSchema `json:"profile"`
}

type profileCompletionSchema struct {
	Percent       float64  `json:"percent"`
	MissingFields []string `json:"missing_fields"`
}

func (c *Client) Login(ctx context.Context, identifier, password string) (domain.TokenPair, error) {
	var tokens tokenSchema
	if err := c.PostJSON(ctx, "auth/login", loginRequest{Identifier: identifier, Password: password}, &tokens); err != nil {
		return domain.TokenPair{}, err
	}

	return domain.TokenPair{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (c *Client) Register(ctx context.Context, reg domain.Registration) error {
	return c.PostJSON(ctx, "auth/register", registerRequest{
		Email:    reg.Email,
		Password: reg.Password,
		Username: reg.Username,
	}, nil)
}

func (c *Client) Logout(ctx context.Context) error {
	return c.PostJSON(ctx, "auth/logout", nil, nil)
}

// CurrentUser always hits the network: it is the session-bearing call and a
// stale cached identity would defeat hydration.
func (c *Client) CurrentUser(ctx context.Context) (domain.User, error) {
	var user userSchema
	if err := c.GetJSON(ctx, "auth/me", nil, &user, QueryOptions{Fresh: true}); err != nil {
		return domain.User{}, err
	}

	return fromUserSchema(user), nil
}

func (c *Client) ProfileCompletion(ctx context.Context) (domain.ProfileCompletion, error) {
	var completion profileCompletionSchema
	if err := c.GetJSON(ctx, "users/me/profile-completion", nil, &completion, QueryOptions{Fresh: true}); err != nil {
		return domain.ProfileCompletion{}, err
	}

	return domain.ProfileCompletion{
		Percent:       completion.Percent,
		MissingFields: completion.MissingFields,
	}, nil
}

func fromUserSchema(user userSchema) domain.User {
	roles := make([]domain.Role, 0, len(user.Roles))
	for _, role := range user.Roles {
		roles = append(roles, domain.Role{ID: role.ID, Name: role.Name})
	}

	var profile *domain.Profile
	if user.Profile != nil {
		profile = &domain.Profile{
			FirstName: user.Profile.FirstName,
			LastName:  user.Profile.LastName,
			Country:   user.Profile.Country,
			AvatarURL: user.Profile.AvatarURL,
		}
	}

	return domain.User{
		ID:       user.ID,
		Email:    user.Email,
		Username: user.Username,
		Roles:    roles,
		Profile:  profile,
	}
}
