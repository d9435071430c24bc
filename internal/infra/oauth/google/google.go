package infra_oauth_google

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/blogforge/core/internal/config"
	"github.com/blogforge/core/internal/model"
	usecase_auth "github.com/blogforge/core/internal/usecase/auth"
)

const defaultUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

var (
	// LoginScopes is the scope set of the login entry point.
	LoginScopes = []string{
		"openid",
		"https://www.googleapis.com/auth/userinfo.email",
		"https://www.googleapis.com/auth/userinfo.profile",
	}

	// SignOnScopes is the scope set of the registration entry point.
	SignOnScopes = []string{
		"https://www.googleapis.com/auth/userinfo.email",
		"https://www.googleapis.com/auth/userinfo.profile",
	}
)

// Client wraps one oauth2.Config. The configuration is immutable after New,
// so a single Client is shared across requests with no locking.
type Client struct {
	cfg         *oauth2.Config
	userInfoURL string
	httpClient  *http.Client
}

func New(cfg config.GoogleOAuth, redirectURL string, scopes []string) *Client {
	return &Client{
		cfg: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  redirectURL,
			Scopes:       scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.AuthURL,
				TokenURL: cfg.TokenURL,
			},
		},
		userInfoURL: defaultUserInfoURL,
		httpClient:  http.DefaultClient,
	}
}

func (c *Client) AuthCodeURL(state string) string {
	return c.cfg.AuthCodeURL(state)
}

func (c *Client) Exchange(ctx context.Context, code string) (usecase_auth.Token, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)

	token, err := c.cfg.Exchange(ctx, code)
	if err != nil {
		return usecase_auth.Token{}, errors.Join(usecase_auth.ErrExchangeFailed, err)
	}

	return usecase_auth.Token{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
	}, nil
}

// UserInfo queries the v2 userinfo endpoint with the bearer token passed as
// the oauth_token query parameter, the way the rest of the platform expects
// the profile shape: {"name": ..., "email": ..., "verified_email": ...}.
func (c *Client) UserInfo(ctx context.Context, accessToken string) (model.UserInfo, error) {
	url := fmt.Sprintf("%s?oauth_token=%s", c.userInfoURL, accessToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return model.UserInfo{}, errors.Join(usecase_auth.ErrUserInfoFetch, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.UserInfo{}, errors.Join(usecase_auth.ErrUserInfoFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.UserInfo{}, fmt.Errorf("%w: status %d", usecase_auth.ErrUserInfoFetch, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.UserInfo{}, errors.Join(usecase_auth.ErrUserInfoFetch, err)
	}

	var info struct {
		Name          string `json:"name"`
		Email         string `json:"email"`
		VerifiedEmail bool   `json:"verified_email"`
	}
	if err := json.Unmarshal(body, &info); err != nil {
		return model.UserInfo{}, errors.Join(usecase_auth.ErrUserInfoParse, err)
	}
	if info.Email == "" {
		return model.UserInfo{}, fmt.Errorf("%w: missing email", usecase_auth.ErrUserInfoParse)
	}

	return model.UserInfo{
		Name:          info.Name,
		Email:         info.Email,
		VerifiedEmail: info.VerifiedEmail,
	}, nil
}
