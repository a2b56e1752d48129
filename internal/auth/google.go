package auth

import (
	"context"
	"fmt"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	goauth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

// GoogleUser is the subset of the Google userinfo payload we care about.
type GoogleUser struct {
	ID    string
	Email string
	Name  string
}

// GoogleAuthenticator drives the Google OAuth2 authorization-code flow.
type GoogleAuthenticator struct {
	oauthConfig *oauth2.Config
}

func NewGoogleAuthenticator(clientID, clientSecret, redirectURL string) *GoogleAuthenticator {
	return &GoogleAuthenticator{
		oauthConfig: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

func (ga *GoogleAuthenticator) AuthCodeURL(state string) string {
	return ga.oauthConfig.AuthCodeURL(state)
}

// UserInfo exchanges the authorization code and fetches the user's
// Google profile. Outbound calls go through a traced http client.
func (ga *GoogleAuthenticator) UserInfo(ctx context.Context, code string) (*GoogleUser, error) {
	tracedClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, tracedClient)

	token, err := ga.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}

	oauth2Service, err := goauth2.NewService(
		ctx,
		option.WithHTTPClient(ga.oauthConfig.Client(ctx, token)),
	)
	if err != nil {
		return nil, fmt.Errorf("create oauth2 service: %w", err)
	}

	userinfo, err := oauth2Service.Userinfo.Get().Do()
	if err != nil {
		return nil, fmt.Errorf("get google userinfo: %w", err)
	}

	return &GoogleUser{
		ID:    userinfo.Id,
		Email: userinfo.Email,
		Name:  userinfo.Name,
	}, nil
}
