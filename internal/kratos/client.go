// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	ory "github.com/ory/client-go"

	"github.com/brucewavesmarket/saas-starter/internal/logging"
	"github.com/brucewavesmarket/saas-starter/internal/monitoring"
	"github.com/brucewavesmarket/saas-starter/internal/tracing"
)

type ClientInterface interface {
	SignUp(ctx context.Context, email, password string) (string, string, error)
	SignIn(ctx context.Context, email, password string) (string, string, error)
	SignOut(ctx context.Context, sessionToken string) error
	GetSessionIdentityID(ctx context.Context, sessionToken string) (string, error)
	GetIdentityIDByEmail(ctx context.Context, email string) (string, error)
	GetIdentity(ctx context.Context, id string) (*ory.Identity, error)
	UpdatePassword(ctx context.Context, identityID, newPassword string) error
	DeleteIdentity(ctx context.Context, id string) error
	EmailsByIdentityID(ctx context.Context) (map[string]string, error)
	CreateRecoveryLink(ctx context.Context, identityID string, expiresIn string) (string, string, error)
}

type Client struct {
	public *ory.APIClient
	admin  *ory.APIClient

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(kratosPublicURL, kratosAdminURL string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	publicConf := ory.NewConfiguration()
	publicConf.Servers = ory.ServerConfigurations{{URL: kratosPublicURL}}

	adminConf := ory.NewConfiguration()
	adminConf.Servers = ory.ServerConfigurations{{URL: kratosAdminURL}}

	return &Client{
		public:  ory.NewAPIClient(publicConf),
		admin:   ory.NewAPIClient(adminConf),
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// SignUp registers a new identity through the native registration flow and
// returns the identity id and the session token established by Kratos.
func (c *Client) SignUp(ctx context.Context, email, password string) (string, string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.SignUp")
	defer span.End()

	flow, _, err := c.public.FrontendAPI.CreateNativeRegistrationFlow(ctx).Execute()
	if err != nil {
		return "", "", fmt.Errorf("failed to create registration flow: %w", err)
	}

	body := ory.UpdateRegistrationFlowWithPasswordMethodAsUpdateRegistrationFlowBody(
		&ory.UpdateRegistrationFlowWithPasswordMethod{
			Method:   "password",
			Password: password,
			Traits:   map[string]interface{}{"email": email},
		},
	)

	result, _, err := c.public.FrontendAPI.UpdateRegistrationFlow(ctx).
		Flow(flow.Id).
		UpdateRegistrationFlowBody(body).
		Execute()
	if err != nil {
		return "", "", fmt.Errorf("registration failed: %w", err)
	}

	token := ""
	if result.SessionToken != nil {
		token = *result.SessionToken
	}

	return result.Identity.Id, token, nil
}

// SignIn authenticates an identity through the native login flow.
func (c *Client) SignIn(ctx context.Context, email, password string) (string, string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.SignIn")
	defer span.End()

	flow, _, err := c.public.FrontendAPI.CreateNativeLoginFlow(ctx).Execute()
	if err != nil {
		return "", "", fmt.Errorf("failed to create login flow: %w", err)
	}

	body := ory.UpdateLoginFlowWithPasswordMethodAsUpdateLoginFlowBody(
		&ory.UpdateLoginFlowWithPasswordMethod{
			Method:     "password",
			Identifier: email,
			Password:   password,
		},
	)

	result, _, err := c.public.FrontendAPI.UpdateLoginFlow(ctx).
		Flow(flow.Id).
		UpdateLoginFlowBody(body).
		Execute()
	if err != nil {
		return "", "", fmt.Errorf("login failed: %w", err)
	}

	token := ""
	if result.SessionToken != nil {
		token = *result.SessionToken
	}

	identityID := ""
	if result.Session.Identity != nil {
		identityID = result.Session.Identity.Id
	}

	return identityID, token, nil
}

func (c *Client) SignOut(ctx context.Context, sessionToken string) error {
	ctx, span := c.tracer.Start(ctx, "kratos.SignOut")
	defer span.End()

	_, err := c.public.FrontendAPI.PerformNativeLogout(ctx).
		PerformNativeLogoutBody(ory.PerformNativeLogoutBody{SessionToken: sessionToken}).
		Execute()
	if err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}

	return nil
}

// GetSessionIdentityID resolves a session token to its identity id. An
// invalid or expired session returns an empty id, not an error.
func (c *Client) GetSessionIdentityID(ctx context.Context, sessionToken string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.GetSessionIdentityID")
	defer span.End()

	session, r, err := c.public.FrontendAPI.ToSession(ctx).
		XSessionToken(sessionToken).
		Execute()
	if err != nil {
		if r != nil && (r.StatusCode == http.StatusUnauthorized || r.StatusCode == http.StatusForbidden) {
			return "", nil
		}
		return "", fmt.Errorf("failed to fetch session: %w", err)
	}

	if session.Identity == nil {
		return "", nil
	}

	return session.Identity.Id, nil
}

func (c *Client) GetIdentityIDByEmail(ctx context.Context, email string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.GetIdentityIDByEmail")
	defer span.End()

	// NOTE: we are setting an empty page token because of https://github.com/ory/sdk/issues/461
	ids, r, err := c.admin.IdentityAPI.ListIdentities(ctx).CredentialsIdentifier(email).PageToken("").Execute()
	if err != nil {
		if r != nil && r.StatusCode == http.StatusNotFound {
			return "", nil
		}
		return "", fmt.Errorf("failed to list identities: %w", err)
	}

	if len(ids) == 0 {
		return "", nil
	}

	return ids[0].Id, nil
}

func (c *Client) GetIdentity(ctx context.Context, id string) (*ory.Identity, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.GetIdentity")
	defer span.End()

	identity, _, err := c.admin.IdentityAPI.GetIdentity(ctx, id).Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get identity: %w", err)
	}

	return identity, nil
}

// UpdatePassword replaces the identity's password credential via the admin
// API, echoing back the current schema and traits.
func (c *Client) UpdatePassword(ctx context.Context, identityID, newPassword string) error {
	ctx, span := c.tracer.Start(ctx, "kratos.UpdatePassword")
	defer span.End()

	identity, _, err := c.admin.IdentityAPI.GetIdentity(ctx, identityID).Execute()
	if err != nil {
		return fmt.Errorf("failed to get identity: %w", err)
	}

	traits, _ := identity.Traits.(map[string]interface{})

	body := ory.UpdateIdentityBody{
		SchemaId: identity.SchemaId,
		Traits:   traits,
		Credentials: &ory.IdentityWithCredentials{
			Password: &ory.IdentityWithCredentialsPassword{
				Config: &ory.IdentityWithCredentialsPasswordConfig{
					Password: &newPassword,
				},
			},
		},
	}

	_, _, err = c.admin.IdentityAPI.UpdateIdentity(ctx, identityID).
		UpdateIdentityBody(body).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

func (c *Client) DeleteIdentity(ctx context.Context, id string) error {
	ctx, span := c.tracer.Start(ctx, "kratos.DeleteIdentity")
	defer span.End()

	_, err := c.admin.IdentityAPI.DeleteIdentity(ctx, id).Execute()
	if err != nil {
		return fmt.Errorf("failed to delete identity: %w", err)
	}

	return nil
}

const listIdentitiesPageSize = 250

// EmailsByIdentityID lists every identity from the admin API and returns an
// id to email map. Emails are not stored in profiles; team resolution joins
// them in from here. The admin API paginates, so the listing follows the
// rel="next" link until the last page.
func (c *Client) EmailsByIdentityID(ctx context.Context) (map[string]string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.EmailsByIdentityID")
	defer span.End()

	emails := make(map[string]string)

	token := ""
	for {
		ids, r, err := c.admin.IdentityAPI.ListIdentities(ctx).
			PageSize(listIdentitiesPageSize).
			PageToken(token).
			Execute()
		if err != nil {
			return nil, fmt.Errorf("failed to list identities: %w", err)
		}

		for _, identity := range ids {
			if traits, ok := identity.Traits.(map[string]interface{}); ok {
				if email, ok := traits["email"].(string); ok {
					emails[identity.Id] = email
				}
			}
		}

		token = nextPageToken(r)
		if token == "" || len(ids) == 0 {
			break
		}
	}

	return emails, nil
}

// nextPageToken extracts the page_token of the rel="next" link from a
// paginated admin API response. An absent link means the last page.
func nextPageToken(r *http.Response) string {
	if r == nil {
		return ""
	}

	for _, header := range r.Header.Values("Link") {
		for _, link := range strings.Split(header, ",") {
			parts := strings.Split(link, ";")
			if len(parts) < 2 {
				continue
			}
			if !strings.Contains(parts[1], `rel="next"`) {
				continue
			}

			raw := strings.Trim(strings.TrimSpace(parts[0]), "<>")
			u, err := url.Parse(raw)
			if err != nil {
				continue
			}
			return u.Query().Get("page_token")
		}
	}

	return ""
}

func (c *Client) CreateRecoveryLink(ctx context.Context, identityID string, expiresIn string) (string, string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.CreateRecoveryLink")
	defer span.End()

	body := ory.CreateRecoveryCodeForIdentityBody{
		IdentityId: identityID,
		ExpiresIn:  &expiresIn,
	}

	recoveryCode, _, err := c.admin.IdentityAPI.CreateRecoveryCodeForIdentity(ctx).CreateRecoveryCodeForIdentityBody(body).Execute()
	if err != nil {
		return "", "", fmt.Errorf("failed to create recovery code: %w", err)
	}

	return recoveryCode.RecoveryLink, recoveryCode.RecoveryCode, nil
}
