package directory

import (
	"context"
	"fmt"
	"net/http"

	admin "google.golang.org/api/admin/directory/v1"
	"google.golang.org/api/option"
)

// MaxUserResults caps user listings; larger requests are clamped.
const MaxUserResults = 500

// pageSize is the per-request page size for user listings. The Admin SDK
// rejects pages larger than 500.
const pageSize = 100

// UserInfo is the flat listing view of one directory user.
type UserInfo struct {
	ID           string
	PrimaryEmail string
	FullName     string
	OrgUnitPath  string
	IsAdmin      bool
	Suspended    bool
}

// Client wraps the Admin SDK Directory service for one impersonated user.
type Client struct {
	svc      *admin.Service
	identity string
}

// Identity returns the impersonated user this client is bound to.
func (c *Client) Identity() string {
	return c.identity
}

// NewClient creates a read-only Directory client from a delegated HTTP
// client. The client is bound to the identity the HTTP client impersonates
// and must not be reused for another user.
func NewClient(ctx context.Context, httpClient *http.Client, identity string) (*Client, error) {
	svc, err := admin.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create Directory service: %w", err)
	}
	return &Client{svc: svc, identity: identity}, nil
}

// ListUsers lists users of the impersonated user's customer account,
// optionally filtered by an Admin SDK search query. Pagination stops at
// maxResults (clamped to 1..MaxUserResults) or when no page token remains.
func (c *Client) ListUsers(ctx context.Context, query string, maxResults int64) ([]UserInfo, error) {
	if maxResults <= 0 {
		maxResults = 100
	}
	if maxResults > MaxUserResults {
		maxResults = MaxUserResults
	}

	var users []UserInfo
	pageToken := ""
	for {
		remaining := maxResults - int64(len(users))
		if remaining <= 0 {
			break
		}
		size := remaining
		if size > pageSize {
			size = pageSize
		}

		call := c.svc.Users.List().
			Context(ctx).
			Customer("my_customer").
			OrderBy("email").
			MaxResults(size)
		if query != "" {
			call = call.Query(query)
		}
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		res, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list users: %w", err)
		}

		for _, u := range res.Users {
			users = append(users, toUserInfo(u))
		}

		if res.NextPageToken == "" {
			break
		}
		pageToken = res.NextPageToken
	}

	if int64(len(users)) > maxResults {
		users = users[:maxResults]
	}
	return users, nil
}

func toUserInfo(u *admin.User) UserInfo {
	info := UserInfo{
		ID:           u.Id,
		PrimaryEmail: u.PrimaryEmail,
		OrgUnitPath:  u.OrgUnitPath,
		IsAdmin:      u.IsAdmin,
		Suspended:    u.Suspended,
	}
	if u.Name != nil {
		info.FullName = u.Name.FullName
	}
	return info
}
