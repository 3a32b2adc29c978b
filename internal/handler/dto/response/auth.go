package response

import "oficina-criativa/internal/usecase/queries"

type MagicLinkResponse struct {
	OK bool `json:"ok"`
	// Token is exposed in debug mode only, for local development
	// without a mail sender.
	Token string `json:"token,omitempty"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	UserID       string `json:"user_id"`
	Role         string `json:"role"`
}

type MeResponse struct {
	User *queries.AuthorizedUserView `json:"user"`
}
