package fbdomain

// TokenResponse representa a resposta do endpoint /oauth/access_token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// AuthResponse é o authResponse entregue pelo SDK JavaScript após o login no popup
type AuthResponse struct {
	AccessToken              string `json:"accessToken"`
	UserID                   string `json:"userID"`
	GraphDomain              string `json:"graphDomain"`
	ExpiresIn                int64  `json:"expiresIn"`
	DataAccessExpirationTime int64  `json:"data_access_expiration_time"`
	SignedRequest            string `json:"signedRequest"`
}

type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
