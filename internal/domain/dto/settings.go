package dto

// SettingsRequest is the payload for updating the store connection.
type SettingsRequest struct {
	Domain   string `json:"domain" example:"my-shop.myshopify.com"`
	Token    string `json:"token" example:"shpat_..."`
	Timezone string `json:"timezone,omitempty" example:"+02:00"`
}

// SettingsResponse echoes the persisted settings with the token redacted.
type SettingsResponse struct {
	Domain     string `json:"domain" example:"my-shop.myshopify.com"`
	TokenSet   bool   `json:"token_set" example:"true"`
	Timezone   string `json:"timezone,omitempty" example:"+02:00"`
	Configured bool   `json:"configured" example:"true"`
}
