package response

// SubmitResponse and ErrorResponse are the only result shapes the public
// submission endpoints produce, matching what the site's forms expect.
type SubmitResponse struct {
	Success string `json:"success"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type TokenResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

type ListResponse struct {
	Data interface{} `json:"data"`
}

type StatsResponse struct {
	BrandTotal     int64 `json:"brand_total"`
	CreatorTotal   int64 `json:"creator_total"`
	ContactTotal   int64 `json:"contact_total"`
	BrandLast24h   int64 `json:"brand_last_24h"`
	CreatorLast24h int64 `json:"creator_last_24h"`
	ContactLast24h int64 `json:"contact_last_24h"`
}
