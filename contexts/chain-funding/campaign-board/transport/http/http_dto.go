package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CampaignDTO struct {
	ID              int    `json:"id"`
	Owner           string `json:"owner"`
	Target          string `json:"target"`
	AmountCollected string `json:"amount_collected"`
	Deadline        string `json:"deadline"`
	Claimed         bool   `json:"claimed"`
	Active          bool   `json:"active"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Image           string `json:"image"`
}

type ActionStateDTO struct {
	Donate     map[int]bool `json:"donate"`
	Deactivate map[int]bool `json:"deactivate"`
}

type BoardResponse struct {
	Campaigns   []CampaignDTO  `json:"campaigns"`
	Loading     bool           `json:"loading"`
	Error       string         `json:"error"`
	ActionState ActionStateDTO `json:"action_state"`
}

type ListCampaignsResponse struct {
	Items []CampaignDTO `json:"items"`
}

type GetCampaignResponse struct {
	Campaign CampaignDTO `json:"campaign"`
}

type DonateRequest struct {
	Amount string `json:"amount"`
}

type DonateResponse struct {
	TxHash      string `json:"tx_hash"`
	BlockNumber uint64 `json:"block_number"`
}

type DeactivateRequest struct {
	Confirmed bool `json:"confirmed"`
}

type DeactivateResponse struct {
	Performed   bool   `json:"performed"`
	TxHash      string `json:"tx_hash,omitempty"`
	BlockNumber uint64 `json:"block_number,omitempty"`
}
