package request

type SearchRequest struct {
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	PartySize int    `json:"party_size" binding:"required,min=1,max=12"`
}

type SelectAlternativeRequest struct {
	Time string `json:"time" binding:"required"`
}

type UpdateDetailsRequest struct {
	FullName        string `json:"full_name"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	SpecialRequests string `json:"special_requests"`
}
