package models

type AddItemRequest struct {
	Product  ProductPayload `json:"product"`
	Quantity int            `json:"quantity"`
}

type SuggestionRequest struct {
	ProductName string `json:"productName" binding:"required"`
}

type SuggestionResponse struct {
	Suggestion string `json:"suggestion"`
}

type RetryPendingResponse struct {
	Recovered int `json:"recovered"`
	Remaining int `json:"remaining"`
}
