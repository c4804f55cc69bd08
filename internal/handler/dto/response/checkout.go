package response

type CreateOrderResponse struct {
	OrderNumber  string `json:"order_number"`
	ClientSecret string `json:"client_secret"`
}

type ValidateZipcodeResponse struct {
	Valid bool   `json:"valid"`
	City  string `json:"city,omitempty"`
}
