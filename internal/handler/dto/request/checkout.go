package request

type CreateOrderRequest struct {
	PackageType   string `json:"package_type" binding:"required"`
	HasChocolates bool   `json:"has_chocolates"`

	CardOccasion  string `json:"card_occasion"`
	CardMessage   string `json:"card_message"`
	CardSignature string `json:"card_signature"`

	RecipientName        string  `json:"recipient_name" binding:"required"`
	DeliveryAddress      string  `json:"delivery_address" binding:"required"`
	DeliveryCity         string  `json:"delivery_city" binding:"required"`
	DeliveryState        string  `json:"delivery_state"`
	DeliveryZipcode      string  `json:"delivery_zipcode" binding:"required"`
	GateCode             *string `json:"gate_code"`
	DeliveryInstructions *string `json:"delivery_instructions"`
	DeliveryTimeSlot     string  `json:"delivery_time_slot" binding:"required"`

	SenderName  string `json:"sender_name" binding:"required"`
	SenderPhone string `json:"sender_phone" binding:"required"`
	SenderEmail string `json:"sender_email" binding:"required,email"`
}
