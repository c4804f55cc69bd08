package request

// UpdateStoreSettingsRequest is a partial update; omitted fields keep their
// current value. An empty closed_until clears the reopen date.
type UpdateStoreSettingsRequest struct {
	PhoneNumber   *string `json:"phone_number"`
	IsClosed      *bool   `json:"is_closed"`
	ClosedMessage *string `json:"closed_message"`
	ClosedUntil   *string `json:"closed_until"` // "2006-01-02"
}
