package request

type CreateZipcodeRequest struct {
	Zipcode string `json:"zipcode" binding:"required,len=5,numeric"`
	City    string `json:"city" binding:"required"`
}
