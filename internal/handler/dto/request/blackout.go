package request

type CreateBlockedSlotRequest struct {
	Date      string  `json:"date" binding:"required"`       // "2006-01-02"
	StartTime string  `json:"start_time" binding:"required"` // "HH:MM" or "HH:MM:SS"
	EndTime   string  `json:"end_time" binding:"required"`
	Reason    *string `json:"reason"`
}
