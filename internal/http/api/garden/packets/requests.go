package packets

type CreateAlarmRequest struct {
	Activity  string   `json:"activity" binding:"required"`
	Frequency string   `json:"frequency"`
	Date      string   `json:"date" binding:"required"`
	Times     []string `json:"times"`
}

type UpdateAlarmRequest struct {
	Activity  *string   `json:"activity"`
	Frequency *string   `json:"frequency"`
	Date      *string   `json:"date"`
	Times     *[]string `json:"times"`
	Status    *string   `json:"status"`
}

type SetOccurrenceStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
