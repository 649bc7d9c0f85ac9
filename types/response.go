package types

type ApiResponse struct {
	Message string      `json:"message"`
	Status  int         `json:"status"`
	Count   *int        `json:"count,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}
