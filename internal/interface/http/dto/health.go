package dto

// HealthResponse /ping响应数据
type HealthResponse struct {
	Message  string `json:"message" example:"pong"`
	Status   string `json:"status" example:"healthy"`
	Database string `json:"database" example:"up"`
}
