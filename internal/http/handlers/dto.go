package handlers

import (
	"github.com/BlackSenju/techhive-automation/internal/activity"
	"github.com/BlackSenju/techhive-automation/internal/automation"
	"github.com/BlackSenju/techhive-automation/internal/models"
)

type ProductsResponse struct {
	Products []models.Product `json:"products"`
	Message  string           `json:"message,omitempty"`
}

type BulkEditRequest struct {
	ProductIDs []int64        `json:"product_ids"`
	Updates    map[string]any `json:"updates"`
}

type BulkEditResponse struct {
	Results    []automation.BulkEditResult `json:"results"`
	Total      int                         `json:"total"`
	Successful int                         `json:"successful"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type LogsResponse struct {
	Logs []activity.Entry `json:"logs"`
}

type HealthResponse struct {
	Status            string `json:"status"`
	Timestamp         string `json:"timestamp"`
	ShopifyConfigured bool   `json:"shopifyConfigured"`
}
