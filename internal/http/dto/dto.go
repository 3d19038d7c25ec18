package dto

import "github.com/vbncursed/vkr/wallet-service/internal/models"

type CreateSaveLinkRequest struct {
	ClassSuffix  string        `json:"class_suffix"`
	ObjectSuffix string        `json:"object_suffix"`
	Ticket       models.Ticket `json:"ticket"`
}

type CreateSaveLinkResponse struct {
	URL            string       `json:"url"`
	ObjectID       string       `json:"object_id"`
	ClassID        string       `json:"class_id"`
	ObjectInserted bool         `json:"object_inserted"`
	IssuedAt       string       `json:"issued_at"`
	Warnings       []WarningDTO `json:"warnings"`
}

type WarningDTO struct {
	Op         string `json:"op"`
	ResourceID string `json:"resource_id"`
	Code       int    `json:"code,omitempty"`
	Message    string `json:"message"`
}

type EnsureClassRequest struct {
	ClassSuffix string `json:"class_suffix"`
}

type EnsureClassResponse struct {
	ClassID  string       `json:"class_id"`
	Created  bool         `json:"created"`
	Warnings []WarningDTO `json:"warnings"`
}

type ObjectRefDTO struct {
	ObjectSuffix string `json:"object_suffix"`
	ClassSuffix  string `json:"class_suffix"`
}

// ExistingLinkRequest — пустой objects означает демонстрационный набор
type ExistingLinkRequest struct {
	Objects map[string]ObjectRefDTO `json:"objects"`
}

type ExistingLinkResponse struct {
	URL      string   `json:"url"`
	Kinds    []string `json:"kinds"`
	IssuedAt string   `json:"issued_at"`
}
