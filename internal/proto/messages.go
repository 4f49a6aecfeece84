// Package proto declares the diarykeeper wire contract: request/response
// messages, the DiaryService and IdentityService descriptors, typed client
// stubs and server registration. Messages travel through the JSON codec
// registered in codec.go; timestamps use the protobuf well-known types.
package proto

import "google.golang.org/protobuf/types/known/timestamppb"

type Entry struct {
	Id        string                 `json:"id"`
	Title     string                 `json:"title"`
	Content   string                 `json:"content"`
	AiInsight string                 `json:"ai_insight,omitempty"`
	CreatedAt *timestamppb.Timestamp `json:"created_at,omitempty"`
	UpdatedAt *timestamppb.Timestamp `json:"updated_at,omitempty"`
}

type ListEntriesResponse struct {
	Entries []*Entry `json:"entries"`
}

type GetEntryRequest struct {
	Id string `json:"id"`
}

type CreateEntryRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type UpdateEntryRequest struct {
	Id      string `json:"id"`
	Title   string `json:"title,omitempty"`
	Content string `json:"content,omitempty"`
}

type DeleteEntryRequest struct {
	Id string `json:"id"`
}

type InsightRequest struct {
	Id string `json:"id"`
}

type RecommendationRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// InsightResponse carries both insight and recommendation text.
type InsightResponse struct {
	Insight string `json:"insight"`
}

type AdvisorStatusResponse struct {
	Available      bool     `json:"available"`
	ModelAvailable bool     `json:"model_available"`
	Model          string   `json:"model"`
	Models         []string `json:"models,omitempty"`
	Error          string   `json:"error,omitempty"`
}

type PingResponse struct {
	Status string `json:"status"`
}

type SignUpRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name,omitempty"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type SignOutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type TokenResponse struct {
	AccessToken  string                 `json:"access_token"`
	RefreshToken string                 `json:"refresh_token"`
	ExpiresAt    *timestamppb.Timestamp `json:"expires_at,omitempty"`
}
