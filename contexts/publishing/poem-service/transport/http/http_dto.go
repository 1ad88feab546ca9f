package httptransport

import "time"

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PoemResponse is the public projection of a stored poem.
type PoemResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Subdomain string    `json:"subdomain"`
	Theme     string    `json:"theme,omitempty"`
	Style     string    `json:"style,omitempty"`
	IsPublic  bool      `json:"is_public"`
	Views     int64     `json:"views"`
	CreatedAt time.Time `json:"created_at"`
}

type ListPoemsResponse struct {
	Items []PoemResponse `json:"items"`
}

// CreatePoemRequest is the body of POST /api/poems. IsPublic defaults to true
// when omitted.
type CreatePoemRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Theme    string `json:"theme,omitempty"`
	Style    string `json:"style,omitempty"`
	IsPublic *bool  `json:"is_public,omitempty"`
}

type CreatePoemResponse struct {
	Poem PoemResponse `json:"poem"`
	URL  string       `json:"url"`
}

type IncrementViewsResponse struct {
	Success bool `json:"success"`
}
