package httptransport

type GeneratePoemRequest struct {
	Title string `json:"title"`
}

type GeneratePoemResponse struct {
	Content string `json:"content"`
	Theme   string `json:"theme"`
	Style   string `json:"style"`
}
