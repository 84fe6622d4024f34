package model

// ChatRequest is a question about the project.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse carries the assistant reply and the retrieved passages
// it was grounded on. Context is empty for greetings and for questions
// the project description does not cover.
type ChatResponse struct {
	Reply   string   `json:"reply"`
	Context []string `json:"context"`
}
