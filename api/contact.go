package api

type Contact struct {
	Bucket   int    `json:"bucket"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	HasImage bool   `json:"has_image"`
	ImageURL string `json:"image_url"`
}

type ContactList struct {
	Contacts []Contact `json:"contacts"`
	Message  string    `json:"message,omitempty"`
}

type SaveContactResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Phone   string  `json:"phone_message"`
	Contact Contact `json:"contact"`
}

type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type ClassifyRequest struct {
	Phone string `json:"phone"`
}

type ClassifyResponse struct {
	Valid   bool   `json:"valid"`
	Class   string `json:"class"`
	Country string `json:"country,omitempty"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
