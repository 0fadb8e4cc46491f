package handler

// createdResponse is returned by every create operation: 201 with the new id.
type createdResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// messageResponse is returned by updates and other mutations that neither
// create a row nor delete one.
type messageResponse struct {
	Message string `json:"message"`
}
