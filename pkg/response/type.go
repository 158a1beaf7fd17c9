package response

// DefaultErrorMessage is returned when a failure cannot be described more precisely.
const DefaultErrorMessage = "Internal server error"

// ErrorResp is the JSON body of every failed request.
type ErrorResp struct {
	Error string `json:"error"`
}
