package models

// Envelope is the uniform mutation result shape. Payload pointers on the
// typed responses stay nil unless Success is true, so a failure never carries
// a partially populated payload.
type Envelope struct {
	Code      int       `json:"code"`
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	ErrorKind ErrorKind `json:"errorKind,omitempty"`
}

// StatusCode lets the response writer mirror the envelope code onto the HTTP
// status line.
func (e Envelope) StatusCode() int { return e.Code }

func OK(code int, message string) Envelope {
	return Envelope{Code: code, Success: true, Message: message}
}

func Fail(err *DomainError) Envelope {
	return Envelope{
		Code:      err.Kind.Code(),
		Success:   false,
		Message:   err.Message,
		ErrorKind: err.Kind,
	}
}

type CreateUserResponse struct {
	Envelope
	User *UserSummary `json:"user"`
}

type SignInResponse struct {
	Envelope
	Token string `json:"token"`
}

type UpdateUserResponse struct {
	Envelope
	User *UserSummary `json:"user"`
}

type UserTokenResponse struct {
	Envelope
	User *Principal `json:"user"`
}

type CreateArticleResponse struct {
	Envelope
	Article *Article `json:"article"`
}

type UpdateArticleResponse struct {
	Envelope
	Article *Article `json:"article"`
}

type CommentResponse struct {
	Envelope
	Comment *Comment `json:"comment"`
}

type DislikeResponse struct {
	Envelope
	Dislike *Dislike `json:"dislike"`
}
