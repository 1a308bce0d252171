package model

type ValidationError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Param   string `json:"param"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

type NotFoundError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Param   string `json:"param"`
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// UploadError means the asset store rejected an upload. Registration aborts
// before any member row is written.
type UploadError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *UploadError) Error() string {
	return e.Message
}

type PersistenceError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *PersistenceError) Error() string {
	return e.Message
}
