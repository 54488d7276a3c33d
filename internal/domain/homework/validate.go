// internal/domain/homework/validate.go
package homework

import (
	"bytes"
	"encoding/json"
	"fmt"

	"homework_status_bot/internal/domain/apperror"
)

const (
	fieldResponse    = "response"
	fieldHomeworks   = "homeworks"
	fieldCurrentDate = "current_date"
)

// CheckResponse validates the shape of a raw API answer.
// The body must be an object with a "homeworks" array and an integer "current_date".
func CheckResponse(raw []byte) (*Response, error) {
	var body map[string]json.RawMessage
	if err := json.Unmarshal(raw, &body); err != nil || body == nil {
		return nil, apperror.New(apperror.KindMalformedResponse, fieldResponse, "response is not a JSON object")
	}

	homeworksRaw, ok := body[fieldHomeworks]
	if !ok {
		return nil, apperror.New(apperror.KindMalformedResponse, fieldHomeworks, "key is missing")
	}
	if !isArray(homeworksRaw) {
		return nil, apperror.New(apperror.KindMalformedResponse, fieldHomeworks, "value is not a list")
	}
	var homeworks []Homework
	if err := json.Unmarshal(homeworksRaw, &homeworks); err != nil {
		return nil, &apperror.Error{
			Kind:  apperror.KindMalformedResponse,
			Field: fieldHomeworks,
			Msg:   "list contains an invalid record",
			Err:   err,
		}
	}

	dateRaw, ok := body[fieldCurrentDate]
	if !ok {
		return nil, apperror.New(apperror.KindMalformedResponse, fieldCurrentDate, "key is missing")
	}
	var currentDate int64
	if isNull(dateRaw) || json.Unmarshal(dateRaw, &currentDate) != nil {
		return nil, apperror.New(apperror.KindMalformedResponse, fieldCurrentDate,
			fmt.Sprintf("value %s is not an integer", bytes.TrimSpace(dateRaw)))
	}

	return &Response{Homeworks: homeworks, CurrentDate: currentDate}, nil
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
