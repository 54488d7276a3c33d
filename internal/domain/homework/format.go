// internal/domain/homework/format.go
package homework

import (
	"fmt"

	"homework_status_bot/internal/domain/apperror"
)

// ParseStatus builds the chat message for a homework record.
func ParseStatus(hw Homework) (string, error) {
	if hw.Name == nil {
		return "", apperror.New(apperror.KindMalformedResponse, "homework_name", "key is missing")
	}
	if hw.Status == nil {
		return "", apperror.New(apperror.KindMalformedResponse, "status", "key is missing")
	}

	verdict, ok := Verdict(*hw.Status)
	if !ok {
		return "", apperror.New(apperror.KindUnknownStatus, "status",
			fmt.Sprintf("unknown homework status %q", string(*hw.Status)))
	}
	return fmt.Sprintf("Изменился статус проверки работы \"%s\". %s", *hw.Name, verdict), nil
}
