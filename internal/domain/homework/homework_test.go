package homework

import (
	"testing"

	"homework_status_bot/internal/domain/apperror"
)

func strPtr(s string) *string    { return &s }
func statusPtr(s Status) *Status { return &s }

func TestParseStatusKnownStatuses(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusApproved, `Изменился статус проверки работы "hw1". Работа проверена: ревьюеру всё понравилось. Ура!`},
		{StatusReviewing, `Изменился статус проверки работы "hw1". Работа взята на проверку ревьюером.`},
		{StatusRejected, `Изменился статус проверки работы "hw1". Работа проверена: у ревьюера есть замечания.`},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			got, err := ParseStatus(Homework{Name: strPtr("hw1"), Status: statusPtr(tt.status)})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseStatusErrors(t *testing.T) {
	tests := []struct {
		name      string
		hw        Homework
		wantKind  apperror.Kind
		wantField string
	}{
		{"unknown status", Homework{Name: strPtr("hw1"), Status: statusPtr("lost")}, apperror.KindUnknownStatus, "status"},
		{"empty status", Homework{Name: strPtr("hw1"), Status: statusPtr("")}, apperror.KindUnknownStatus, "status"},
		{"missing name", Homework{Status: statusPtr(StatusApproved)}, apperror.KindMalformedResponse, "homework_name"},
		{"missing status", Homework{Name: strPtr("hw1")}, apperror.KindMalformedResponse, "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := ParseStatus(tt.hw)
			if err == nil {
				t.Fatalf("expected error, got message %q", msg)
			}
			if msg != "" {
				t.Errorf("expected no message on error, got %q", msg)
			}
			appErr, ok := err.(*apperror.Error)
			if !ok {
				t.Fatalf("expected *apperror.Error, got %T", err)
			}
			if appErr.Kind != tt.wantKind || appErr.Field != tt.wantField {
				t.Errorf("got kind=%s field=%s, want kind=%s field=%s", appErr.Kind, appErr.Field, tt.wantKind, tt.wantField)
			}
		})
	}
}

func TestCheckResponseValid(t *testing.T) {
	raw := []byte(`{
		"homeworks": [
			{"id": 1, "homework_name": "hw1", "status": "approved", "reviewer_comment": "ok", "lesson_name": "l1"},
			{"homework_name": "hw2", "status": "reviewing"}
		],
		"current_date": 1700000000
	}`)

	resp, err := CheckResponse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.CurrentDate != 1700000000 {
		t.Errorf("CurrentDate = %d, want 1700000000", resp.CurrentDate)
	}
	if len(resp.Homeworks) != 2 {
		t.Fatalf("got %d homeworks, want 2", len(resp.Homeworks))
	}
	if *resp.Homeworks[0].Name != "hw1" || *resp.Homeworks[1].Status != StatusReviewing {
		t.Errorf("unexpected homeworks: %+v", resp.Homeworks)
	}
	if resp.Homeworks[0].ReviewerComment != "ok" {
		t.Errorf("ReviewerComment = %q, want ok", resp.Homeworks[0].ReviewerComment)
	}
}

func TestCheckResponseEmptyList(t *testing.T) {
	resp, err := CheckResponse([]byte(`{"homeworks": [], "current_date": 5}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Homeworks) != 0 || resp.CurrentDate != 5 {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestCheckResponseMalformed(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantField string
	}{
		{"not an object", `[1, 2]`, "response"},
		{"null body", `null`, "response"},
		{"missing homeworks", `{"current_date": 1}`, "homeworks"},
		{"homeworks not a list", `{"homeworks": {"a": 1}, "current_date": 1}`, "homeworks"},
		{"homeworks null", `{"homeworks": null, "current_date": 1}`, "homeworks"},
		{"record not an object", `{"homeworks": ["hw"], "current_date": 1}`, "homeworks"},
		{"missing current_date", `{"homeworks": []}`, "current_date"},
		{"current_date string", `{"homeworks": [], "current_date": "1"}`, "current_date"},
		{"current_date float", `{"homeworks": [], "current_date": 1.5}`, "current_date"},
		{"current_date null", `{"homeworks": [], "current_date": null}`, "current_date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CheckResponse([]byte(tt.raw))
			if err == nil {
				t.Fatal("expected error")
			}
			if !apperror.IsKind(err, apperror.KindMalformedResponse) {
				t.Errorf("expected MalformedResponse, got %v", err)
			}
			if appErr := err.(*apperror.Error); appErr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", appErr.Field, tt.wantField)
			}
		})
	}
}
