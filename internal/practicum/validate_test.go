package practicum

import (
	"errors"
	"testing"
)

func TestCheckResponseShapes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{name: "valid", raw: `{"homeworks":[{"homework_name":"hw","status":"approved"}],"current_date":1}`},
		{name: "valid empty list", raw: `{"homeworks":[]}`},
		{name: "not an object", raw: `[1,2,3]`, wantErr: ErrMalformedResponse},
		{name: "scalar", raw: `42`, wantErr: ErrMalformedResponse},
		{name: "missing homeworks key", raw: `{"current_date":1}`, wantErr: ErrMissingField},
		{name: "homeworks is a string", raw: `{"homeworks":"nope"}`, wantErr: ErrMalformedField},
		{name: "homeworks is a number", raw: `{"homeworks":7}`, wantErr: ErrMalformedField},
		{name: "homeworks is an object", raw: `{"homeworks":{"a":1}}`, wantErr: ErrMalformedField},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			resp, err := CheckResponse([]byte(tt.raw))
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("CheckResponse error: %v", err)
				}
				if resp == nil {
					t.Fatal("expected non-nil response")
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCheckResponseDecodesRecords(t *testing.T) {
	t.Parallel()
	raw := `{"homeworks":[{"homework_name":"cat_project","status":"approved","lesson_name":"final"}],"current_date":1700000000}`
	resp, err := CheckResponse([]byte(raw))
	if err != nil {
		t.Fatalf("CheckResponse error: %v", err)
	}
	if len(resp.Homeworks) != 1 {
		t.Fatalf("expected 1 homework, got %d", len(resp.Homeworks))
	}
	hw := resp.Homeworks[0]
	if hw.HomeworkName != "cat_project" || hw.Status != "approved" {
		t.Fatalf("unexpected record: %+v", hw)
	}
	if resp.CurrentDate != 1700000000 {
		t.Fatalf("CurrentDate = %d", resp.CurrentDate)
	}
}
