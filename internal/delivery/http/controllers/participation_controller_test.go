package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"registrationdesk/internal/domain"
)

func TestParticipationController_AddPerson(t *testing.T) {
	t.Run("valid participation returns 201", func(t *testing.T) {
		svc := &mockParticipationService{result: domain.NewValidationResult()}
		ctrl := NewParticipationController(testLogger(), svc)

		body := `{"event_id":"` + testEventID + `","payment_method":"CASH","first_name":"Mari","last_name":"Maasikas","personal_code":"49403136526"}`
		req := httptest.NewRequest(http.MethodPost, "/participations/person", strings.NewReader(body))
		w := httptest.NewRecorder()

		ctrl.AddPerson(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
		}
		if svc.lastPerson.PersonalCode != "49403136526" {
			t.Fatalf("input did not reach the service: %+v", svc.lastPerson)
		}
	})

	t.Run("validation failure returns 422", func(t *testing.T) {
		svc := &mockParticipationService{result: invalidResult(domain.MsgInvalidCodeFormat)}
		ctrl := NewParticipationController(testLogger(), svc)

		req := httptest.NewRequest(http.MethodPost, "/participations/person", strings.NewReader(`{}`))
		w := httptest.NewRecorder()

		ctrl.AddPerson(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected status %d, got %d", http.StatusUnprocessableEntity, w.Code)
		}
	})

	t.Run("unknown field returns 400", func(t *testing.T) {
		svc := &mockParticipationService{result: domain.NewValidationResult()}
		ctrl := NewParticipationController(testLogger(), svc)

		req := httptest.NewRequest(http.MethodPost, "/participations/person", strings.NewReader(`{"surprise":true}`))
		w := httptest.NewRecorder()

		ctrl.AddPerson(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
		}
	})
}

func TestParticipationController_EditPerson(t *testing.T) {
	svc := &mockParticipationService{result: domain.NewValidationResult()}
	ctrl := NewParticipationController(testLogger(), svc)

	body := `{"payment_method":"CASH","first_name":"Maarja","last_name":"Maasikas","personal_code":"49403136526"}`
	req := httptest.NewRequest(http.MethodPut, "/participations/person/"+testParticipationID, strings.NewReader(body))
	req.SetPathValue("participationID", testParticipationID)
	w := httptest.NewRecorder()

	ctrl.EditPerson(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}
	if svc.lastPerson.ID != testParticipationID {
		t.Fatalf("expected path id on the input, got %q", svc.lastPerson.ID)
	}
}

func TestParticipationController_EditCompany(t *testing.T) {
	svc := &mockParticipationService{result: domain.NewValidationResult()}
	ctrl := NewParticipationController(testLogger(), svc)

	body := `{"payment_method":"Cash","company_name":"Maasikas AS","registry_code":"12345678","number_of_participants":9}`
	req := httptest.NewRequest(http.MethodPut, "/participations/company/"+testParticipationID, strings.NewReader(body))
	req.SetPathValue("participationID", testParticipationID)
	w := httptest.NewRecorder()

	ctrl.EditCompany(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}
	if svc.lastCompany.ID != testParticipationID {
		t.Fatalf("expected path id on the input, got %q", svc.lastCompany.ID)
	}
}

func TestParticipationController_DeleteParticipation(t *testing.T) {
	tests := []struct {
		name       string
		kind       string
		id         string
		deleteOK   bool
		wantStatus int
		wantKind   domain.ParticipationKind
	}{
		{"person deleted", "person", testParticipationID, true, http.StatusOK, domain.KindPerson},
		{"company deleted", "company", testParticipationID, true, http.StatusOK, domain.KindCompany},
		{"guarded participation", "person", testParticipationID, false, http.StatusConflict, domain.KindPerson},
		{"unknown kind", "alien", testParticipationID, true, http.StatusBadRequest, ""},
		{"malformed id", "person", "not-a-uuid", true, http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockParticipationService{deleteOK: tt.deleteOK}
			ctrl := NewParticipationController(testLogger(), svc)

			req := httptest.NewRequest(http.MethodDelete, "/participations/"+tt.kind+"/"+tt.id, nil)
			req.SetPathValue("kind", tt.kind)
			req.SetPathValue("participationID", tt.id)
			w := httptest.NewRecorder()

			ctrl.DeleteParticipation(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			if tt.wantKind != "" && svc.lastKind != tt.wantKind {
				t.Fatalf("expected kind %q passed to service, got %q", tt.wantKind, svc.lastKind)
			}
		})
	}
}

func TestParticipationController_PersonInfo(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &mockParticipationService{person: &domain.PersonParticipation{
			ID:            testParticipationID,
			EventID:       testEventID,
			PaymentMethod: domain.PaymentBankTransfer,
			FirstName:     "Mari",
			LastName:      "Maasikas",
			PersonalCode:  "49403136526",
		}}
		ctrl := NewParticipationController(testLogger(), svc)

		req := httptest.NewRequest(http.MethodGet, "/participations/person/"+testParticipationID, nil)
		req.SetPathValue("participationID", testParticipationID)
		w := httptest.NewRecorder()

		ctrl.PersonInfo(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
		}
		var resp struct {
			Data *domain.PersonParticipation `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
		if resp.Data.FirstName != "Mari" || resp.Data.PaymentMethod != domain.PaymentBankTransfer {
			t.Fatalf("unexpected payload: %+v", resp.Data)
		}
	})

	t.Run("unknown participation returns 404", func(t *testing.T) {
		svc := &mockParticipationService{personErr: domain.ErrNotFound}
		ctrl := NewParticipationController(testLogger(), svc)

		req := httptest.NewRequest(http.MethodGet, "/participations/person/"+testParticipationID, nil)
		req.SetPathValue("participationID", testParticipationID)
		w := httptest.NewRecorder()

		ctrl.PersonInfo(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
		}
	})
}

func TestParticipationController_CompanyInfo(t *testing.T) {
	svc := &mockParticipationService{company: &domain.CompanyParticipation{
		ID:                   testParticipationID,
		EventID:              testEventID,
		PaymentMethod:        domain.PaymentCash,
		CompanyName:          "Maasikas OÜ",
		RegistryCode:         "1234567",
		NumberOfParticipants: 8,
	}}
	ctrl := NewParticipationController(testLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/participations/company/"+testParticipationID, nil)
	req.SetPathValue("participationID", testParticipationID)
	w := httptest.NewRecorder()

	ctrl.CompanyInfo(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	var resp struct {
		Data *domain.CompanyParticipation `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Data.NumberOfParticipants != 8 {
		t.Fatalf("unexpected payload: %+v", resp.Data)
	}
}
