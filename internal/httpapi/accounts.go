package httpapi

import (
	"encoding/json"
	"net/http"
	"net/url"

	chi "github.com/go-chi/chi/v5"
	"github.com/tarun5004/bankd/internal/service/account"
)

// pinHeader carries the PIN on requests without a JSON body.
const pinHeader = "X-Account-Pin"

// accountNumberParam extracts the {number} path segment. Generated numbers
// contain characters like '#' and '%', so clients must path-escape them and
// the raw segment is unescaped here.
func accountNumberParam(r *http.Request) string {
	raw := chi.URLParam(r, "number")
	if dec, err := url.PathUnescape(raw); err == nil {
		return dec
	}
	return raw
}

// createAccount handles POST /v1/accounts.
func (s *Server) createAccount(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		badRequest(w, "invalid JSON: "+err.Error())
		return
	}
	acc, err := s.svc.Create(r.Context(), account.CreateInput{
		Name:  req.Name,
		Age:   req.Age,
		Email: req.Email,
		PIN:   req.PIN,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	toJSON(w, http.StatusCreated, toAccountResponse(acc))
}

// getAccount handles GET /v1/accounts/{number}. The PIN travels in the
// X-Account-Pin header since GET carries no body.
func (s *Server) getAccount(w http.ResponseWriter, r *http.Request) {
	number := accountNumberParam(r)
	pin := r.Header.Get(pinHeader)
	if pin == "" {
		badRequest(w, pinHeader+" header is required")
		return
	}
	acc, err := s.svc.Details(r.Context(), number, pin)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	toJSON(w, http.StatusOK, toAccountResponse(acc))
}

// deposit handles POST /v1/accounts/{number}/deposit.
func (s *Server) deposit(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		badRequest(w, "invalid JSON: "+err.Error())
		return
	}
	acc, err := s.svc.Deposit(r.Context(), accountNumberParam(r), req.PIN, req.AmountMinor)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	toJSON(w, http.StatusOK, toAccountResponse(acc))
}

// withdraw handles POST /v1/accounts/{number}/withdraw.
func (s *Server) withdraw(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		badRequest(w, "invalid JSON: "+err.Error())
		return
	}
	acc, err := s.svc.Withdraw(r.Context(), accountNumberParam(r), req.PIN, req.AmountMinor)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	toJSON(w, http.StatusOK, toAccountResponse(acc))
}

// updateAccount handles PATCH /v1/accounts/{number}.
// Only name, email and PIN are updatable; number, age and balance are not.
func (s *Server) updateAccount(w http.ResponseWriter, r *http.Request) {
	var req updateAccountRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		badRequest(w, "invalid JSON: "+err.Error())
		return
	}
	acc, err := s.svc.Update(r.Context(), account.UpdateInput{
		Number: accountNumberParam(r),
		PIN:    req.PIN,
		Name:   req.Name,
		Email:  req.Email,
		NewPIN: req.NewPIN,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	toJSON(w, http.StatusOK, toAccountResponse(acc))
}

// deleteAccount handles DELETE /v1/accounts/{number}.
func (s *Server) deleteAccount(w http.ResponseWriter, r *http.Request) {
	pin := r.Header.Get(pinHeader)
	if pin == "" {
		badRequest(w, pinHeader+" header is required")
		return
	}
	if err := s.svc.Delete(r.Context(), accountNumberParam(r), pin); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
