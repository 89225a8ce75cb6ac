package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/coffer-dev/coffer/internal/ledger"
	"github.com/coffer-dev/coffer/internal/money"
)

// Handler exposes the ledger operations over HTTP. The owner path segment
// stands in for the identity the host authenticates; amounts cross the wire
// as decimal strings and are converted to base units at this boundary.
type Handler struct {
	ledger *ledger.Ledger
	places int32
}

// NewHandler creates a Handler rendering amounts at decimalPlaces.
func NewHandler(l *ledger.Ledger, decimalPlaces int32) *Handler {
	return &Handler{ledger: l, places: decimalPlaces}
}

type accountResponse struct {
	Owner         string `json:"owner"`
	Name          string `json:"name"`
	AccountNumber uint64 `json:"account_number"`
	Balance       string `json:"balance"`
	FixedDeposit  string `json:"fixed_deposit"`
	FixedInterest string `json:"fixed_interest"`
	LoanPrincipal string `json:"loan_principal"`
	LoanInterest  string `json:"loan_interest"`
}

func (h *Handler) account(s ledger.AccountSnapshot) accountResponse {
	return accountResponse{
		Owner:         s.Owner,
		Name:          s.Name,
		AccountNumber: s.AccountNumber,
		Balance:       money.Format(s.Balance, h.places),
		FixedDeposit:  money.Format(s.FixedDeposit, h.places),
		FixedInterest: money.Format(s.FixedInterestAccrued, h.places),
		LoanPrincipal: money.Format(s.LoanPrincipal, h.places),
		LoanInterest:  money.Format(s.LoanInterestAccrued, h.places),
	}
}

// statusFor maps ledger precondition failures onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ledger.ErrAlreadyRegistered):
		return http.StatusConflict
	case errors.Is(err, ledger.ErrNotRegistered), errors.Is(err, ledger.ErrRecipientNotRegistered):
		return http.StatusNotFound
	case errors.Is(err, ledger.ErrInsufficientBalance),
		errors.Is(err, ledger.ErrZeroDeposit),
		errors.Is(err, ledger.ErrNoFixedDeposit),
		errors.Is(err, ledger.ErrZeroLoan),
		errors.Is(err, ledger.ErrInsufficientRepayment),
		errors.Is(err, ledger.ErrInsufficientRepaymentWithInterest),
		errors.Is(err, ledger.ErrAmountOverflow):
		return http.StatusUnprocessableEntity
	default:
		// Anything else, such as a failed payout, is not the caller's
		// fault.
		return http.StatusInternalServerError
	}
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

// amount parses a decimal amount string, answering 400 on bad input.
func (h *Handler) amount(w http.ResponseWriter, raw string) (uint64, bool) {
	units, err := money.Parse(raw, h.places)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return 0, false
	}
	return units, true
}

// respondAccount answers with the owner's current snapshot.
func (h *Handler) respondAccount(w http.ResponseWriter, owner string) {
	snap, err := h.ledger.Account(owner)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, h.account(snap))
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Owner         string `json:"owner"`
		Name          string `json:"name"`
		AccountNumber uint64 `json:"account_number"`
	}
	if !h.decode(w, r, &req) {
		return
	}
	if req.Owner == "" || req.Name == "" {
		writeError(w, http.StatusBadRequest, "owner and name are required")
		return
	}
	if err := h.ledger.Register(req.Owner, req.Name, req.AccountNumber); err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	snap, err := h.ledger.Account(req.Owner)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, h.account(snap))
}

func (h *Handler) Account(w http.ResponseWriter, r *http.Request) {
	h.respondAccount(w, chi.URLParam(r, "owner"))
}

func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	owner := chi.URLParam(r, "owner")
	var req struct {
		Amount string `json:"amount"`
	}
	if !h.decode(w, r, &req) {
		return
	}
	units, ok := h.amount(w, req.Amount)
	if !ok {
		return
	}
	if err := h.ledger.Deposit(owner, units); err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	h.respondAccount(w, owner)
}

func (h *Handler) Withdraw(w http.ResponseWriter, r *http.Request) {
	owner := chi.URLParam(r, "owner")
	var req struct {
		Amount string `json:"amount"`
	}
	if !h.decode(w, r, &req) {
		return
	}
	units, ok := h.amount(w, req.Amount)
	if !ok {
		return
	}
	if err := h.ledger.Withdraw(owner, units); err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	h.respondAccount(w, owner)
}

func (h *Handler) Transfer(w http.ResponseWriter, r *http.Request) {
	owner := chi.URLParam(r, "owner")
	var req struct {
		To     string `json:"to"`
		Amount string `json:"amount"`
	}
	if !h.decode(w, r, &req) {
		return
	}
	if req.To == "" {
		writeError(w, http.StatusBadRequest, "recipient is required")
		return
	}
	units, ok := h.amount(w, req.Amount)
	if !ok {
		return
	}
	if err := h.ledger.Transfer(owner, req.To, units); err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	h.respondAccount(w, owner)
}

func (h *Handler) DepositFixed(w http.ResponseWriter, r *http.Request) {
	owner := chi.URLParam(r, "owner")
	var req struct {
		Amount string `json:"amount"`
	}
	if !h.decode(w, r, &req) {
		return
	}
	units, ok := h.amount(w, req.Amount)
	if !ok {
		return
	}
	if err := h.ledger.DepositFixed(owner, units); err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	h.respondAccount(w, owner)
}

func (h *Handler) WithdrawFixed(w http.ResponseWriter, r *http.Request) {
	owner := chi.URLParam(r, "owner")
	total, err := h.ledger.WithdrawFixed(owner)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"paid": money.Format(total, h.places)})
}

func (h *Handler) FixedInterest(w http.ResponseWriter, r *http.Request) {
	owner := chi.URLParam(r, "owner")
	writeJSON(w, http.StatusOK, map[string]string{
		"interest": money.Format(h.ledger.FixedInterest(owner), h.places),
	})
}

func (h *Handler) ApplyForLoan(w http.ResponseWriter, r *http.Request) {
	owner := chi.URLParam(r, "owner")
	var req struct {
		Amount string `json:"amount"`
	}
	if !h.decode(w, r, &req) {
		return
	}
	units, ok := h.amount(w, req.Amount)
	if !ok {
		return
	}
	if err := h.ledger.ApplyForLoan(owner, units); err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	h.respondAccount(w, owner)
}

func (h *Handler) RepayLoan(w http.ResponseWriter, r *http.Request) {
	owner := chi.URLParam(r, "owner")
	var req struct {
		Amount string `json:"amount"`
	}
	if !h.decode(w, r, &req) {
		return
	}
	units, ok := h.amount(w, req.Amount)
	if !ok {
		return
	}
	total, err := h.ledger.RepayLoan(owner, units)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"total_paid": money.Format(total, h.places)})
}

func (h *Handler) LoanInterest(w http.ResponseWriter, r *http.Request) {
	owner := chi.URLParam(r, "owner")
	writeJSON(w, http.StatusOK, map[string]string{
		"interest": money.Format(h.ledger.LoanInterest(owner), h.places),
	})
}

func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	violations := h.ledger.Check()
	msgs := make([]string, len(violations))
	for i, v := range violations {
		msgs[i] = v.Error()
	}
	writeJSON(w, http.StatusOK, map[string]any{"violations": msgs})
}
