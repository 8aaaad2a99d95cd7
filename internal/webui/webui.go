// Package webui renders the HTML form front-end: one form per account
// operation, each a thin call-through to the account service. Results and
// user-facing error messages are rendered back on the same page.
package webui

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"

	chi "github.com/go-chi/chi/v5"

	"github.com/tarun5004/bankd/internal/bank"
	"github.com/tarun5004/bankd/internal/service/account"
)

// UI serves the form pages over a chi subrouter.
type UI struct {
	svc account.Service
	log *slog.Logger
	rt  *chi.Mux
}

// accountView is the template-facing shape of a record. The PIN column is
// always masked.
type accountView struct {
	Number  string
	Name    string
	Age     int
	Email   string
	Balance string
	PIN     string
}

type viewData struct {
	Title   string
	Error   string
	Message string
	Account *accountView
}

func toView(a bank.Account) *accountView {
	return &accountView{
		Number:  a.Number,
		Name:    a.Name,
		Age:     a.Age,
		Email:   a.Email,
		Balance: a.Balance().String(),
		PIN:     bank.MaskedPIN,
	}
}

// New constructs the form UI over the given service.
func New(svc account.Service, log *slog.Logger) *UI {
	u := &UI{svc: svc, log: log, rt: chi.NewRouter()}
	u.routes()
	return u
}

// Handler exposes the configured http.Handler.
func (u *UI) Handler() http.Handler { return u.rt }

func (u *UI) routes() {
	u.rt.Get("/", u.page("home", "Bank Account Manager"))
	u.rt.Get("/create", u.page("create", "Create Account"))
	u.rt.Post("/create", u.create)
	u.rt.Get("/deposit", u.page("deposit", "Deposit"))
	u.rt.Post("/deposit", u.deposit)
	u.rt.Get("/withdraw", u.page("withdraw", "Withdraw"))
	u.rt.Post("/withdraw", u.withdraw)
	u.rt.Get("/details", u.page("details", "Account Details"))
	u.rt.Post("/details", u.details)
	u.rt.Get("/update", u.page("update", "Update Details"))
	u.rt.Post("/update", u.update)
	u.rt.Get("/delete", u.page("delete", "Delete Account"))
	u.rt.Post("/delete", u.del)
}

func (u *UI) render(w http.ResponseWriter, page string, data viewData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, page, data); err != nil {
		u.log.Error("render failed", "page", page, "err", err)
	}
}

// page returns a handler rendering an empty form.
func (u *UI) page(name, title string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u.render(w, name, viewData{Title: title})
	}
}

// amountMinor parses a form amount in currency units into minor units.
// Range checks are left to the service.
func amountMinor(field string) (int64, bool) {
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, false
	}
	return int64(math.Round(v * 100)), true
}

func (u *UI) create(w http.ResponseWriter, r *http.Request) {
	data := viewData{Title: "Create Account"}
	age, err := strconv.Atoi(r.FormValue("age"))
	if err != nil {
		data.Error = "age must be a whole number"
		u.render(w, "create", data)
		return
	}
	acc, err := u.svc.Create(r.Context(), account.CreateInput{
		Name:  r.FormValue("name"),
		Age:   age,
		Email: r.FormValue("email"),
		PIN:   r.FormValue("pin"),
	})
	if err != nil {
		data.Error = err.Error()
		u.render(w, "create", data)
		return
	}
	data.Message = "Account created. Note down your account number for future reference."
	data.Account = toView(acc)
	u.render(w, "create", data)
}

func (u *UI) deposit(w http.ResponseWriter, r *http.Request) {
	data := viewData{Title: "Deposit"}
	minor, ok := amountMinor(r.FormValue("amount"))
	if !ok {
		data.Error = "amount must be a number"
		u.render(w, "deposit", data)
		return
	}
	acc, err := u.svc.Deposit(r.Context(), r.FormValue("account_number"), r.FormValue("pin"), minor)
	if err != nil {
		data.Error = err.Error()
		u.render(w, "deposit", data)
		return
	}
	data.Message = "Deposit successful."
	data.Account = toView(acc)
	u.render(w, "deposit", data)
}

func (u *UI) withdraw(w http.ResponseWriter, r *http.Request) {
	data := viewData{Title: "Withdraw"}
	minor, ok := amountMinor(r.FormValue("amount"))
	if !ok {
		data.Error = "amount must be a number"
		u.render(w, "withdraw", data)
		return
	}
	acc, err := u.svc.Withdraw(r.Context(), r.FormValue("account_number"), r.FormValue("pin"), minor)
	if err != nil {
		data.Error = err.Error()
		u.render(w, "withdraw", data)
		return
	}
	data.Message = "Withdrawal successful."
	data.Account = toView(acc)
	u.render(w, "withdraw", data)
}

func (u *UI) details(w http.ResponseWriter, r *http.Request) {
	data := viewData{Title: "Account Details"}
	acc, err := u.svc.Details(r.Context(), r.FormValue("account_number"), r.FormValue("pin"))
	if err != nil {
		data.Error = err.Error()
		u.render(w, "details", data)
		return
	}
	data.Account = toView(acc)
	u.render(w, "details", data)
}

func (u *UI) update(w http.ResponseWriter, r *http.Request) {
	data := viewData{Title: "Update Details"}
	in := account.UpdateInput{
		Number: r.FormValue("account_number"),
		PIN:    r.FormValue("pin"),
	}
	// Blank fields mean "keep the current value".
	if v := r.FormValue("new_name"); v != "" {
		in.Name = &v
	}
	if v := r.FormValue("new_email"); v != "" {
		in.Email = &v
	}
	if v := r.FormValue("new_pin"); v != "" {
		in.NewPIN = &v
	}
	acc, err := u.svc.Update(r.Context(), in)
	if err != nil {
		data.Error = err.Error()
		u.render(w, "update", data)
		return
	}
	data.Message = "Account updated successfully."
	data.Account = toView(acc)
	u.render(w, "update", data)
}

func (u *UI) del(w http.ResponseWriter, r *http.Request) {
	data := viewData{Title: "Delete Account"}
	number := r.FormValue("account_number")
	if err := u.svc.Delete(r.Context(), number, r.FormValue("pin")); err != nil {
		data.Error = err.Error()
		u.render(w, "delete", data)
		return
	}
	data.Message = "Account " + number + " has been deleted."
	u.render(w, "delete", data)
}
