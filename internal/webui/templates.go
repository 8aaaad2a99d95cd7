package webui

import "html/template"

// All pages share the header/footer pair. Forms post back to their own URL.
const pages = `
{{define "header"}}<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}} - Bank Account Manager</title>
<style>
body{font-family:sans-serif;max-width:40rem;margin:2rem auto;padding:0 1rem}
label{display:block;margin:.6rem 0 .2rem}
input{padding:.3rem;width:16rem}
nav a{margin-right:.8rem}
.error{color:#b00020}
.message{color:#1a7f37}
table{border-collapse:collapse}
td,th{border:1px solid #ccc;padding:.3rem .6rem;text-align:left}
</style>
</head>
<body>
<nav>
<a href="/web/">Home</a>
<a href="/web/create">Create</a>
<a href="/web/deposit">Deposit</a>
<a href="/web/withdraw">Withdraw</a>
<a href="/web/details">Details</a>
<a href="/web/update">Update</a>
<a href="/web/delete">Delete</a>
</nav>
<h1>{{.Title}}</h1>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
{{if .Message}}<p class="message">{{.Message}}</p>{{end}}
{{end}}

{{define "footer"}}</body></html>{{end}}

{{define "account_table"}}
{{with .Account}}
<table>
<tr><th>Account number</th><td>{{.Number}}</td></tr>
<tr><th>Name</th><td>{{.Name}}</td></tr>
<tr><th>Age</th><td>{{.Age}}</td></tr>
<tr><th>Email</th><td>{{.Email}}</td></tr>
<tr><th>Balance</th><td>{{.Balance}}</td></tr>
<tr><th>PIN</th><td>{{.PIN}}</td></tr>
</table>
{{end}}
{{end}}

{{define "credentials_fields"}}
<label for="account_number">Account number</label>
<input id="account_number" name="account_number" required>
<label for="pin">PIN</label>
<input id="pin" name="pin" type="password" required>
{{end}}

{{define "home"}}{{template "header" .}}
<p>Manage a bank account: create one, deposit, withdraw, view or update
details, or close the account. Pick an operation from the menu above.</p>
{{template "footer"}}{{end}}

{{define "create"}}{{template "header" .}}
<form method="post" action="/web/create">
<label for="name">Name</label>
<input id="name" name="name" required>
<label for="age">Age</label>
<input id="age" name="age" type="number" required>
<label for="email">Email</label>
<input id="email" name="email" type="email" required>
<label for="pin">4-digit PIN</label>
<input id="pin" name="pin" type="password" required>
<p><button type="submit">Create account</button></p>
</form>
{{template "account_table" .}}
{{template "footer"}}{{end}}

{{define "deposit"}}{{template "header" .}}
<form method="post" action="/web/deposit">
{{template "credentials_fields"}}
<label for="amount">Amount</label>
<input id="amount" name="amount" required>
<p><button type="submit">Deposit</button></p>
</form>
{{template "account_table" .}}
{{template "footer"}}{{end}}

{{define "withdraw"}}{{template "header" .}}
<form method="post" action="/web/withdraw">
{{template "credentials_fields"}}
<label for="amount">Amount</label>
<input id="amount" name="amount" required>
<p><button type="submit">Withdraw</button></p>
</form>
{{template "account_table" .}}
{{template "footer"}}{{end}}

{{define "details"}}{{template "header" .}}
<form method="post" action="/web/details">
{{template "credentials_fields"}}
<p><button type="submit">Show details</button></p>
</form>
{{template "account_table" .}}
{{template "footer"}}{{end}}

{{define "update"}}{{template "header" .}}
<p>Leave a field blank to keep its current value. Account number, age and
balance cannot be changed.</p>
<form method="post" action="/web/update">
{{template "credentials_fields"}}
<label for="new_name">New name</label>
<input id="new_name" name="new_name">
<label for="new_email">New email</label>
<input id="new_email" name="new_email">
<label for="new_pin">New 4-digit PIN</label>
<input id="new_pin" name="new_pin" type="password">
<p><button type="submit">Update</button></p>
</form>
{{template "account_table" .}}
{{template "footer"}}{{end}}

{{define "delete"}}{{template "header" .}}
<form method="post" action="/web/delete">
{{template "credentials_fields"}}
<p><button type="submit">Delete account</button></p>
</form>
{{template "footer"}}{{end}}
`

var tmpl = template.Must(template.New("webui").Parse(pages))
