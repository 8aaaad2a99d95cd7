// Package cli implements the interactive terminal menu over the account
// service. Each menu entry maps to one service operation; errors are printed
// as user-facing messages and the loop continues.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/tarun5004/bankd/internal/bank"
	"github.com/tarun5004/bankd/internal/service/account"
)

const menu = `
==================================================
              BANK ACCOUNT MANAGER
==================================================
 1  Create an account
 2  Deposit money
 3  Withdraw money
 4  Show account details
 5  Update account details
 6  Delete account
 q  Quit
==================================================`

// Run drives the menu loop until the user quits or input ends.
func Run(ctx context.Context, svc account.Service, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprintln(out, menu)
		choice, ok := prompt(sc, out, "Enter your choice: ")
		if !ok {
			return nil
		}
		var err error
		switch strings.TrimSpace(choice) {
		case "1":
			err = runCreate(ctx, svc, sc, out)
		case "2":
			err = runDeposit(ctx, svc, sc, out)
		case "3":
			err = runWithdraw(ctx, svc, sc, out)
		case "4":
			err = runDetails(ctx, svc, sc, out)
		case "5":
			err = runUpdate(ctx, svc, sc, out)
		case "6":
			err = runDelete(ctx, svc, sc, out)
		case "q", "Q":
			return nil
		default:
			fmt.Fprintln(out, "Unknown choice.")
			continue
		}
		if err == errInputClosed {
			return nil
		}
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
		}
	}
}

var errInputClosed = fmt.Errorf("input closed")

func prompt(sc *bufio.Scanner, out io.Writer, label string) (string, bool) {
	fmt.Fprint(out, label)
	if !sc.Scan() {
		return "", false
	}
	return sc.Text(), true
}

func promptCredentials(sc *bufio.Scanner, out io.Writer) (number, pin string, err error) {
	number, ok := prompt(sc, out, "Enter your account number: ")
	if !ok {
		return "", "", errInputClosed
	}
	pin, ok = prompt(sc, out, "Enter your PIN: ")
	if !ok {
		return "", "", errInputClosed
	}
	return strings.TrimSpace(number), strings.TrimSpace(pin), nil
}

func promptAmount(sc *bufio.Scanner, out io.Writer, label string) (int64, error) {
	raw, ok := prompt(sc, out, label)
	if !ok {
		return 0, errInputClosed
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("amount must be a number")
	}
	return int64(math.Round(v * 100)), nil
}

func printAccount(out io.Writer, a bank.Account) {
	fmt.Fprintf(out, "Account number: %s\n", a.Number)
	fmt.Fprintf(out, "Name:           %s\n", a.Name)
	fmt.Fprintf(out, "Age:            %d\n", a.Age)
	fmt.Fprintf(out, "Email:          %s\n", a.Email)
	fmt.Fprintf(out, "Balance:        %s\n", a.Balance())
}

func runCreate(ctx context.Context, svc account.Service, sc *bufio.Scanner, out io.Writer) error {
	name, ok := prompt(sc, out, "Enter your name: ")
	if !ok {
		return errInputClosed
	}
	ageRaw, ok := prompt(sc, out, "Enter your age: ")
	if !ok {
		return errInputClosed
	}
	age, err := strconv.Atoi(strings.TrimSpace(ageRaw))
	if err != nil {
		return fmt.Errorf("age must be a whole number")
	}
	email, ok := prompt(sc, out, "Enter your email: ")
	if !ok {
		return errInputClosed
	}
	pin, ok := prompt(sc, out, "Enter a 4-digit PIN: ")
	if !ok {
		return errInputClosed
	}
	acc, err := svc.Create(ctx, account.CreateInput{Name: name, Age: age, Email: email, PIN: strings.TrimSpace(pin)})
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Account created successfully.")
	printAccount(out, acc)
	fmt.Fprintln(out, "Please note down your account number for future reference.")
	return nil
}

func runDeposit(ctx context.Context, svc account.Service, sc *bufio.Scanner, out io.Writer) error {
	number, pin, err := promptCredentials(sc, out)
	if err != nil {
		return err
	}
	minor, err := promptAmount(sc, out, "Enter the amount to deposit: ")
	if err != nil {
		return err
	}
	acc, err := svc.Deposit(ctx, number, pin, minor)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Deposit successful. New balance: %s\n", acc.Balance())
	return nil
}

func runWithdraw(ctx context.Context, svc account.Service, sc *bufio.Scanner, out io.Writer) error {
	number, pin, err := promptCredentials(sc, out)
	if err != nil {
		return err
	}
	minor, err := promptAmount(sc, out, "Enter the amount to withdraw: ")
	if err != nil {
		return err
	}
	acc, err := svc.Withdraw(ctx, number, pin, minor)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Withdrawal successful. New balance: %s\n", acc.Balance())
	return nil
}

func runDetails(ctx context.Context, svc account.Service, sc *bufio.Scanner, out io.Writer) error {
	number, pin, err := promptCredentials(sc, out)
	if err != nil {
		return err
	}
	acc, err := svc.Details(ctx, number, pin)
	if err != nil {
		return err
	}
	printAccount(out, acc)
	fmt.Fprintf(out, "PIN:            %s\n", bank.MaskedPIN)
	return nil
}

func runUpdate(ctx context.Context, svc account.Service, sc *bufio.Scanner, out io.Writer) error {
	number, pin, err := promptCredentials(sc, out)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Leave a field blank to keep its current value.")
	in := account.UpdateInput{Number: number, PIN: pin}
	if v, ok := prompt(sc, out, "New name: "); !ok {
		return errInputClosed
	} else if v != "" {
		in.Name = &v
	}
	if v, ok := prompt(sc, out, "New email: "); !ok {
		return errInputClosed
	} else if v != "" {
		in.Email = &v
	}
	if v, ok := prompt(sc, out, "New 4-digit PIN: "); !ok {
		return errInputClosed
	} else if v != "" {
		in.NewPIN = &v
	}
	acc, err := svc.Update(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Account updated successfully.")
	printAccount(out, acc)
	return nil
}

func runDelete(ctx context.Context, svc account.Service, sc *bufio.Scanner, out io.Writer) error {
	number, pin, err := promptCredentials(sc, out)
	if err != nil {
		return err
	}
	if err := svc.Delete(ctx, number, pin); err != nil {
		return err
	}
	fmt.Fprintf(out, "Account %s has been deleted.\n", number)
	return nil
}
