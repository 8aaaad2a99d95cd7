package cli

import (
	"bytes"
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/tarun5004/bankd/internal/service/account"
	"github.com/tarun5004/bankd/internal/storage/memory"
)

var reNumber = regexp.MustCompile(`Account number: (\S{8})`)

func run(t *testing.T, svc account.Service, script string) string {
	t.Helper()
	var out bytes.Buffer
	if err := Run(context.Background(), svc, strings.NewReader(script), &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	return out.String()
}

func newService() account.Service {
	store := memory.New()
	return account.New(store, store)
}

func TestCreateThenQuit(t *testing.T) {
	svc := newService()
	out := run(t, svc, "1\nJohn Smith\n30\njohn@example.com\n1234\nq\n")
	if !strings.Contains(out, "Account created successfully.") {
		t.Fatalf("missing creation message:\n%s", out)
	}
	if !reNumber.MatchString(out) {
		t.Fatalf("missing account number:\n%s", out)
	}
}

func TestCreateValidationError(t *testing.T) {
	svc := newService()
	out := run(t, svc, "1\nKid\n17\nkid@example.com\n1234\nq\n")
	if !strings.Contains(out, "age must be at least 18") {
		t.Fatalf("missing validation message:\n%s", out)
	}
}

func TestDepositWithdrawDetails(t *testing.T) {
	svc := newService()
	out := run(t, svc, "1\nJohn Smith\n30\njohn@example.com\n1234\nq\n")
	m := reNumber.FindStringSubmatch(out)
	if m == nil {
		t.Fatalf("no account number in:\n%s", out)
	}
	number := m[1]

	out = run(t, svc, "2\n"+number+"\n1234\n100.50\nq\n")
	if !strings.Contains(out, "Deposit successful. New balance: USD 100.50") {
		t.Fatalf("deposit output:\n%s", out)
	}

	out = run(t, svc, "3\n"+number+"\n1234\n500\nq\n")
	if !strings.Contains(out, "insufficient_funds") {
		t.Fatalf("missing insufficient funds message:\n%s", out)
	}

	out = run(t, svc, "4\n"+number+"\n1234\nq\n")
	if !strings.Contains(out, "john@example.com") || !strings.Contains(out, "PIN:            ****") {
		t.Fatalf("details output:\n%s", out)
	}
}

func TestUnknownChoiceAndEOF(t *testing.T) {
	svc := newService()
	out := run(t, svc, "7\n")
	if !strings.Contains(out, "Unknown choice.") {
		t.Fatalf("missing unknown-choice message:\n%s", out)
	}
	// EOF after the menu exits cleanly
	out = run(t, svc, "")
	if !strings.Contains(out, "BANK ACCOUNT MANAGER") {
		t.Fatalf("menu not printed:\n%s", out)
	}
}

func TestDeleteFlow(t *testing.T) {
	svc := newService()
	out := run(t, svc, "1\nJohn Smith\n30\njohn@example.com\n1234\nq\n")
	m := reNumber.FindStringSubmatch(out)
	if m == nil {
		t.Fatalf("no account number in:\n%s", out)
	}
	number := m[1]

	out = run(t, svc, "6\n"+number+"\n1234\nq\n")
	if !strings.Contains(out, "has been deleted") {
		t.Fatalf("delete output:\n%s", out)
	}
	out = run(t, svc, "4\n"+number+"\n1234\nq\n")
	if !strings.Contains(out, "account_not_found") {
		t.Fatalf("expected not-found error:\n%s", out)
	}
}
