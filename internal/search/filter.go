package search

import (
	"strconv"
	"strings"

	accountdomain "github.com/DevalGit/AccountEntry/internal/account/domain"
)

// Filter returns the accounts whose searchable fields contain the query
// as a case-insensitive substring. An empty query passes everything
// through. The match is OR across fields, evaluated against the snapshot
// handed in, so results always reflect the caller's current store state.
func Filter(accounts []accountdomain.Account, query string) []accountdomain.Account {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return accounts
	}

	out := make([]accountdomain.Account, 0, len(accounts))
	for _, account := range accounts {
		if matches(account, query) {
			out = append(out, account)
		}
	}
	return out
}

func matches(account accountdomain.Account, query string) bool {
	fields := []string{
		strconv.FormatInt(account.ID, 10),
		account.Name,
		account.PANNo,
		account.GSTNo,
		account.Address,
		account.ContactPerson,
		account.Email,
		account.Phone,
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}
