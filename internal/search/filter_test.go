package search

import (
	"testing"

	accountdomain "github.com/DevalGit/AccountEntry/internal/account/domain"
)

var fixture = []accountdomain.Account{
	{ID: 1, Name: "ABC Company", PANNo: "ABCDE1234F", GSTNo: "27ABCDE1234F1Z5", Address: "Mumbai", Discount: 10, ContactPerson: "John Doe", Email: "john@abc.com", Phone: "9876543210", Amount: 1000},
	{ID: 2, Name: "XYZ Enterprises", PANNo: "XYZGH5678I", GSTNo: "06XYZGH5678I1Z3", Address: "Delhi", Discount: 5, ContactPerson: "Jane Smith", Email: "jane@xyz.com", Phone: "8765432109", Amount: 1500},
	{ID: 3, Name: "PQR Services", PANNo: "PQRST9012J", GSTNo: "29PQRST9012J1Z1", Address: "Bangalore", Discount: 8, ContactPerson: "Mike Johnson", Email: "mike@pqr.com", Phone: "7654321098", Amount: 2000},
	{ID: 4, Name: "Deval Solutions", PANNo: "DEVAL2345K", GSTNo: "24DEVAL2345K1Z8", Address: "Ahmedabad", Discount: 12, ContactPerson: "Deval Patel", Email: "deval@solutions.com", Phone: "9988776655", Amount: 2500},
	{ID: 5, Name: "Tech Innovators", PANNo: "TECHN6789L", GSTNo: "33TECHN6789L1Z5", Address: "Chennai", Discount: 7, ContactPerson: "Rahul Sharma", Email: "rahul@techinnovators.com", Phone: "8877665544", Amount: 3000},
}

func TestFilterEmptyQueryIsIdentity(t *testing.T) {
	got := Filter(fixture, "")
	if len(got) != len(fixture) {
		t.Fatalf("expected all %d accounts, got %d", len(fixture), len(got))
	}
	got = Filter(fixture, "   ")
	if len(got) != len(fixture) {
		t.Fatalf("expected whitespace query to pass all accounts, got %d", len(got))
	}
}

func TestFilterByGSTNumber(t *testing.T) {
	got := Filter(fixture, "27ABCDE1234F1Z5")
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("expected exactly account 1, got %+v", got)
	}
}

func TestFilterIsCaseInsensitiveSubstring(t *testing.T) {
	tests := []struct {
		query string
		want  []int64
	}{
		{"deval", []int64{4}},
		{"COMPANY", []int64{1}},
		{"1Z5", []int64{1, 5}},
		{"@", []int64{1, 2, 3, 4, 5}},
		{"no-such-thing", nil},
	}
	for _, tt := range tests {
		got := Filter(fixture, tt.query)
		if len(got) != len(tt.want) {
			t.Fatalf("Filter(%q) returned %d accounts, want %d", tt.query, len(got), len(tt.want))
		}
		for i, acc := range got {
			if acc.ID != tt.want[i] {
				t.Fatalf("Filter(%q)[%d] = id %d, want %d", tt.query, i, acc.ID, tt.want[i])
			}
		}
	}
}

func TestFilterMatchesID(t *testing.T) {
	got := Filter(fixture, "4")
	found := false
	for _, acc := range got {
		if acc.ID == 4 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected id 4 to match query \"4\", got %+v", got)
	}
}
