package seed

import (
	"context"

	accountdomain "github.com/DevalGit/AccountEntry/internal/account/domain"
	"github.com/DevalGit/AccountEntry/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// demoAccounts is the demo book of accounts loaded at startup.
var demoAccounts = []accountdomain.Draft{
	{Name: "ABC Company", PANNo: "ABCDE1234F", GSTNo: "27ABCDE1234F1Z5", Address: "Mumbai", Discount: 10, ContactPerson: "John Doe", Email: "john@abc.com", Phone: "9876543210", Amount: 1000},
	{Name: "XYZ Enterprises", PANNo: "XYZGH5678I", GSTNo: "06XYZGH5678I1Z3", Address: "Delhi", Discount: 5, ContactPerson: "Jane Smith", Email: "jane@xyz.com", Phone: "8765432109", Amount: 1500},
	{Name: "PQR Services", PANNo: "PQRST9012J", GSTNo: "29PQRST9012J1Z1", Address: "Bangalore", Discount: 8, ContactPerson: "Mike Johnson", Email: "mike@pqr.com", Phone: "7654321098", Amount: 2000},
	{Name: "Deval Solutions", PANNo: "DEVAL2345K", GSTNo: "24DEVAL2345K1Z8", Address: "Ahmedabad", Discount: 12, ContactPerson: "Deval Patel", Email: "deval@solutions.com", Phone: "9988776655", Amount: 2500},
	{Name: "Tech Innovators", PANNo: "TECHN6789L", GSTNo: "33TECHN6789L1Z5", Address: "Chennai", Discount: 7, ContactPerson: "Rahul Sharma", Email: "rahul@techinnovators.com", Phone: "8877665544", Amount: 3000},
}

// EnsureDemoAccounts loads the demo fixture into an empty store. A store
// that already has accounts is left alone.
func EnsureDemoAccounts(cfg config.Config, store accountdomain.Service, log *zap.Logger) {
	if !cfg.SeedDemoAccounts {
		return
	}
	ctx := context.Background()
	if len(store.List(ctx)) > 0 {
		return
	}
	for _, draft := range demoAccounts {
		store.Add(ctx, draft)
	}
	log.Info("demo accounts seeded", zap.Int("count", len(demoAccounts)))
}

var Module = fx.Module("seed",
	fx.Invoke(EnsureDemoAccounts),
)
