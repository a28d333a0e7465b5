package testutil

// Account ids of the sample snapshot.
const (
	Assets      = 1
	Checking    = 2
	Savings     = 3
	Brokerage   = 4
	ACME        = 5
	Income      = 6
	Salary      = 7
	Liabilities = 8
	CreditCard  = 9
	Bonus       = 10
)

// SampleSnapshot is a small ledger used across tests:
//
//	Assets
//	  Checking      (Bank A)   1250.40
//	  Savings       (Bank A)   5000
//	  Brokerage     (Broker B, trading)
//	    ACME        (inherits Broker B) 3200.10
//	Income
//	  Salary                   -4000
//	  Bonus         (parent filtered in some tests) -500
//	Liabilities
//	  Credit card   (Bank A)   -320.50
const SampleSnapshot = `{
  "kinds": [
    {"id": "asset", "name": "Asset", "category": 3},
    {"id": "trading", "name": "Investment", "category": 3, "is_trading": true},
    {"id": "stock", "name": "Stock", "category": 3, "is_stock": true},
    {"id": "income", "name": "Income", "category": 1},
    {"id": "liability", "name": "Liability", "category": 4}
  ],
  "institutions": [
    {"id": 1, "name": "Bank A"},
    {"id": 2, "name": "Broker B"}
  ],
  "commodities": [
    {"id": 1, "name": "Euro", "symbol_after": "EUR", "is_currency": true}
  ],
  "accounts": [
    {"id": 1, "name": "Assets", "kind_id": "asset", "parent_id": null},
    {"id": 2, "name": "Checking", "kind_id": "asset", "parent_id": 1, "institution_id": 1, "commodity_id": 1},
    {"id": 3, "name": "Savings", "kind_id": "asset", "parent_id": 1, "institution_id": 1, "commodity_id": 1},
    {"id": 4, "name": "Brokerage", "kind_id": "trading", "parent_id": 1, "institution_id": 2, "commodity_id": 1},
    {"id": 5, "name": "ACME", "kind_id": "stock", "parent_id": 4},
    {"id": 6, "name": "Income", "kind_id": "income", "parent_id": null},
    {"id": 7, "name": "Salary", "kind_id": "income", "parent_id": 6, "commodity_id": 1},
    {"id": 8, "name": "Liabilities", "kind_id": "liability", "parent_id": null},
    {"id": 9, "name": "Credit card", "kind_id": "liability", "parent_id": 8, "institution_id": 1, "commodity_id": 1},
    {"id": 10, "name": "bonus", "kind_id": "income", "parent_id": 6, "commodity_id": 1}
  ],
  "balances": [
    {"account_id": 2, "value": "1250.40"},
    {"account_id": 3, "value": "5000"},
    {"account_id": 5, "value": "3200.10"},
    {"account_id": 7, "value": "-4000"},
    {"account_id": 10, "value": "-500"},
    {"account_id": 9, "value": "-320.50"}
  ]
}`
