package domain

import "errors"

var (
	// Chart of accounts errors
	ErrAccountNotFound    = errors.New("account not found")
	ErrSubaccountNotFound = errors.New("subaccount not found")

	// Document errors
	ErrCustomerNotFound        = errors.New("customer not found")
	ErrFamilyNotFound          = errors.New("family not found")
	ErrVariantNotFound         = errors.New("variant not found")
	ErrDocumentNotFound        = errors.New("purchase document not found")
	ErrSupplierProductNotFound = errors.New("supplier product not found")

	// Engine errors
	ErrUnknownEventName   = errors.New("unknown event name")
	ErrSettingNotFound    = errors.New("setting not found")
	ErrInconsistentLedger = errors.New("ledger is inconsistent: cached balances do not match posted lines")
)
