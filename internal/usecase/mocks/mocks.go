// Package mocks provides hand-written test doubles for the usecase
// interfaces: in-memory behavior by default, per-method Func overrides for
// failure injection, and call counters where tests assert write activity.
package mocks

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/rollup/internal/domain"
)

// MockSubaccountRepository is a mock implementation of usecase.SubaccountRepository.
type MockSubaccountRepository struct {
	mu          sync.RWMutex
	subaccounts map[string]*domain.Subaccount

	UpdateTotalsCalls int

	GetByIDFunc         func(ctx context.Context, id string) (*domain.Subaccount, error)
	UpdateTotalsFunc    func(ctx context.Context, id string, debit, credit, balance decimal.Decimal, updatedAt time.Time) error
	TotalsByAccountFunc func(ctx context.Context, accountID string) (decimal.Decimal, decimal.Decimal, error)
}

func NewMockSubaccountRepository() *MockSubaccountRepository {
	return &MockSubaccountRepository{subaccounts: make(map[string]*domain.Subaccount)}
}

func (m *MockSubaccountRepository) Put(sub *domain.Subaccount) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subaccounts[sub.ID] = sub
}

func (m *MockSubaccountRepository) GetByID(ctx context.Context, id string) (*domain.Subaccount, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if sub, ok := m.subaccounts[id]; ok {
		return sub, nil
	}
	return nil, domain.ErrSubaccountNotFound
}

func (m *MockSubaccountRepository) UpdateTotals(ctx context.Context, id string, debit, credit, balance decimal.Decimal, updatedAt time.Time) error {
	m.mu.Lock()
	m.UpdateTotalsCalls++
	m.mu.Unlock()

	if m.UpdateTotalsFunc != nil {
		return m.UpdateTotalsFunc(ctx, id, debit, credit, balance, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if sub, ok := m.subaccounts[id]; ok {
		sub.Debit = debit
		sub.Credit = credit
		sub.Balance = balance
		sub.UpdatedAt = updatedAt
	}
	return nil
}

func (m *MockSubaccountRepository) TotalsByAccount(ctx context.Context, accountID string) (decimal.Decimal, decimal.Decimal, error) {
	if m.TotalsByAccountFunc != nil {
		return m.TotalsByAccountFunc(ctx, accountID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	debit, credit := decimal.Zero, decimal.Zero
	for _, sub := range m.subaccounts {
		if sub.AccountID == accountID {
			debit = debit.Add(sub.Debit)
			credit = credit.Add(sub.Credit)
		}
	}
	return debit, credit, nil
}

// MockAccountRepository is a mock implementation of usecase.AccountRepository.
type MockAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account

	UpdateTotalsCalls int

	GetByIDFunc      func(ctx context.Context, id string) (*domain.Account, error)
	UpdateTotalsFunc func(ctx context.Context, id string, debit, credit, balance decimal.Decimal, updatedAt time.Time) error
	ChildTotalsFunc  func(ctx context.Context, parentID string) (decimal.Decimal, decimal.Decimal, error)
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{accounts: make(map[string]*domain.Account)}
}

func (m *MockAccountRepository) Put(acct *domain.Account) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[acct.ID] = acct
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if acct, ok := m.accounts[id]; ok {
		return acct, nil
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) UpdateTotals(ctx context.Context, id string, debit, credit, balance decimal.Decimal, updatedAt time.Time) error {
	m.mu.Lock()
	m.UpdateTotalsCalls++
	m.mu.Unlock()

	if m.UpdateTotalsFunc != nil {
		return m.UpdateTotalsFunc(ctx, id, debit, credit, balance, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if acct, ok := m.accounts[id]; ok {
		acct.Debit = debit
		acct.Credit = credit
		acct.Balance = balance
		acct.UpdatedAt = updatedAt
	}
	return nil
}

func (m *MockAccountRepository) ChildTotals(ctx context.Context, parentID string) (decimal.Decimal, decimal.Decimal, error) {
	if m.ChildTotalsFunc != nil {
		return m.ChildTotalsFunc(ctx, parentID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	debit, credit := decimal.Zero, decimal.Zero
	for _, acct := range m.accounts {
		if acct.ParentID == parentID {
			debit = debit.Add(acct.Debit)
			credit = credit.Add(acct.Credit)
		}
	}
	return debit, credit, nil
}

// MockLedgerLineRepository is a mock implementation of usecase.LedgerLineRepository.
type MockLedgerLineRepository struct {
	mu    sync.RWMutex
	lines []*domain.LedgerLine

	ListCalls          int
	UpdateBalanceCalls int

	ListBySubaccountFunc func(ctx context.Context, subaccountID string, offset, limit int) ([]*domain.LedgerLine, error)
	UpdateBalanceFunc    func(ctx context.Context, id string, balance decimal.Decimal, mode domain.SaveMode) error
}

func NewMockLedgerLineRepository() *MockLedgerLineRepository {
	return &MockLedgerLineRepository{}
}

func (m *MockLedgerLineRepository) Add(lines ...*domain.LedgerLine) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = append(m.lines, lines...)
}

func (m *MockLedgerLineRepository) ListBySubaccount(ctx context.Context, subaccountID string, offset, limit int) ([]*domain.LedgerLine, error) {
	m.mu.Lock()
	m.ListCalls++
	m.mu.Unlock()

	if m.ListBySubaccountFunc != nil {
		return m.ListBySubaccountFunc(ctx, subaccountID, offset, limit)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var matched []*domain.LedgerLine
	for _, line := range m.lines {
		if line.SubaccountID == subaccountID {
			matched = append(matched, line)
		}
	}

	// Canonical posting order.
	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if a.EntryNumber != b.EntryNumber {
			return a.EntryNumber < b.EntryNumber
		}
		return a.ID < b.ID
	})

	if offset >= len(matched) {
		return nil, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

func (m *MockLedgerLineRepository) UpdateBalance(ctx context.Context, id string, balance decimal.Decimal, mode domain.SaveMode) error {
	m.mu.Lock()
	m.UpdateBalanceCalls++
	m.mu.Unlock()

	if m.UpdateBalanceFunc != nil {
		return m.UpdateBalanceFunc(ctx, id, balance, mode)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, line := range m.lines {
		if line.ID == id {
			line.Balance = balance
			return nil
		}
	}
	return nil
}

// MockLedgerRepository is a mock implementation of usecase.LedgerRepository.
type MockLedgerRepository struct {
	LineTotal   decimal.Decimal
	CachedTotal decimal.Decimal
	Err         error
	Calls       int
}

func (m *MockLedgerRepository) CheckConsistency(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	m.Calls++
	return m.LineTotal, m.CachedTotal, m.Err
}

// MockCustomerRepository is a mock implementation of usecase.CustomerRepository.
type MockCustomerRepository struct {
	mu        sync.RWMutex
	customers map[string]*domain.Customer

	UpdateTotalsCalls int

	GetByCodeFunc    func(ctx context.Context, code string) (*domain.Customer, error)
	UpdateTotalsFunc func(ctx context.Context, code string, invoiced, outstanding decimal.Decimal, updatedAt time.Time) error
}

func NewMockCustomerRepository() *MockCustomerRepository {
	return &MockCustomerRepository{customers: make(map[string]*domain.Customer)}
}

func (m *MockCustomerRepository) Put(c *domain.Customer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.customers[c.Code] = c
}

func (m *MockCustomerRepository) GetByCode(ctx context.Context, code string) (*domain.Customer, error) {
	if m.GetByCodeFunc != nil {
		return m.GetByCodeFunc(ctx, code)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if c, ok := m.customers[code]; ok {
		return c, nil
	}
	return nil, domain.ErrCustomerNotFound
}

func (m *MockCustomerRepository) UpdateTotals(ctx context.Context, code string, invoiced, outstanding decimal.Decimal, updatedAt time.Time) error {
	m.mu.Lock()
	m.UpdateTotalsCalls++
	m.mu.Unlock()

	if m.UpdateTotalsFunc != nil {
		return m.UpdateTotalsFunc(ctx, code, invoiced, outstanding, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.customers[code]; ok {
		c.TotalInvoiced = invoiced
		c.TotalOutstanding = outstanding
		c.UpdatedAt = updatedAt
	}
	return nil
}

// MockInvoiceRepository is a mock implementation of usecase.InvoiceRepository.
type MockInvoiceRepository struct {
	mu       sync.RWMutex
	invoices []*domain.Invoice

	SumByCustomerFunc            func(ctx context.Context, customerCode string) (decimal.Decimal, error)
	SumOutstandingByCustomerFunc func(ctx context.Context, customerCode string) (decimal.Decimal, error)
}

func NewMockInvoiceRepository() *MockInvoiceRepository {
	return &MockInvoiceRepository{}
}

func (m *MockInvoiceRepository) Add(invoices ...*domain.Invoice) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invoices = append(m.invoices, invoices...)
}

func (m *MockInvoiceRepository) SumByCustomer(ctx context.Context, customerCode string) (decimal.Decimal, error) {
	if m.SumByCustomerFunc != nil {
		return m.SumByCustomerFunc(ctx, customerCode)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	total := decimal.Zero
	for _, inv := range m.invoices {
		if inv.CustomerCode == customerCode {
			total = total.Add(inv.Total)
		}
	}
	return total, nil
}

func (m *MockInvoiceRepository) SumOutstandingByCustomer(ctx context.Context, customerCode string) (decimal.Decimal, error) {
	if m.SumOutstandingByCustomerFunc != nil {
		return m.SumOutstandingByCustomerFunc(ctx, customerCode)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	total := decimal.Zero
	for _, inv := range m.invoices {
		if inv.CustomerCode == customerCode && !inv.Paid {
			total = total.Add(inv.Total)
		}
	}
	return total, nil
}

// MockFamilyRepository is a mock implementation of usecase.FamilyRepository.
type MockFamilyRepository struct {
	mu       sync.RWMutex
	families map[string]*domain.Family

	UpdateProductCountCalls int

	GetByCodeFunc          func(ctx context.Context, code string) (*domain.Family, error)
	UpdateProductCountFunc func(ctx context.Context, code string, count int64, updatedAt time.Time) error
}

func NewMockFamilyRepository() *MockFamilyRepository {
	return &MockFamilyRepository{families: make(map[string]*domain.Family)}
}

func (m *MockFamilyRepository) Put(f *domain.Family) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.families[f.Code] = f
}

func (m *MockFamilyRepository) GetByCode(ctx context.Context, code string) (*domain.Family, error) {
	if m.GetByCodeFunc != nil {
		return m.GetByCodeFunc(ctx, code)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if f, ok := m.families[code]; ok {
		return f, nil
	}
	return nil, domain.ErrFamilyNotFound
}

func (m *MockFamilyRepository) UpdateProductCount(ctx context.Context, code string, count int64, updatedAt time.Time) error {
	m.mu.Lock()
	m.UpdateProductCountCalls++
	m.mu.Unlock()

	if m.UpdateProductCountFunc != nil {
		return m.UpdateProductCountFunc(ctx, code, count, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if f, ok := m.families[code]; ok {
		f.ProductCount = count
		f.UpdatedAt = updatedAt
	}
	return nil
}

// MockProductRepository is a mock implementation of usecase.ProductRepository.
type MockProductRepository struct {
	mu       sync.RWMutex
	products []*domain.Product

	CountByFamilyFunc func(ctx context.Context, familyCode string) (int64, error)
}

func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{}
}

func (m *MockProductRepository) Add(products ...*domain.Product) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products = append(m.products, products...)
}

func (m *MockProductRepository) CountByFamily(ctx context.Context, familyCode string) (int64, error) {
	if m.CountByFamilyFunc != nil {
		return m.CountByFamilyFunc(ctx, familyCode)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var count int64
	for _, p := range m.products {
		if p.FamilyCode == familyCode {
			count++
		}
	}
	return count, nil
}

// MockVariantRepository is a mock implementation of usecase.VariantRepository.
type MockVariantRepository struct {
	mu       sync.RWMutex
	variants map[string]*domain.Variant

	UpdateCostPriceCalls int

	GetByReferenceFunc  func(ctx context.Context, reference string) (*domain.Variant, error)
	UpdateCostPriceFunc func(ctx context.Context, reference string, cost decimal.Decimal, updatedAt time.Time) error
}

func NewMockVariantRepository() *MockVariantRepository {
	return &MockVariantRepository{variants: make(map[string]*domain.Variant)}
}

func (m *MockVariantRepository) Put(v *domain.Variant) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.variants[v.Reference] = v
}

func (m *MockVariantRepository) GetByReference(ctx context.Context, reference string) (*domain.Variant, error) {
	if m.GetByReferenceFunc != nil {
		return m.GetByReferenceFunc(ctx, reference)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.variants[reference]; ok {
		return v, nil
	}
	return nil, domain.ErrVariantNotFound
}

func (m *MockVariantRepository) UpdateCostPrice(ctx context.Context, reference string, cost decimal.Decimal, updatedAt time.Time) error {
	m.mu.Lock()
	m.UpdateCostPriceCalls++
	m.mu.Unlock()

	if m.UpdateCostPriceFunc != nil {
		return m.UpdateCostPriceFunc(ctx, reference, cost, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.variants[reference]; ok {
		v.CostPrice = cost
		v.UpdatedAt = updatedAt
	}
	return nil
}

// MockPurchaseDocumentRepository is a mock implementation of usecase.PurchaseDocumentRepository.
type MockPurchaseDocumentRepository struct {
	mu        sync.RWMutex
	documents map[string]*domain.PurchaseDocument

	GetByCodeFunc func(ctx context.Context, code string) (*domain.PurchaseDocument, error)
}

func NewMockPurchaseDocumentRepository() *MockPurchaseDocumentRepository {
	return &MockPurchaseDocumentRepository{documents: make(map[string]*domain.PurchaseDocument)}
}

func (m *MockPurchaseDocumentRepository) Put(doc *domain.PurchaseDocument) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.documents[doc.Code] = doc
}

func (m *MockPurchaseDocumentRepository) GetByCode(ctx context.Context, code string) (*domain.PurchaseDocument, error) {
	if m.GetByCodeFunc != nil {
		return m.GetByCodeFunc(ctx, code)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if doc, ok := m.documents[code]; ok {
		return doc, nil
	}
	return nil, domain.ErrDocumentNotFound
}

// MockSupplierProductRepository is a mock implementation of usecase.SupplierProductRepository.
type MockSupplierProductRepository struct {
	mu      sync.RWMutex
	records map[string]*domain.SupplierProduct

	SaveCalls int

	GetBySupplierReferenceFunc func(ctx context.Context, supplierCode, reference string) (*domain.SupplierProduct, error)
	SaveFunc                   func(ctx context.Context, sp *domain.SupplierProduct) error
	LatestByReferenceFunc      func(ctx context.Context, reference string) (*domain.SupplierProduct, error)
}

func NewMockSupplierProductRepository() *MockSupplierProductRepository {
	return &MockSupplierProductRepository{records: make(map[string]*domain.SupplierProduct)}
}

func supplierProductKey(supplierCode, reference string) string {
	return supplierCode + "|" + reference
}

func (m *MockSupplierProductRepository) Put(sp *domain.SupplierProduct) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[supplierProductKey(sp.SupplierCode, sp.Reference)] = sp
}

func (m *MockSupplierProductRepository) Get(supplierCode, reference string) *domain.SupplierProduct {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.records[supplierProductKey(supplierCode, reference)]
}

func (m *MockSupplierProductRepository) GetBySupplierReference(ctx context.Context, supplierCode, reference string) (*domain.SupplierProduct, error) {
	if m.GetBySupplierReferenceFunc != nil {
		return m.GetBySupplierReferenceFunc(ctx, supplierCode, reference)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if sp, ok := m.records[supplierProductKey(supplierCode, reference)]; ok {
		return sp, nil
	}
	return nil, domain.ErrSupplierProductNotFound
}

func (m *MockSupplierProductRepository) Save(ctx context.Context, sp *domain.SupplierProduct) error {
	m.mu.Lock()
	m.SaveCalls++
	m.mu.Unlock()

	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, sp)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[supplierProductKey(sp.SupplierCode, sp.Reference)] = sp
	return nil
}

func (m *MockSupplierProductRepository) LatestByReference(ctx context.Context, reference string) (*domain.SupplierProduct, error) {
	if m.LatestByReferenceFunc != nil {
		return m.LatestByReferenceFunc(ctx, reference)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var latest *domain.SupplierProduct
	for _, sp := range m.records {
		if sp.Reference != reference {
			continue
		}
		if latest == nil || sp.UpdatedAt.After(latest.UpdatedAt) {
			latest = sp
		}
	}
	if latest == nil {
		return nil, domain.ErrSupplierProductNotFound
	}
	return latest, nil
}

// MockSettingsRepository is a mock implementation of usecase.SettingsRepository.
type MockSettingsRepository struct {
	mu     sync.RWMutex
	values map[string]string

	GetFunc func(ctx context.Context, section, key string) (string, error)
}

func NewMockSettingsRepository() *MockSettingsRepository {
	return &MockSettingsRepository{values: make(map[string]string)}
}

func (m *MockSettingsRepository) Set(section, key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[section+"."+key] = value
}

func (m *MockSettingsRepository) Get(ctx context.Context, section, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, section, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.values[section+"."+key]; ok {
		return v, nil
	}
	return "", domain.ErrSettingNotFound
}

// MockIDGenerator is a mock implementation of usecase.IDGenerator.
type MockIDGenerator struct {
	mu   sync.Mutex
	next int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	return "id-" + strconv.Itoa(m.next)
}
