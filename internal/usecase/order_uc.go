package usecase

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/layensweets/site/internal/adapters/repo/sitedata"
	"github.com/layensweets/site/internal/domain"
)

// DressageNote is the only business rule coupling a category to order
// semantics: Sable products with the flag set carry it on their line.
const DressageNote = "With Dressage"

// CustomerInfo is the order form contact block.
type CustomerInfo struct {
	Name  string
	Phone string
	Notes string
}

type OrderUC struct {
	Data *sitedata.Repository
	// Notify, when set, is called after an order persists. Best effort:
	// implementations log their own failures.
	Notify func(*domain.Order)

	mu     sync.Mutex
	lastID int64
}

// Submit builds an immutable order from the cart and prepends it to the
// orders collection. Prices and names are snapshotted from the catalog as
// the customer saw it; a stale product id never fails the submission, it
// resolves to a placeholder with zero price contribution.
func (uc *OrderUC) Submit(ctx context.Context, cart map[string]int, customer CustomerInfo) (*domain.Order, error) {
	qty := make(map[string]int, len(cart))
	for id, q := range cart {
		if q >= 1 {
			qty[id] = q
		}
	}
	if len(qty) == 0 {
		return nil, domain.ErrEmptyCart
	}

	catalog := uc.Data.Products(ctx)

	// Items follow catalog order so the record is independent of the order
	// the customer tapped things in. Stale ids come last.
	items := make([]domain.OrderItem, 0, len(qty))
	total := 0.0
	for _, p := range catalog {
		q, ok := qty[p.ID]
		if !ok {
			continue
		}
		delete(qty, p.ID)
		it := domain.OrderItem{ProductID: p.ID, Name: p.Name, Quantity: q}
		if p.Category == domain.CategorySable && p.SableDressage {
			it.Notes = DressageNote
		}
		items = append(items, it)
		total += p.Price * float64(q)
	}
	for _, id := range sortedKeys(qty) {
		items = append(items, domain.OrderItem{ProductID: id, Name: "Unknown", Quantity: qty[id]})
	}

	order := &domain.Order{
		ID:           uc.nextID(),
		CustomerName: customer.Name,
		Phone:        customer.Phone,
		Items:        items,
		TotalPrice:   total,
		Notes:        customer.Notes,
		Status:       domain.OrderStatusPending,
		Date:         time.Now().UTC().Format(time.RFC3339),
	}

	existing := uc.Data.Orders(ctx)
	updated := append([]domain.Order{*order}, existing...)
	if err := uc.Data.ReplaceOrders(ctx, updated); err != nil {
		// No retry. The caller surfaces the failure and keeps the cart so
		// the customer can resubmit.
		return nil, err
	}
	if uc.Notify != nil {
		uc.Notify(order)
	}
	return order, nil
}

// ToggleStatus advances the order one step in the Pending -> Processed ->
// Completed -> Pending cycle.
func (uc *OrderUC) ToggleStatus(ctx context.Context, id string) (domain.OrderStatus, error) {
	orders := uc.Data.Orders(ctx)
	for i := range orders {
		if orders[i].ID != id {
			continue
		}
		orders[i].Status = orders[i].Status.Next()
		if err := uc.Data.ReplaceOrders(ctx, orders); err != nil {
			return "", err
		}
		return orders[i].Status, nil
	}
	return "", domain.ErrNotFound
}

// nextID derives a unique id from the current timestamp. The guard keeps ids
// strictly increasing when two submissions land in the same millisecond.
func (uc *OrderUC) nextID() string {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	id := time.Now().UnixMilli()
	if id <= uc.lastID {
		id = uc.lastID + 1
	}
	uc.lastID = id
	return strconv.FormatInt(id, 10)
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
