package view

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"voltline/internal/domain"
)

type SortOrder string

const (
	SortNewest       SortOrder = "newest"
	SortOldest       SortOrder = "oldest"
	SortHighestTotal SortOrder = "highest"
	SortLowestTotal  SortOrder = "lowest"
)

type DateFilter string

const (
	DateAll       DateFilter = "all"
	DateToday     DateFilter = "day"
	DateThisMonth DateFilter = "month"
	DateThisYear  DateFilter = "year"
	DateCustom    DateFilter = "custom"
)

// Query selects and orders a subset of the snapshot. The zero value
// means: no search, all statuses, archived hidden, all dates, newest
// first.
type Query struct {
	Search       string
	Status       domain.OrderStatus
	ShowArchived bool
	Date         DateFilter
	From, To     time.Time
	Sort         SortOrder
}

// OrderView is the browser-held reflection of the orders collection:
// a full snapshot refreshed by Replace, with search, filtering and
// sorting recomputed from scratch on every call. No incremental
// indexing; fine at back-office scale.
type OrderView struct {
	mu     sync.RWMutex
	orders []domain.Order
	now    func() time.Time
}

func NewOrderView() *OrderView {
	return &OrderView{now: time.Now}
}

func (v *OrderView) Replace(orders []domain.Order) {
	snapshot := make([]domain.Order, len(orders))
	copy(snapshot, orders)

	v.mu.Lock()
	v.orders = snapshot
	v.mu.Unlock()
}

func (v *OrderView) Len() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.orders)
}

// Orders returns the filtered, sorted subset for the given query.
func (v *OrderView) Orders(q Query) []domain.Order {
	v.mu.RLock()
	defer v.mu.RUnlock()

	filtered := make([]domain.Order, 0, len(v.orders))
	for _, o := range v.orders {
		if v.matches(o, q) {
			filtered = append(filtered, o)
		}
	}

	switch q.Sort {
	case SortOldest:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].CreatedAt.Before(filtered[j].CreatedAt)
		})
	case SortHighestTotal:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Total > filtered[j].Total
		})
	case SortLowestTotal:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Total < filtered[j].Total
		})
	default: // SortNewest
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
		})
	}

	return filtered
}

func (v *OrderView) matches(o domain.Order, q Query) bool {
	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		if !strings.Contains(strings.ToLower(o.OrderNumber), needle) &&
			!strings.Contains(strings.ToLower(o.CustomerInfo.Name), needle) &&
			!strings.Contains(strings.ToLower(o.CustomerInfo.Email), needle) {
			return false
		}
	}
	if q.Status != "" && o.Status != q.Status {
		return false
	}
	if !q.ShowArchived && o.Archived {
		return false
	}
	return v.withinDate(o.CreatedAt, q)
}

func (v *OrderView) withinDate(d time.Time, q Query) bool {
	now := v.now()
	switch q.Date {
	case DateToday:
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return !d.Before(start)
	case DateThisMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return !d.Before(start)
	case DateThisYear:
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return !d.Before(start)
	case DateCustom:
		if q.From.IsZero() || q.To.IsZero() {
			return true
		}
		// Inclusive range; the end date covers its whole day.
		to := time.Date(q.To.Year(), q.To.Month(), q.To.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), q.To.Location())
		return !d.Before(q.From) && !d.After(to)
	default:
		return true
	}
}

// ExportCSV renders the filtered rows as the back-office export file.
func (v *OrderView) ExportCSV(q Query) string {
	var b strings.Builder
	b.WriteString("Numéro,Client,Email,Téléphone,Statut,Total,Date,Archivée\n")
	for _, o := range v.Orders(q) {
		archived := "non"
		if o.Archived {
			archived = "oui"
		}
		fmt.Fprintf(&b, "%s,%s,%s,%s,%s,%.2f,%s,%s\n",
			o.OrderNumber,
			o.CustomerInfo.Name,
			o.CustomerInfo.Email,
			o.CustomerInfo.Phone,
			o.Status,
			o.Total,
			o.CreatedAt.Format("02/01/2006"),
			archived,
		)
	}
	return b.String()
}
