package assistant

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/slight125/FarmFlow/models"
)

// Scope narrows every query to one farm, or to all of them for the
// aggregate roles. The zero UserID means all farms.
type Scope struct {
	UserID uint
}

func FarmScope(userID uint) Scope { return Scope{UserID: userID} }
func AllFarms() Scope             { return Scope{} }

func (s Scope) apply(q *gorm.DB) *gorm.DB {
	if s.UserID != 0 {
		q = q.Where("user_id = ?", s.UserID)
	}
	return q
}

// Snapshot is the point-in-time read of a farm's operational state. It is
// the single contract shared by the dashboard insight analyzers, the chat
// handlers and the prompt builder: everything downstream is a pure function
// of one Snapshot and the timestamp it was taken at.
type Snapshot struct {
	TakenAt   time.Time        `json:"taken_at"`
	Crops     CropSummary      `json:"crops"`
	Livestock LivestockSummary `json:"livestock"`
	Finances  FinanceSummary   `json:"finances"`
	Tasks     TaskSummary      `json:"tasks"`
	Inventory InventorySummary `json:"inventory"`
	Weather   *WeatherReading  `json:"weather,omitempty"`
	Alerts    []string         `json:"alerts"`
}

type CropSummary struct {
	Total    int            `json:"total"`
	Growing  int            `json:"growing"`
	ByStatus map[string]int `json:"by_status"`
	Items    []CropLine     `json:"items"`
}

type CropLine struct {
	ID              uint            `json:"id"`
	Name            string          `json:"name"`
	Variety         string          `json:"variety"`
	Status          string          `json:"status"`
	Area            decimal.Decimal `json:"area"`
	PlantingDate    time.Time       `json:"planting_date"`
	ExpectedHarvest time.Time       `json:"expected_harvest"`
	DaysToHarvest   int             `json:"days_to_harvest"`
	HarvestOverdue  bool            `json:"harvest_overdue"`
}

type LivestockSummary struct {
	Total          int             `json:"total"`
	Healthy        int             `json:"healthy"`
	ByStatus       map[string]int  `json:"by_status"`
	NeedsAttention []LivestockLine `json:"needs_attention"`
	Items          []LivestockLine `json:"items"`
}

type LivestockLine struct {
	ID        uint   `json:"id"`
	Type      string `json:"type"`
	Breed     string `json:"breed"`
	TagNumber string `json:"tag_number"`
	Status    string `json:"status"`
}

// FinanceWindow is one trailing rollup. Money stays decimal end to end;
// only the margin percentage is float, and only for display.
type FinanceWindow struct {
	Income       decimal.Decimal `json:"income"`
	Expense      decimal.Decimal `json:"expense"`
	Net          decimal.Decimal `json:"net"`
	ProfitMargin float64         `json:"profit_margin"`
}

type FinanceSummary struct {
	Week        FinanceWindow `json:"week"`
	Last30Days  FinanceWindow `json:"last_30_days"`
	MonthToDate FinanceWindow `json:"month_to_date"`
	Quarter     FinanceWindow `json:"quarter"`
}

type TaskSummary struct {
	Pending      int        `json:"pending"`
	Overdue      int        `json:"overdue"`
	DueSoon      int        `json:"due_soon"`
	HorizonDays  int        `json:"horizon_days"`
	OpenTasks    []TaskLine `json:"open_tasks"`
	OverdueTasks []TaskLine `json:"overdue_tasks"`
}

type TaskLine struct {
	ID       uint      `json:"id"`
	Title    string    `json:"title"`
	Priority string    `json:"priority"`
	Status   string    `json:"status"`
	DueDate  time.Time `json:"due_date"`
	Overdue  bool      `json:"overdue"`
}

type InventorySummary struct {
	TotalItems int             `json:"total_items"`
	LowStock   []InventoryLine `json:"low_stock"`
	OutOfStock []InventoryLine `json:"out_of_stock"`
}

type InventoryLine struct {
	ID           uint            `json:"id"`
	Name         string          `json:"name"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit"`
	ReorderLevel decimal.Decimal `json:"reorder_level"`
}

type WeatherReading struct {
	Date       time.Time `json:"date"`
	Conditions string    `json:"conditions"`
}

// DefaultTaskHorizonDays is the "due soon" window for task rollups.
const DefaultTaskHorizonDays = 3

// BuildSnapshot reads every entity fresh and reduces it to a Snapshot.
// No caching anywhere: staleness is avoided by recomputing from the store
// on every call. The timestamp is injected so two calls with the same now
// and no intervening writes produce identical snapshots.
func BuildSnapshot(db *gorm.DB, scope Scope, now time.Time) (*Snapshot, error) {
	snap := &Snapshot{
		TakenAt: now,
		Crops:   CropSummary{ByStatus: map[string]int{}},
		Livestock: LivestockSummary{
			ByStatus:       map[string]int{},
			NeedsAttention: []LivestockLine{},
			Items:          []LivestockLine{},
		},
		Tasks: TaskSummary{
			HorizonDays:  DefaultTaskHorizonDays,
			OpenTasks:    []TaskLine{},
			OverdueTasks: []TaskLine{},
		},
		Inventory: InventorySummary{LowStock: []InventoryLine{}, OutOfStock: []InventoryLine{}},
		Alerts:    []string{},
	}

	var crops []models.Crop
	if err := scope.apply(db.Model(&models.Crop{})).Order("id").Find(&crops).Error; err != nil {
		return nil, err
	}
	snap.Crops.Total = len(crops)
	snap.Crops.Items = make([]CropLine, 0, len(crops))
	for i := range crops {
		c := &crops[i]
		snap.Crops.ByStatus[c.Status]++
		if c.Status == models.CropStatusGrowing {
			snap.Crops.Growing++
		}
		snap.Crops.Items = append(snap.Crops.Items, CropLine{
			ID:              c.ID,
			Name:            c.Name,
			Variety:         c.Variety,
			Status:          c.Status,
			Area:            c.Area,
			PlantingDate:    c.PlantingDate,
			ExpectedHarvest: c.ExpectedHarvestDate,
			DaysToHarvest:   c.DaysToHarvest(now),
			HarvestOverdue:  c.HarvestOverdue(now),
		})
	}

	var animals []models.Livestock
	if err := scope.apply(db.Model(&models.Livestock{})).Order("id").Find(&animals).Error; err != nil {
		return nil, err
	}
	snap.Livestock.Total = len(animals)
	for i := range animals {
		a := &animals[i]
		snap.Livestock.ByStatus[a.Status]++
		if a.Status == models.LivestockStatusHealthy {
			snap.Livestock.Healthy++
		}
		line := LivestockLine{ID: a.ID, Type: a.Type, Breed: a.Breed, TagNumber: a.TagNumber, Status: a.Status}
		snap.Livestock.Items = append(snap.Livestock.Items, line)
		if a.NeedsAttention() {
			snap.Livestock.NeedsAttention = append(snap.Livestock.NeedsAttention, line)
		}
	}

	finances, err := buildFinanceSummary(db, scope, now)
	if err != nil {
		return nil, err
	}
	snap.Finances = finances

	var tasks []models.Task
	openStatuses := []string{models.TaskStatusPending, models.TaskStatusInProgress}
	if err := scope.apply(db.Model(&models.Task{})).
		Where("status IN ?", openStatuses).
		Order("due_date, id").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	for i := range tasks {
		t := &tasks[i]
		line := TaskLine{
			ID:       t.ID,
			Title:    t.Title,
			Priority: t.Priority,
			Status:   t.Status,
			DueDate:  t.DueDate,
			Overdue:  t.IsOverdue(now),
		}
		snap.Tasks.OpenTasks = append(snap.Tasks.OpenTasks, line)
		if t.Status == models.TaskStatusPending {
			snap.Tasks.Pending++
		}
		if line.Overdue {
			snap.Tasks.Overdue++
			snap.Tasks.OverdueTasks = append(snap.Tasks.OverdueTasks, line)
		} else if t.DueWithin(now, DefaultTaskHorizonDays) {
			snap.Tasks.DueSoon++
		}
	}

	var items []models.InventoryItem
	if err := scope.apply(db.Model(&models.InventoryItem{})).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	snap.Inventory.TotalItems = len(items)
	for i := range items {
		it := &items[i]
		line := InventoryLine{ID: it.ID, Name: it.Name, Quantity: it.Quantity, Unit: it.Unit, ReorderLevel: it.ReorderLevel}
		if it.OutOfStock() {
			snap.Inventory.OutOfStock = append(snap.Inventory.OutOfStock, line)
		} else if it.NeedsReorder() {
			snap.Inventory.LowStock = append(snap.Inventory.LowStock, line)
		}
	}

	var weather models.WeatherData
	res := scope.apply(db.Model(&models.WeatherData{})).Order("date desc, id desc").Limit(1).Find(&weather)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected > 0 {
		snap.Weather = &WeatherReading{Date: weather.Date, Conditions: weather.Conditions}
	}

	snap.Alerts = buildAlerts(snap)
	return snap, nil
}

func buildFinanceSummary(db *gorm.DB, scope Scope, now time.Time) (FinanceSummary, error) {
	var out FinanceSummary

	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	quarterStart := day.AddDate(0, 0, -90)

	var txns []models.FinancialTransaction
	if err := scope.apply(db.Model(&models.FinancialTransaction{})).
		Where("date >= ?", quarterStart).
		Order("date, id").
		Find(&txns).Error; err != nil {
		return out, err
	}

	windows := []struct {
		start time.Time
		dst   *FinanceWindow
	}{
		{day.AddDate(0, 0, -7), &out.Week},
		{day.AddDate(0, 0, -30), &out.Last30Days},
		{time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), &out.MonthToDate},
		{quarterStart, &out.Quarter},
	}
	for _, w := range windows {
		income, expense := decimal.Zero, decimal.Zero
		for i := range txns {
			t := &txns[i]
			if t.Date.Before(w.start) {
				continue
			}
			switch t.Type {
			case models.TransactionIncome:
				income = income.Add(t.Amount)
			case models.TransactionExpense:
				expense = expense.Add(t.Amount)
			}
		}
		*w.dst = newFinanceWindow(income, expense)
	}
	return out, nil
}

func newFinanceWindow(income, expense decimal.Decimal) FinanceWindow {
	w := FinanceWindow{Income: income, Expense: expense, Net: income.Sub(expense)}
	// guarded, never a division by zero
	if income.IsPositive() {
		w.ProfitMargin, _ = w.Net.Div(income).Mul(decimal.NewFromInt(100)).Float64()
	}
	return w
}

// buildAlerts flattens the snapshot into ordered alert strings with a fixed
// category precedence: out-of-stock, overdue tasks, livestock needing care,
// crops past harvest, harvests inside 14 days, a monthly deficit, then low
// stock. Overdue tasks sort oldest due date first, so the longest-neglected
// work tops the list; everything else keeps creation order.
func buildAlerts(snap *Snapshot) []string {
	alerts := []string{}

	for _, it := range snap.Inventory.OutOfStock {
		alerts = append(alerts, fmt.Sprintf("OUT OF STOCK: %s", it.Name))
	}

	overdue := append([]TaskLine(nil), snap.Tasks.OverdueTasks...)
	sort.SliceStable(overdue, func(i, j int) bool { return overdue[i].DueDate.Before(overdue[j].DueDate) })
	for _, t := range overdue {
		alerts = append(alerts, fmt.Sprintf("OVERDUE TASK: %s (due %s)", t.Title, t.DueDate.Format("2006-01-02")))
	}

	for _, a := range snap.Livestock.NeedsAttention {
		alerts = append(alerts, fmt.Sprintf("%s %s (tag %s) needs medical attention", a.Breed, a.Type, a.TagNumber))
	}

	pastHarvest := []CropLine{}
	upcoming := []CropLine{}
	for _, c := range snap.Crops.Items {
		switch {
		case c.HarvestOverdue:
			pastHarvest = append(pastHarvest, c)
		case c.Status == models.CropStatusGrowing && c.DaysToHarvest <= 14:
			upcoming = append(upcoming, c)
		}
	}
	sort.SliceStable(pastHarvest, func(i, j int) bool {
		return pastHarvest[i].ExpectedHarvest.Before(pastHarvest[j].ExpectedHarvest)
	})
	for _, c := range pastHarvest {
		alerts = append(alerts, fmt.Sprintf("%s harvest is past its expected date (%s)", c.Name, c.ExpectedHarvest.Format("2006-01-02")))
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].ExpectedHarvest.Before(upcoming[j].ExpectedHarvest)
	})
	for _, c := range upcoming {
		alerts = append(alerts, fmt.Sprintf("%s ready for harvest in %d days", c.Name, c.DaysToHarvest))
	}

	mtd := snap.Finances.MonthToDate
	if mtd.Expense.GreaterThan(mtd.Income) {
		alerts = append(alerts, fmt.Sprintf("Monthly deficit: %s", formatMoney(mtd.Expense.Sub(mtd.Income))))
	}

	for _, it := range snap.Inventory.LowStock {
		alerts = append(alerts, fmt.Sprintf("Low stock: %s (%s %s)", it.Name, it.Quantity.String(), it.Unit))
	}

	return alerts
}
