package insight

type CategoryTotal struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

type MonthlyComparison struct {
	CurrentMonth     float64 `json:"currentMonth"`
	PreviousMonth    float64 `json:"previousMonth"`
	ChangePercentage float64 `json:"changePercentage"`
}

type Insights struct {
	SafeToSpend       float64           `json:"safeToSpend"`
	TopCategories     []CategoryTotal   `json:"topCategories"`
	DailyAverage      float64           `json:"dailyAverage"`
	MonthlyComparison MonthlyComparison `json:"monthlyComparison"`
	ExpenseStreak     int               `json:"expenseStreak"`
}
