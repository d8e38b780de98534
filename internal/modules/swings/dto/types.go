package dto

type SwingOutput struct {
	ID          int
	Date        string
	Score       int
	Tips        []string
	Improvement int
}

type ListInput struct {
	Sort string
}

type CompareInput struct {
	// Toggles are applied to an empty selection in order.
	Toggles []int
}

type ComparisonOutput struct {
	First      SwingOutput
	Second     SwingOutput
	ScoreDelta int
	OnlyFirst  []string
	OnlySecond []string
	Shared     []string
}

type StatsOutput struct {
	LatestScore      int
	MonthImprovement int
	Total            int
}

type AddSwingInput struct {
	Date  string
	Score int
	Tips  []string
}
