package dto

type ProfileOutput struct {
	Name         string
	Email        string
	Initials     string
	Handicap     string
	Plan         string
	TotalSwings  int
	BestScore    int
	AverageScore int
	Improvement  int
}

type UpdateProfileInput struct {
	Name     string
	Handicap string
}

type UsageOutput struct {
	Used      int
	Limit     int
	Unlimited bool
	Remaining int
	// Low is set when the upgrade prompt should be shown.
	Low bool
}

type UpgradeOutput struct {
	Plan       string
	ReceiptID  string
	Upgraded   bool
	PriceLabel string
}
