package dto

type PostOutput struct {
	ID             int
	GolferName     string
	GolferHandicap int
	Initials       string
	Score          int
	Tips           []string
	Date           string
	Likes          int
	Liked          bool
	Comments       int
	Rating         float64
}

type ListInput struct {
	Page   int
	Golfer string
}

type PageOutput struct {
	Posts   []PostOutput
	Page    int
	HasMore bool
	// Golfer is the resolved name when the listing was filtered.
	Golfer string
}

type LikeOutput struct {
	PostID int
	Liked  bool
	Likes  int
}

type GolferOutput struct {
	Name     string
	Handicap int
	Distance int
}
