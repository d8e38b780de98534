package dto

// Job phases as they appear in JobOutput.Phase.
const (
	PhaseIdle      = "idle"
	PhaseUploading = "uploading"
	PhaseComplete  = "complete"
)

type StartInput struct {
	Path string
}

type MediaOutput struct {
	Path  string
	Name  string
	Bytes int64
}

type ResultOutput struct {
	Score     int
	Tips      []string
	Strengths []string
}

type JobOutput struct {
	ID       string
	Media    MediaOutput
	Phase    string
	Progress int
	// Result is nil until the job is complete.
	Result *ResultOutput
	Saved  bool
}

type TickOutput struct {
	Job  JobOutput
	More bool
}

type FinishInput struct {
	JobID  string
	Result ResultOutput
}

type QuotaOutput struct {
	Used      int
	Limit     int
	Unlimited bool
	Exceeded  bool
}

type SaveOutput struct {
	SwingID int
}
