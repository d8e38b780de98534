package dto

type AnalyzerInfo struct {
	Name    string
	Version string
	Binary  string
	Enabled bool
	Builtin bool
}

type DoctorResult struct {
	Name            string
	BinaryReachable bool
	ChecksumValid   bool
	LifecycleOK     bool
	Error           string
}

type AnalyzeInput struct {
	Analyzer   string
	JobID      string
	MediaName  string
	MediaBytes int64
}

type AnalysisOutput struct {
	Analyzer  string
	Score     int
	Tips      []string
	Strengths []string
}
