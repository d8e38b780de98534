package domain

type Quota struct {
	Used      int
	Limit     int
	Unlimited bool
}

func (q Quota) Exceeded() bool {
	return !q.Unlimited && q.Used >= q.Limit
}

type NoticeKind string

const NoticeQuotaExceeded NoticeKind = "quota_exceeded"

// Notice is a user-facing message raised outside the normal return path.
type Notice struct {
	Kind    NoticeKind
	Message string
	Quota   Quota
}
