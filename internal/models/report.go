package models

import "time"

// DigestReport is the payload rendered into the digest email.
type DigestReport struct {
	Query           string
	Date            time.Time
	Videos          []Video
	ShortSummary    string
	DetailedSummary string
	VideoSummaries  string
}
