package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRange is returned when an item range is not 1 <= start <= end
var ErrInvalidRange = errors.New("invalid item range")

// Quality is a download quality tier
type Quality string

const (
	QualityBest   Quality = "best"
	QualityMedium Quality = "medium"
	QualityWorst  Quality = "worst"
)

// Qualities lists the tiers in display order
var Qualities = []Quality{QualityBest, QualityMedium, QualityWorst}

// ParseQuality normalizes a tier name ("Best", " worst ") to a Quality.
// Unknown names are returned as-is so the format mapping can fall back.
func ParseQuality(s string) Quality {
	return Quality(strings.ToLower(strings.TrimSpace(s)))
}

// Label returns the capitalized tier name shown in the quality selector
func (q Quality) Label() string {
	if q == "" {
		return ""
	}
	return strings.ToUpper(string(q[:1])) + string(q[1:])
}

// DownloadRequest describes one download action
type DownloadRequest struct {
	URL     string
	Quality Quality
	Start   int // 1-based, inclusive
	End     int // 1-based, inclusive
	Folder  string
}

// Validate checks the item range
func (r DownloadRequest) Validate() error {
	if r.Start < 1 || r.End < r.Start {
		return fmt.Errorf("%w: %d-%d", ErrInvalidRange, r.Start, r.End)
	}
	return nil
}

// ItemRange returns the range in engine selector form ("start-end")
func (r DownloadRequest) ItemRange() string {
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// Size returns the number of items covered by the range
func (r DownloadRequest) Size() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start + 1
}
