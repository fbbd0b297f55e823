package service

import (
	"fmt"
	"strings"
)

// VideoState is a step in the lifecycle of one scene video request.
type VideoState int

const (
	VideoSubmitted VideoState = iota
	VideoPolling
	VideoCompleted
	VideoFailed
	VideoTimedOut
	VideoFellBackToImage
)

func (s VideoState) String() string {
	switch s {
	case VideoSubmitted:
		return "submitted"
	case VideoPolling:
		return "polling"
	case VideoCompleted:
		return "completed"
	case VideoFailed:
		return "failed"
	case VideoTimedOut:
		return "timed_out"
	case VideoFellBackToImage:
		return "fell_back_to_image"
	default:
		return fmt.Sprintf("VideoState(%d)", int(s))
	}
}

// Terminal reports whether no further transition is allowed.
func (s VideoState) Terminal() bool {
	return s == VideoCompleted || s == VideoFellBackToImage
}

var videoTransitions = map[VideoState][]VideoState{
	VideoSubmitted: {VideoPolling, VideoCompleted, VideoFailed},
	VideoPolling:   {VideoPolling, VideoCompleted, VideoFailed, VideoTimedOut},
	VideoFailed:    {VideoFellBackToImage},
	VideoTimedOut:  {VideoFellBackToImage},
}

// videoJob tracks one video request through its states.
type videoJob struct {
	state   VideoState
	history []VideoState
	polls   int
}

func newVideoJob() *videoJob {
	return &videoJob{state: VideoSubmitted, history: []VideoState{VideoSubmitted}}
}

// transition moves the job to next or returns an error when the move is illegal.
func (j *videoJob) transition(next VideoState) error {
	for _, allowed := range videoTransitions[j.state] {
		if allowed == next {
			j.state = next
			j.history = append(j.history, next)
			if next == VideoPolling {
				j.polls++
			}
			return nil
		}
	}
	return fmt.Errorf("illegal video state transition %s -> %s", j.state, next)
}

// providerVideoStatus classifies a raw poll status.
type providerVideoStatus int

const (
	providerVideoPending providerVideoStatus = iota
	providerVideoDone
	providerVideoFailed
)

// classifyVideoStatus maps provider status strings. Unknown values are
// treated as still processing.
func classifyVideoStatus(raw string) providerVideoStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "completed", "success":
		return providerVideoDone
	case "failed", "fail":
		return providerVideoFailed
	default:
		return providerVideoPending
	}
}
