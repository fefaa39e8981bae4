package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/bravoapp/volunteering-backend-go/internal/domain/feedback"
)

type FeedbackJobs struct {
	feedbackSvc feedback.FeedbackService
}

func NewFeedbackJobs(feedbackSvc feedback.FeedbackService) *FeedbackJobs {
	return &FeedbackJobs{feedbackSvc: feedbackSvc}
}

func (j *FeedbackJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("send_feedback_requests", interval, j.SendFeedbackRequests)
}

func (j *FeedbackJobs) SendFeedbackRequests(ctx context.Context) error {
	slog.Info("Cron: Starting feedback request job")

	result, err := j.feedbackSvc.RunFeedbackRequests(ctx)
	if err != nil {
		return err
	}

	slog.Info("Cron: Feedback request job finished",
		"sent", result.Sent,
		"failed", result.Failed,
		"skipped", result.Skipped,
		"total", result.Total,
	)
	return nil
}
