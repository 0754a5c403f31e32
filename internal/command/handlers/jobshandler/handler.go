// Package jobshandler реализует команды jobs и job-log.
package jobshandler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/Kargones/travis/internal/command"
	"github.com/Kargones/travis/internal/command/handlers/shared"
	"github.com/Kargones/travis/internal/config"
	"github.com/Kargones/travis/internal/constants"
	"github.com/Kargones/travis/internal/pkg/output"
	"github.com/Kargones/travis/travis"
)

// RegisterCmd регистрирует jobs и job-log.
func RegisterCmd() error {
	return errors.Join(
		command.Register(&ListHandler{}),
		command.Register(&LogHandler{}),
	)
}

// JobsData — результат команды jobs.
type JobsData struct {
	BuildID int64        `json:"build_id"`
	Jobs    []travis.Job `json:"jobs"`
}

// WriteText выводит задания сборки.
func (d *JobsData) WriteText(w io.Writer) error {
	if len(d.Jobs) == 0 {
		_, err := fmt.Fprintf(w, "У сборки %d нет заданий\n", d.BuildID)
		return err
	}
	for _, j := range d.Jobs {
		stage := "-"
		if j.Stage != nil {
			stage = j.Stage.Name
		}
		suffix := ""
		if j.AllowFailure {
			suffix = " (allow_failure)"
		}
		if _, err := fmt.Fprintf(w, "%-8s %-10d %-9s %s%s\n", j.Number, j.ID, j.State, stage, suffix); err != nil {
			return err
		}
	}
	return nil
}

// ListHandler обрабатывает команду jobs.
type ListHandler struct {
	// client — опциональный клиент (nil в production, mock в тестах)
	client travis.JobReader
}

func (h *ListHandler) Name() string        { return constants.ActJobs }
func (h *ListHandler) Description() string { return "Задания сборки" }
func (h *ListHandler) Usage() string       { return "<build-id>" }

// Execute запрашивает GET /build/{id}/jobs.
func (h *ListHandler) Execute(ctx context.Context, cfg *config.Config) error {
	return shared.Run(ctx, cfg, constants.ActJobs, func(ctx context.Context) (*shared.Outcome, error) {
		if err := shared.RequireArgs(cfg, 1, h.Usage()); err != nil {
			return nil, err
		}
		buildID, err := shared.ParseID("build-id", cfg.Args[0])
		if err != nil {
			return nil, err
		}

		client := h.client
		if client == nil {
			c, err := shared.CreateClient(ctx, cfg)
			if err != nil {
				return nil, err
			}
			client = c
		}

		jobs, err := shared.Retry(ctx, cfg.Retry, shared.Logger(cfg), func(ctx context.Context) ([]travis.Job, error) {
			return client.ListJobs(ctx, buildID)
		})
		if err != nil {
			return nil, err
		}
		if jobs == nil {
			jobs = []travis.Job{}
		}

		failed := 0
		for _, j := range jobs {
			if j.State.Finished() && !j.State.Succeeded() && j.State != travis.StateCanceled && !j.AllowFailure {
				failed++
			}
		}
		summary := output.NewSummaryInfo().
			AddMetric("Заданий", strconv.Itoa(len(jobs)), "").
			AddMetric("Упавших", strconv.Itoa(failed), "")
		return &shared.Outcome{Data: &JobsData{BuildID: buildID, Jobs: jobs}, Summary: summary}, nil
	})
}
