package travis

import (
	"context"
	"io"
	"strconv"
)

func jobPath(id int64) string {
	return "/job/" + strconv.FormatInt(id, 10)
}

// ListJobs возвращает задания сборки.
func (c *Client) ListJobs(ctx context.Context, buildID int64) ([]Job, error) {
	page, err := Execute[Page[Job]](ctx, c, Get(buildPath(buildID)+"/jobs"))
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

// GetJob возвращает задание по идентификатору.
func (c *Client) GetJob(ctx context.Context, id int64) (*Job, error) {
	j, err := Execute[Job](ctx, c, Get(jobPath(id)))
	if err != nil {
		return nil, err
	}
	return &j, nil
}

// RawLog возвращает лог задания в виде текста.
// Вызывающий код обязан закрыть результат.
func (c *Client) RawLog(ctx context.Context, jobID int64) (io.ReadCloser, error) {
	spec := Get(jobPath(jobID) + "/log.txt")
	spec.Accept = "text/plain"
	return ExecuteRaw(ctx, c, spec)
}
