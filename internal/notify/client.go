// Package notify publishes closed task results to a server endpoint.
package notify

import (
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/berggren/turbinia/internal/task"
)

const taskResultsPath = "/api/v1/task_results"

// Client talks to the result collection endpoint of a server.
type Client struct {
	httpc *resty.Client
	url   string
}

// New creates a Client for the given server URL. token may be empty for
// unauthenticated servers.
func New(url string, token string) Client {
	httpc := resty.New()
	httpc.SetBaseURL(url)
	if token != "" {
		httpc.SetHeader("Authorization", fmt.Sprintf("Token %s", token))
	}

	return Client{
		httpc: httpc,
		url:   url,
	}
}

// PublishResult posts the task result as JSON to the server.
func (c Client) PublishResult(res *task.Result) error {
	resp, err := c.httpc.R().
		SetHeader("Content-Type", "application/json").
		SetBody(res).
		Post(taskResultsPath)
	if err != nil {
		return fmt.Errorf("failed to publish result for task %q: %w", res.TaskName, err)
	}
	if resp.IsError() {
		return fmt.Errorf("server rejected result for task %q: %s", res.TaskName, resp.Status())
	}
	return nil
}
